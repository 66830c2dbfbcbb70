// Package fixedstr provides an immutable, fixed-capacity, NUL-terminated
// byte string: exactly Len() content bytes followed by one terminator byte.
//
// Go has no const-generic array lengths, so the length lives in the value
// rather than the type: String wraps a single Go string, which makes every
// instance trivially copyable, comparable with == (structural, value-wise),
// and usable as a map key. Two strings of different lengths are never equal.
// Bounds and terminator preconditions are checked at runtime through
// internal/diag; build with -tags fsnoassert to compile the checks out.
package fixedstr

import (
	"github.com/wrsturgeon/fixed-string/internal/diag"
)

// Terminator is the sentinel byte marking the end of content.
const Terminator byte = 0

// String is an immutable fixed-capacity byte string. The zero value is the
// empty string. Once constructed a String never changes; derived strings
// (Concat, Substring) are new values.
type String struct {
	// raw is empty for the zero-length string; otherwise it holds the
	// content bytes plus the trailing terminator.
	raw string
}

// New builds a String from a Go string, deducing the length as len(s).
func New(s string) String {
	if len(s) == 0 {
		return String{}
	}
	return String{raw: s + string(Terminator)}
}

// FromTerminated builds a String from a buffer of N+1 bytes whose last byte
// is the terminator. A buffer that is empty or not NUL-terminated is a
// contract violation.
func FromTerminated(buf []byte) String {
	diag.Assert(len(buf) > 0, "terminated buffer must hold at least the terminator")
	diag.Assert(buf[len(buf)-1] == Terminator, "buffer must be NUL-terminated",
		"last", buf[len(buf)-1])
	if len(buf) == 1 {
		return String{}
	}
	return String{raw: string(buf)}
}

// FromByte builds the one-byte String holding c.
func FromByte(c byte) String {
	return String{raw: string([]byte{c, Terminator})}
}

// Zero returns a String of n zero content bytes. It exists as a construction
// intermediate, not a public empty-string idiom; use New("") or the zero
// value for that.
func Zero(n int) String {
	diag.Assert(n >= 0, "length must be non-negative", "n", n)
	if n <= 0 {
		return String{}
	}
	return String{raw: string(make([]byte, n+1))}
}

// Len returns the number of content bytes, excluding the terminator.
func (s String) Len() int {
	if s.raw == "" {
		return 0
	}
	return len(s.raw) - 1
}

// CStr returns the terminator-ended view of the buffer: Len()+1 bytes, the
// last of which is the terminator. The view is a Go string, so it costs
// nothing to produce and never goes stale.
func (s String) CStr() string {
	if s.raw == "" {
		return string(Terminator)
	}
	return s.raw
}

// String returns the content bytes without the terminator.
func (s String) String() string {
	if s.raw == "" {
		return ""
	}
	return s.raw[:len(s.raw)-1]
}

// Bytes returns a fresh copy of the content bytes, owned by the caller.
func (s String) Bytes() []byte {
	return []byte(s.String())
}

// At returns the content byte at index i. Precondition: 0 <= i < Len().
// With checks disabled the access is unchecked.
func (s String) At(i int) byte {
	diag.Assert(i >= 0 && i < s.Len(), "subscript index out of bounds",
		"index", i, "len", s.Len())
	return s.raw[i]
}

// Find returns the index of the first occurrence of c among the content
// bytes, or Len() when c is absent. The terminator is outside the scan.
func (s String) Find(c byte) int {
	n := s.Len()
	for i := 0; i < n; i++ {
		if s.raw[i] == c {
			return i
		}
	}
	return n
}

// Contains reports whether c occurs among the content bytes.
func (s String) Contains(c byte) bool {
	return s.Find(c) < s.Len()
}

// Atoi reads every content byte as a base-10 ASCII digit, accumulating
// r = r*10 + digit. There is no sign handling and no validation: non-digit
// input yields garbage. This is for decimal literals embedded in names, not
// general parsing.
func (s String) Atoi() uint64 {
	var r uint64
	for i := 0; i < s.Len(); i++ {
		r = r*10 + uint64(s.raw[i]-'0')
	}
	return r
}

// Equal reports whether a and b have the same length and identical content.
// Plain == is equivalent; this form exists for callers that want a function
// value.
func Equal(a, b String) bool {
	return a == b
}
