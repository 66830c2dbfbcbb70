package fixedstr

import (
	"github.com/wrsturgeon/fixed-string/internal/diag"
)

// Concat joins parts left to right into one String with a fresh terminator.
func Concat(parts ...String) String {
	n := 0
	for _, p := range parts {
		n += p.Len()
	}
	if n == 0 {
		return String{}
	}
	buf := make([]byte, 0, n+1)
	for _, p := range parts {
		buf = append(buf, p.String()...)
	}
	buf = append(buf, Terminator)
	return String{raw: string(buf)}
}

// Add returns s followed by r.
func (s String) Add(r String) String {
	return Concat(s, r)
}

// AddString is Add over the literal construction path.
func (s String) AddString(t string) String {
	return Concat(s, New(t))
}

// AddByte is Add over the single-byte construction path.
func (s String) AddByte(c byte) String {
	return Concat(s, FromByte(c))
}

// Substring returns the half-open slice [begin, end) of s as a new String.
// Precondition: 0 <= begin <= end <= s.Len().
func Substring(s String, begin, end int) String {
	diag.Assert(begin >= 0 && begin <= end && end <= s.Len(),
		"substring bounds out of range", "begin", begin, "end", end, "len", s.Len())
	return New(s.String()[begin:end])
}
