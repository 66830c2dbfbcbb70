//go:build !fsnoio

package fixedstr

import "io"

// WriteTo writes the content bytes to w in a single call, with no framing
// and no escaping. Build with -tags fsnoio to drop this surface.
func (s String) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
