//go:build !fsnoio

package fixedstr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	s := New("payload")
	n, err := s.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(s.Len()), n)
	require.Equal(t, "payload", buf.String(), "no framing, no terminator on the wire")

	buf.Reset()
	var empty String
	n, err = empty.WriteTo(&buf)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Zero(t, buf.Len())
}
