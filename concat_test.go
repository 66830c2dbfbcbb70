package fixedstr

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"

	"github.com/wrsturgeon/fixed-string/internal/diag"
)

func TestConcat(t *testing.T) {
	ab, cd := New("ab"), New("cd")
	sum := Concat(ab, cd)
	require.Equal(t, 4, sum.Len())
	require.Equal(t, "abcd", sum.String())
	require.Equal(t, New("abcd"), sum)

	require.Equal(t, New("ab"), Concat(ab, New("")))
	require.Equal(t, New("ab"), Concat(New(""), ab))
	var empty String
	require.Equal(t, empty, Concat(empty, empty))
}

func TestConcatContentAssociativity(t *testing.T) {
	a, b, c := New("one"), New("twos"), New("three")
	left := Concat(Concat(a, b), c)
	right := Concat(a, Concat(b, c))
	flat := Concat(a, b, c)
	require.Equal(t, left, right)
	require.Equal(t, left, flat)
	require.Equal(t, "onetwosthree", flat.String())
}

func TestConcatQuick(t *testing.T) {
	law := func(a, b string) bool {
		return Concat(New(a), New(b)).String() == a+b
	}
	if err := quick.Check(law, nil); err != nil {
		t.Fatal(err)
	}
}

func TestAddSugar(t *testing.T) {
	s := New("id_")
	require.Equal(t, Concat(s, New("42")), s.AddString("42"))
	require.Equal(t, Concat(s, FromByte('x')), s.AddByte('x'))
	require.Equal(t, Concat(s, Itoa(7)), s.Add(Itoa(7)))
	// sugar is convenience only: same content, same type
	require.Equal(t, "id_x", s.AddByte('x').String())
}

func TestSubstringRoundTrip(t *testing.T) {
	s := New("abcdef")
	require.Equal(t, s, Substring(s, 0, s.Len()))
	require.Equal(t, New("bcd"), Substring(s, 1, 4))
	require.Equal(t, New("f"), Substring(s, 5, 6))
}

func TestSubstringEmptySlices(t *testing.T) {
	s := New("abc")
	for k := 0; k <= s.Len(); k++ {
		sub := Substring(s, k, k)
		require.Equal(t, 0, sub.Len(), "k=%d", k)
		require.Equal(t, string(Terminator), sub.CStr(), "k=%d", k)
	}
}

func TestSubstringBoundsAreFatal(t *testing.T) {
	if !diag.Enabled {
		t.Skip("checks compiled out")
	}
	trapExit(t)
	s := New("abc")
	require.PanicsWithValue(t, 1, func() { Substring(s, -1, 2) })
	require.PanicsWithValue(t, 1, func() { Substring(s, 2, 1) })
	require.PanicsWithValue(t, 1, func() { Substring(s, 0, s.Len()+1) })
}
