package scanner_test

import (
	"testing"

	"github.com/KimNorgaard/go-sfv/internal/scanner"
	"github.com/stretchr/testify/require"
)

func TestPeekAndNext(t *testing.T) {
	s := scanner.New([]byte("ab"))

	b, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, byte('a'), b)
	require.Equal(t, 0, s.Pos(), "Peek must not consume")

	b, ok = s.Next()
	require.True(t, ok)
	require.Equal(t, byte('a'), b)
	require.Equal(t, 1, s.Pos())

	b, ok = s.Next()
	require.True(t, ok)
	require.Equal(t, byte('b'), b)
	require.True(t, s.EOF())

	_, ok = s.Next()
	require.False(t, ok)
	_, ok = s.Peek()
	require.False(t, ok)
}

func TestAccept(t *testing.T) {
	s := scanner.New([]byte(";x"))
	require.False(t, s.Accept('x'))
	require.Equal(t, 0, s.Pos(), "failed Accept must not consume")
	require.True(t, s.Accept(';'))
	require.Equal(t, 1, s.Pos())
}

func TestTakeWhile(t *testing.T) {
	input := []byte("123abc")
	s := scanner.New(input)

	digits := s.TakeWhile(func(b byte) bool { return '0' <= b && b <= '9' })
	require.Equal(t, []byte("123"), digits)
	require.Equal(t, 3, s.Pos())

	// The returned slice aliases the input buffer.
	require.Same(t, &input[0], &digits[0])

	rest := s.TakeWhile(func(byte) bool { return true })
	require.Equal(t, []byte("abc"), rest)
	require.True(t, s.EOF())

	empty := s.TakeWhile(func(byte) bool { return true })
	require.Empty(t, empty)
}

func TestSkipSP(t *testing.T) {
	s := scanner.New([]byte("   \tx"))
	require.Equal(t, 3, s.SkipSP(), "SkipSP must not consume tabs")
	b, _ := s.Peek()
	require.Equal(t, byte('\t'), b)
}

func TestSkipOWS(t *testing.T) {
	s := scanner.New([]byte(" \t \tx"))
	s.SkipOWS()
	b, _ := s.Peek()
	require.Equal(t, byte('x'), b)
}

func TestRestIsOWS(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{" \t ", true},
		{" x", false},
		{"\n", false},
	}
	for _, tt := range tests {
		s := scanner.New([]byte(tt.input))
		require.Equal(t, tt.want, s.RestIsOWS(), "input %q", tt.input)
		require.Equal(t, 0, s.Pos(), "RestIsOWS must not consume")
	}
}
