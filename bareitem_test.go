package sfv_test

import (
	"testing"

	sfv "github.com/KimNorgaard/go-sfv"
	"github.com/stretchr/testify/require"
)

func requireKind(t *testing.T, err error, kind sfv.ErrorKind) {
	t.Helper()
	var pe *sfv.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, kind, pe.Kind)
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"1", 1},
		{"0", 0},
		{"-1", -1},
		{"42", 42},
		{"0042", 42},
		{"-0", 0},
		{"999999999999999", 999999999999999},
		{"-999999999999999", -999999999999999},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			item, err := sfv.ParseItem([]byte(tt.input))
			require.NoError(t, err)
			require.Equal(t, sfv.Integer(tt.want), item.Value)
			require.Equal(t, 0, item.Params.Len())
		})
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		input string
		want  int64 // thousandths
	}{
		{"1.123", 1123},
		{"1.1", 1100},
		{"1.12", 1120},
		{"0.0", 0},
		{"-0.5", -500},
		{"-1.001", -1001},
		{"999999999999.999", 999999999999999},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			item, err := sfv.ParseItem([]byte(tt.input))
			require.NoError(t, err)
			require.Equal(t, sfv.NewDecimal(tt.want), item.Value)
		})
	}
}

func TestParseNumberErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  sfv.ErrorKind
	}{
		{"1000000000000000", sfv.ErrNumberTooLong},  // 16 digits
		{"-1000000000000000", sfv.ErrNumberTooLong}, // sign does not count
		{"1234567890123.0", sfv.ErrNumberTooLong},   // 13 integral digits
		{"1.1234", sfv.ErrInvalidNumber},            // 4 fractional digits
		{"1.", sfv.ErrInvalidNumber},                // no digit after point
		{"-", sfv.ErrInvalidNumber},                 // no digit after sign
		{"-a", sfv.ErrInvalidNumber},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := sfv.ParseItem([]byte(tt.input))
			requireKind(t, err, tt.kind)
		})
	}
}

func TestParseString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", `""`, ""},
		{"simple", `"hello"`, "hello"},
		{"spaces", `"hello world"`, "hello world"},
		{"escaped quote", `"a\"b"`, `a"b`},
		{"escaped backslash", `"a\\b"`, `a\b`},
		{"both escapes", `"\\\""`, `\"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := sfv.ParseItem([]byte(tt.input))
			require.NoError(t, err)
			require.Equal(t, sfv.String(tt.want), item.Value)
		})
	}
}

func TestParseStringErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated", `"abc`},
		{"unterminated escape", `"abc\`},
		{"bad escape", `"a\nb"`},
		{"raw control byte", "\"a\x01b\""},
		{"raw del byte", "\"a\x7fb\""},
		{"non-ascii", "\"caf\xc3\xa9\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sfv.ParseItem([]byte(tt.input))
			requireKind(t, err, sfv.ErrInvalidString)
		})
	}
}

func TestParseUnescapedQuote(t *testing.T) {
	// `"a"b"` parses the string "a", leaving b" as trailing garbage.
	_, err := sfv.ParseItem([]byte(`"a"b"`))
	requireKind(t, err, sfv.ErrTrailingGarbage)
}

func TestParseToken(t *testing.T) {
	tests := []string{
		"foo",
		"*",
		"*foo",
		"a/b",
		"text/html",
		"foo123",
		"t!#$%&'*+-.^_`|~:/t",
		"A",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			item, err := sfv.ParseItem([]byte(input))
			require.NoError(t, err)
			require.Equal(t, sfv.Token(input), item.Value)
		})
	}
}

func TestParseByteSequence(t *testing.T) {
	item, err := sfv.ParseItem([]byte(":aGVsbG8=:"))
	require.NoError(t, err)
	bs, ok := item.Value.(sfv.ByteSequence)
	require.True(t, ok, "value is %T, want ByteSequence", item.Value)
	require.Equal(t, []byte("hello"), bs.Data)
	require.Equal(t, "aGVsbG8=", bs.Encoded, "original base64 text must be retained")

	item, err = sfv.ParseItem([]byte("::"))
	require.NoError(t, err)
	bs = item.Value.(sfv.ByteSequence)
	require.Empty(t, bs.Data)
	require.Equal(t, "", bs.Encoded)
}

func TestParseByteSequenceErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated", ":aGVsbG8="},
		{"bad alphabet", ":a^b:"},
		{"bad padding", ":aGVsbG8:"},
		{"embedded space", ":a GVsbG8=:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sfv.ParseItem([]byte(tt.input))
			requireKind(t, err, sfv.ErrInvalidBinary)
		})
	}
}

func TestParseBoolean(t *testing.T) {
	item, err := sfv.ParseItem([]byte("?1"))
	require.NoError(t, err)
	require.Equal(t, sfv.Boolean(true), item.Value)

	item, err = sfv.ParseItem([]byte("?0"))
	require.NoError(t, err)
	require.Equal(t, sfv.Boolean(false), item.Value)
}

func TestParseBooleanErrors(t *testing.T) {
	for _, input := range []string{"?", "?2", "?x", "?t"} {
		t.Run(input, func(t *testing.T) {
			_, err := sfv.ParseItem([]byte(input))
			requireKind(t, err, sfv.ErrInvalidBoolean)
		})
	}
}

func TestParseBareItemDispatchErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  sfv.ErrorKind
	}{
		{"empty", "", sfv.ErrUnexpectedEnd},
		{"whitespace only", "  ", sfv.ErrUnexpectedEnd},
		{"open bracket", "[1]", sfv.ErrUnexpectedCharacter},
		{"equals sign", "=", sfv.ErrUnexpectedCharacter},
		{"underscore start", "_foo", sfv.ErrUnexpectedCharacter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sfv.ParseItem([]byte(tt.input))
			requireKind(t, err, tt.kind)
		})
	}
}

func TestParseErrorOffset(t *testing.T) {
	_, err := sfv.ParseItem([]byte("[1]"))
	var pe *sfv.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 0, pe.Offset)

	_, err = sfv.ParseItem([]byte("1 x"))
	require.ErrorAs(t, err, &pe)
	require.Equal(t, sfv.ErrTrailingGarbage, pe.Kind)
	require.Equal(t, 2, pe.Offset)
}
