package sfv

import "fmt"

// ErrorKind classifies a parse failure.
type ErrorKind string

const (
	// ErrUnexpectedCharacter is returned when a byte cannot start or
	// continue any production at the current position.
	ErrUnexpectedCharacter ErrorKind = "unexpected character"
	// ErrInvalidNumber is returned for malformed integers and decimals,
	// including a sign or decimal point with no following digit and more
	// than three fractional digits.
	ErrInvalidNumber ErrorKind = "invalid number"
	// ErrNumberTooLong is returned when a number exceeds the digit limits:
	// fifteen digits for an integer, twelve before the point for a decimal.
	ErrNumberTooLong ErrorKind = "number too long"
	// ErrInvalidString is returned for unterminated strings, forbidden
	// bytes inside a string, and escape sequences other than \" and \\.
	ErrInvalidString ErrorKind = "invalid string"
	// ErrInvalidKey is returned when a parameter or dictionary key does not
	// start with a lowercase letter or '*'.
	ErrInvalidKey ErrorKind = "invalid key"
	// ErrInvalidInnerList is returned for unterminated inner lists and for
	// members not separated by a space.
	ErrInvalidInnerList ErrorKind = "invalid inner list"
	// ErrInvalidBinary is returned for unterminated byte sequences and
	// content that is not valid base64.
	ErrInvalidBinary ErrorKind = "invalid byte sequence"
	// ErrInvalidBoolean is returned when '?' is not followed by '0' or '1'.
	ErrInvalidBoolean ErrorKind = "invalid boolean"
	// ErrUnexpectedEnd is returned when the input ends inside a production,
	// for example after a trailing comma.
	ErrUnexpectedEnd ErrorKind = "unexpected end of input"
	// ErrTrailingGarbage is returned when non-whitespace bytes remain after
	// a complete field value.
	ErrTrailingGarbage ErrorKind = "trailing garbage"
	// ErrLimitExceeded is returned when a configured member or parameter
	// count limit is exceeded.
	ErrLimitExceeded ErrorKind = "limit exceeded"
)

// ParseError describes a failed parse. It records what went wrong and the
// byte offset at which parsing stopped. A failed parse never yields a
// partial structure alongside the error.
type ParseError struct {
	Kind   ErrorKind
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sfv: %s at offset %d", e.Kind, e.Offset)
}

func parseError(kind ErrorKind, offset int) *ParseError {
	return &ParseError{Kind: kind, Offset: offset}
}
