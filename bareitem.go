package sfv

import (
	"encoding/base64"
	"strconv"
)

// maxIntegerDigits is the RFC 8941 limit for integers; decimals allow at
// most maxDecimalIntegralDigits before the point and three after it.
const (
	maxIntegerDigits         = 15
	maxDecimalIntegralDigits = 12
	maxFractionalDigits      = 3
)

// parseBareItem dispatches on the first byte of a value: numbers, strings,
// tokens, byte sequences and booleans each claim a disjoint set of start
// bytes.
func (p *parser) parseBareItem() (BareItem, error) {
	b, ok := p.s.Peek()
	if !ok {
		return nil, parseError(ErrUnexpectedEnd, p.s.Pos())
	}
	switch {
	case b == '-' || isDigit(b):
		return p.parseNumber()
	case b == '"':
		return p.parseString()
	case b == ':':
		return p.parseByteSequence()
	case b == '?':
		return p.parseBoolean()
	case b == '*' || isAlpha(b):
		return p.parseToken()
	default:
		return nil, parseError(ErrUnexpectedCharacter, p.s.Pos())
	}
}

// parseNumber reads an integer or decimal. The distinction is made by a
// '.' with at least one digit after it; the digit limits are checked
// before conversion so strconv can never overflow.
func (p *parser) parseNumber() (BareItem, error) {
	start := p.s.Pos()
	negative := p.s.Accept('-')

	integral := p.s.TakeWhile(isDigit)
	if len(integral) == 0 {
		return nil, parseError(ErrInvalidNumber, p.s.Pos())
	}

	if p.s.Accept('.') {
		fractional := p.s.TakeWhile(isDigit)
		if len(integral) > maxDecimalIntegralDigits {
			return nil, parseError(ErrNumberTooLong, start)
		}
		if len(fractional) == 0 || len(fractional) > maxFractionalDigits {
			return nil, parseError(ErrInvalidNumber, start)
		}
		whole, _ := strconv.ParseInt(string(integral), 10, 64)
		frac, _ := strconv.ParseInt(string(fractional), 10, 64)
		for i := len(fractional); i < maxFractionalDigits; i++ {
			frac *= 10
		}
		thousandths := whole*1000 + frac
		if negative {
			thousandths = -thousandths
		}
		return NewDecimal(thousandths), nil
	}

	if len(integral) > maxIntegerDigits {
		return nil, parseError(ErrNumberTooLong, start)
	}
	v, _ := strconv.ParseInt(string(integral), 10, 64)
	if negative {
		v = -v
	}
	return Integer(v), nil
}

// parseString reads a quoted string. Only '"' and '\' may be escaped, and
// only printable ASCII may appear; anything else, or running out of input
// before the closing quote, is invalid.
func (p *parser) parseString() (BareItem, error) {
	p.s.Next() // opening quote
	var buf []byte
	for {
		b, ok := p.s.Next()
		if !ok {
			return nil, parseError(ErrInvalidString, p.s.Pos())
		}
		switch {
		case b == '"':
			return String(buf), nil
		case b == '\\':
			c, ok := p.s.Next()
			if !ok || (c != '"' && c != '\\') {
				return nil, parseError(ErrInvalidString, p.s.Pos()-1)
			}
			buf = append(buf, c)
		case b < 0x20 || b > 0x7e:
			return nil, parseError(ErrInvalidString, p.s.Pos()-1)
		default:
			buf = append(buf, b)
		}
	}
}

// parseToken greedily reads the token character class. There is no closing
// delimiter; the token ends at the first byte outside the class.
func (p *parser) parseToken() (BareItem, error) {
	return Token(p.s.TakeWhile(isTokenChar)), nil
}

// parseByteSequence reads a colon-delimited base64 payload. The undecoded
// text is retained alongside the decoded bytes.
func (p *parser) parseByteSequence() (BareItem, error) {
	p.s.Next() // opening colon
	encoded := p.s.TakeWhile(func(b byte) bool { return b != ':' })
	if !p.s.Accept(':') {
		return nil, parseError(ErrInvalidBinary, p.s.Pos())
	}
	data, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		return nil, parseError(ErrInvalidBinary, p.s.Pos()-len(encoded)-1)
	}
	return ByteSequence{Data: data, Encoded: string(encoded)}, nil
}

// parseBoolean reads '?' followed by exactly '0' or '1'.
func (p *parser) parseBoolean() (BareItem, error) {
	p.s.Next() // '?'
	b, ok := p.s.Next()
	if !ok || (b != '0' && b != '1') {
		return nil, parseError(ErrInvalidBoolean, p.s.Pos()-1)
	}
	return Boolean(b == '1'), nil
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isAlpha(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isLowerAlpha(b byte) bool {
	return 'a' <= b && b <= 'z'
}

func isTokenChar(b byte) bool {
	if isAlpha(b) || isDigit(b) {
		return true
	}
	switch b {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~', ':', '/':
		return true
	}
	return false
}

func isKeyChar(b byte) bool {
	return isLowerAlpha(b) || isDigit(b) || b == '_' || b == '-' || b == '.' || b == '*'
}
