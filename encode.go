package sfv

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"
)

// MarshalItem returns the canonical encoding of an item field value.
func MarshalItem(item Item) ([]byte, error) {
	var e encodeState
	if err := e.writeItem(item); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

// MarshalList returns the canonical encoding of a list field value. An
// empty list encodes to an empty byte slice; per RFC 8941 such a field
// should be omitted from the message entirely.
func MarshalList(list List) ([]byte, error) {
	var e encodeState
	for i, member := range list {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		if err := e.writeMember(member); err != nil {
			return nil, err
		}
	}
	return e.buf.Bytes(), nil
}

// MarshalDictionary returns the canonical encoding of a dictionary field
// value. A member that is a bare boolean true item encodes as its key and
// parameters alone.
func MarshalDictionary(dict *Dictionary) ([]byte, error) {
	var e encodeState
	for i := 0; i < dict.Len(); i++ {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		key, member := dict.At(i)
		if err := e.writeKey(key); err != nil {
			return nil, err
		}
		if item, ok := member.(Item); ok && item.Value == Boolean(true) {
			if err := e.writeParameters(item.Params); err != nil {
				return nil, err
			}
			continue
		}
		e.buf.WriteByte('=')
		if err := e.writeMember(member); err != nil {
			return nil, err
		}
	}
	return e.buf.Bytes(), nil
}

type encodeState struct {
	buf bytes.Buffer
}

func (e *encodeState) writeMember(member Member) error {
	switch m := member.(type) {
	case Item:
		return e.writeItem(m)
	case InnerList:
		return e.writeInnerList(m)
	default:
		return fmt.Errorf("sfv: cannot marshal member of type %T", member)
	}
}

func (e *encodeState) writeItem(item Item) error {
	if err := e.writeBareItem(item.Value); err != nil {
		return err
	}
	return e.writeParameters(item.Params)
}

func (e *encodeState) writeInnerList(list InnerList) error {
	e.buf.WriteByte('(')
	for i, item := range list.Items {
		if i > 0 {
			e.buf.WriteByte(' ')
		}
		if err := e.writeItem(item); err != nil {
			return err
		}
	}
	e.buf.WriteByte(')')
	return e.writeParameters(list.Params)
}

func (e *encodeState) writeParameters(params *Parameters) error {
	for i := 0; i < params.Len(); i++ {
		key, value := params.At(i)
		e.buf.WriteByte(';')
		if err := e.writeKey(key); err != nil {
			return err
		}
		// A boolean true value is implied by a bare key.
		if value == Boolean(true) {
			continue
		}
		e.buf.WriteByte('=')
		if err := e.writeBareItem(value); err != nil {
			return err
		}
	}
	return nil
}

func (e *encodeState) writeKey(key string) error {
	if !isValidKey(key) {
		return fmt.Errorf("sfv: cannot marshal invalid key %q", key)
	}
	e.buf.WriteString(key)
	return nil
}

func (e *encodeState) writeBareItem(value BareItem) error {
	switch v := value.(type) {
	case Integer:
		if v < -999999999999999 || v > 999999999999999 {
			return fmt.Errorf("sfv: integer %d out of range", int64(v))
		}
		e.buf.WriteString(strconv.FormatInt(int64(v), 10))
		return nil
	case Decimal:
		t := v.Thousandths()
		if t < -999999999999999 || t > 999999999999999 {
			return fmt.Errorf("sfv: decimal %s out of range", v)
		}
		e.buf.WriteString(v.String())
		return nil
	case String:
		return e.writeString(v)
	case Token:
		if !isValidToken(string(v)) {
			return fmt.Errorf("sfv: cannot marshal invalid token %q", string(v))
		}
		e.buf.WriteString(string(v))
		return nil
	case ByteSequence:
		e.buf.WriteByte(':')
		e.buf.WriteString(base64.StdEncoding.EncodeToString(v.Data))
		e.buf.WriteByte(':')
		return nil
	case Boolean:
		if v {
			e.buf.WriteString("?1")
		} else {
			e.buf.WriteString("?0")
		}
		return nil
	default:
		return fmt.Errorf("sfv: cannot marshal bare item of type %T", value)
	}
}

func (e *encodeState) writeString(s String) error {
	e.buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7e {
			return fmt.Errorf("sfv: cannot marshal string containing byte 0x%02x", b)
		}
		if b == '"' || b == '\\' {
			e.buf.WriteByte('\\')
		}
		e.buf.WriteByte(b)
	}
	e.buf.WriteByte('"')
	return nil
}

func isValidKey(key string) bool {
	if len(key) == 0 {
		return false
	}
	if !isLowerAlpha(key[0]) && key[0] != '*' {
		return false
	}
	for i := 1; i < len(key); i++ {
		if !isKeyChar(key[i]) {
			return false
		}
	}
	return true
}

func isValidToken(tok string) bool {
	if len(tok) == 0 {
		return false
	}
	if !isAlpha(tok[0]) && tok[0] != '*' {
		return false
	}
	for i := 1; i < len(tok); i++ {
		if !isTokenChar(tok[i]) {
			return false
		}
	}
	return true
}
