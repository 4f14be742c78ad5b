package sfv

import (
	"github.com/KimNorgaard/go-sfv/internal/scanner"
)

// parser holds the state of one parse: a cursor over the input and the
// configured limits. A parser is used for a single field value and then
// discarded; independent parsers never share state.
type parser struct {
	s      *scanner.Scanner
	limits limits
}

func newParser(data []byte, opts ...Option) (*parser, error) {
	p := &parser{s: scanner.New(data)}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// finish enforces the termination contract shared by the three entry
// points: after the body, only optional whitespace may remain.
func (p *parser) finish() error {
	p.s.SkipOWS()
	if !p.s.EOF() {
		return parseError(ErrTrailingGarbage, p.s.Pos())
	}
	return nil
}

// parseKey reads a parameter or dictionary key. The first byte must be a
// lowercase letter or '*'.
func (p *parser) parseKey() (string, error) {
	b, ok := p.s.Peek()
	if !ok || (!isLowerAlpha(b) && b != '*') {
		return "", parseError(ErrInvalidKey, p.s.Pos())
	}
	return string(p.s.TakeWhile(isKeyChar)), nil
}

// parseParameters reads zero or more ";"-prefixed key/value pairs. A key
// without "=" carries an implicit boolean true. Duplicate keys overwrite
// the earlier value but keep its position.
func (p *parser) parseParameters() (*Parameters, error) {
	params := NewParameters()
	for p.s.Accept(';') {
		p.s.SkipSP()
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		var value BareItem = Boolean(true)
		if p.s.Accept('=') {
			value, err = p.parseBareItem()
			if err != nil {
				return nil, err
			}
		}
		params.Set(key, value)
		if p.limits.maxParameters > 0 && params.Len() > p.limits.maxParameters {
			return nil, parseError(ErrLimitExceeded, p.s.Pos())
		}
	}
	return params, nil
}

// parseItem reads one bare item and its trailing parameters.
func (p *parser) parseItem() (Item, error) {
	value, err := p.parseBareItem()
	if err != nil {
		return Item{}, err
	}
	params, err := p.parseParameters()
	if err != nil {
		return Item{}, err
	}
	return Item{Value: value, Params: params}, nil
}

// parseInnerList reads a parenthesized sequence of items followed by the
// list's own parameters. Members are space-separated: after each item the
// next byte must be a space or the closing parenthesis.
func (p *parser) parseInnerList() (InnerList, error) {
	p.s.Next() // '('
	var items []Item
	for {
		p.s.SkipSP()
		if p.s.Accept(')') {
			params, err := p.parseParameters()
			if err != nil {
				return InnerList{}, err
			}
			return InnerList{Items: items, Params: params}, nil
		}
		if p.s.EOF() {
			return InnerList{}, parseError(ErrInvalidInnerList, p.s.Pos())
		}
		item, err := p.parseItem()
		if err != nil {
			return InnerList{}, err
		}
		items = append(items, item)
		if p.limits.maxInnerListMembers > 0 && len(items) > p.limits.maxInnerListMembers {
			return InnerList{}, parseError(ErrLimitExceeded, p.s.Pos())
		}
		if b, ok := p.s.Peek(); !ok || (b != ' ' && b != ')') {
			return InnerList{}, parseError(ErrInvalidInnerList, p.s.Pos())
		}
	}
}

// parseItemOrInnerList dispatches on whether the member starts with '('.
func (p *parser) parseItemOrInnerList() (Member, error) {
	if b, ok := p.s.Peek(); ok && b == '(' {
		return p.parseInnerList()
	}
	return p.parseItem()
}

// parseList reads comma-separated members until the input is exhausted.
// Empty input is an empty list.
func (p *parser) parseList() (List, error) {
	list := List{}
	p.s.SkipOWS()
	for !p.s.EOF() {
		member, err := p.parseItemOrInnerList()
		if err != nil {
			return nil, err
		}
		list = append(list, member)
		if p.limits.maxMembers > 0 && len(list) > p.limits.maxMembers {
			return nil, parseError(ErrLimitExceeded, p.s.Pos())
		}
		p.s.SkipOWS()
		if p.s.EOF() {
			break
		}
		if !p.s.Accept(',') {
			return nil, parseError(ErrTrailingGarbage, p.s.Pos())
		}
		p.s.SkipOWS()
		if p.s.EOF() {
			return nil, parseError(ErrUnexpectedEnd, p.s.Pos())
		}
	}
	return list, nil
}

// parseDictionary reads comma-separated key/member pairs. A key without
// "=" takes an implicit boolean true item whose parameters follow the key
// directly. Repeated keys overwrite in place.
func (p *parser) parseDictionary() (*Dictionary, error) {
	dict := NewDictionary()
	p.s.SkipOWS()
	for !p.s.EOF() {
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		var member Member
		if p.s.Accept('=') {
			member, err = p.parseItemOrInnerList()
		} else {
			var params *Parameters
			params, err = p.parseParameters()
			member = Item{Value: Boolean(true), Params: params}
		}
		if err != nil {
			return nil, err
		}
		dict.Set(key, member)
		if p.limits.maxMembers > 0 && dict.Len() > p.limits.maxMembers {
			return nil, parseError(ErrLimitExceeded, p.s.Pos())
		}
		p.s.SkipOWS()
		if p.s.EOF() {
			break
		}
		if !p.s.Accept(',') {
			return nil, parseError(ErrTrailingGarbage, p.s.Pos())
		}
		p.s.SkipOWS()
		if p.s.EOF() {
			return nil, parseError(ErrUnexpectedEnd, p.s.Pos())
		}
	}
	return dict, nil
}
