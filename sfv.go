package sfv

// ParseItem parses data as a single item field value. The whole input must
// be consumed apart from optional leading and trailing whitespace.
func ParseItem(data []byte, opts ...Option) (Item, error) {
	p, err := newParser(data, opts...)
	if err != nil {
		return Item{}, err
	}
	p.s.SkipOWS()
	item, err := p.parseItem()
	if err != nil {
		return Item{}, err
	}
	if err := p.finish(); err != nil {
		return Item{}, err
	}
	return item, nil
}

// ParseList parses data as a list field value. Empty input yields an empty
// list. When a field occurred multiple times, the caller must join the raw
// occurrences with ", " before calling ParseList.
func ParseList(data []byte, opts ...Option) (List, error) {
	p, err := newParser(data, opts...)
	if err != nil {
		return nil, err
	}
	list, err := p.parseList()
	if err != nil {
		return nil, err
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return list, nil
}

// ParseDictionary parses data as a dictionary field value. Empty input
// yields an empty dictionary. Repeated keys keep their first position and
// take the last value, including across joined field occurrences.
func ParseDictionary(data []byte, opts ...Option) (*Dictionary, error) {
	p, err := newParser(data, opts...)
	if err != nil {
		return nil, err
	}
	dict, err := p.parseDictionary()
	if err != nil {
		return nil, err
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return dict, nil
}
