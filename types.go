package sfv

import (
	"fmt"
	"strconv"
)

// BareItem is an unparameterized scalar value. It is implemented by exactly
// six types: Integer, Decimal, String, Token, ByteSequence and Boolean.
// The interface is sealed so a type switch over these six is exhaustive.
type BareItem interface {
	bareItem()
}

// Integer is a signed integer with a magnitude of at most
// 999,999,999,999,999 (fifteen decimal digits).
type Integer int64

// Decimal is a fixed-point number with up to twelve integral digits and up
// to three fractional digits. It is stored exactly, as a scaled integer,
// so round-tripping never loses precision the way a float64 could at the
// twelve-digit boundary.
type Decimal struct {
	thousandths int64
}

// NewDecimal returns the decimal equal to thousandths/1000.
func NewDecimal(thousandths int64) Decimal {
	return Decimal{thousandths: thousandths}
}

// Thousandths returns the value scaled by 1000.
func (d Decimal) Thousandths() int64 {
	return d.thousandths
}

// Float64 returns the nearest float64. It may round; use Thousandths for
// the exact value.
func (d Decimal) Float64() float64 {
	return float64(d.thousandths) / 1000
}

// String returns the canonical textual form: the shortest fraction that
// preserves the value, with at least one fractional digit.
func (d Decimal) String() string {
	t := d.thousandths
	sign := ""
	if t < 0 {
		sign = "-"
		t = -t
	}
	frac := strconv.FormatInt(t%1000, 10)
	for len(frac) < 3 {
		frac = "0" + frac
	}
	for len(frac) > 1 && frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
	}
	return fmt.Sprintf("%s%d.%s", sign, t/1000, frac)
}

// String is a sequence of printable ASCII bytes (0x20-0x7E).
type String string

// Token is an identifier-shaped value: an ASCII letter or '*' followed by
// token characters.
type Token string

// ByteSequence is a binary value. Data holds the decoded payload; Encoded
// retains the base64 text exactly as it appeared between the colons, for
// byte-for-byte round-trip fidelity.
type ByteSequence struct {
	Data    []byte
	Encoded string
}

// Boolean is a true/false value.
type Boolean bool

func (Integer) bareItem()      {}
func (Decimal) bareItem()      {}
func (String) bareItem()       {}
func (Token) bareItem()        {}
func (ByteSequence) bareItem() {}
func (Boolean) bareItem()      {}

// orderedMap preserves first-insertion order and updates in place on
// duplicate keys: the slot list is append-only and the index maps each key
// to its slot, so overwriting never moves an entry.
type orderedMap[V any] struct {
	keys  []string
	vals  []V
	index map[string]int
}

func (m *orderedMap[V]) set(key string, v V) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.vals[i] = v
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, v)
}

func (m *orderedMap[V]) get(key string) (V, bool) {
	if i, ok := m.index[key]; ok {
		return m.vals[i], true
	}
	var zero V
	return zero, false
}

// Parameters is an ordered map of key to BareItem attached to an Item or
// InnerList. Keys are unique; setting an existing key replaces its value
// but keeps its original position.
type Parameters struct {
	m orderedMap[BareItem]
}

// NewParameters returns an empty Parameters.
func NewParameters() *Parameters {
	return &Parameters{}
}

// Set inserts or replaces the value for key.
func (p *Parameters) Set(key string, v BareItem) {
	p.m.set(key, v)
}

// Get returns the value for key.
func (p *Parameters) Get(key string) (BareItem, bool) {
	if p == nil {
		return nil, false
	}
	return p.m.get(key)
}

// Len returns the number of parameters.
func (p *Parameters) Len() int {
	if p == nil {
		return 0
	}
	return len(p.m.keys)
}

// Keys returns the keys in insertion order.
func (p *Parameters) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.m.keys))
	copy(out, p.m.keys)
	return out
}

// At returns the i'th key and value in insertion order.
func (p *Parameters) At(i int) (string, BareItem) {
	return p.m.keys[i], p.m.vals[i]
}

// Member is either an Item or an InnerList. It is the element type of List
// and the value type of Dictionary.
type Member interface {
	member()
}

// Item is a BareItem with its Parameters.
type Item struct {
	Value  BareItem
	Params *Parameters
}

func (Item) member() {}

// InnerList is a parenthesized sequence of Items with its own Parameters,
// distinct from the parameters of any member.
type InnerList struct {
	Items  []Item
	Params *Parameters
}

func (InnerList) member() {}

// List is an ordered sequence of Items and InnerLists.
type List []Member

// Dictionary is an ordered map of key to Member with the same
// overwrite-keeps-position behaviour as Parameters.
type Dictionary struct {
	m orderedMap[Member]
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{}
}

// Set inserts or replaces the member for key.
func (d *Dictionary) Set(key string, v Member) {
	d.m.set(key, v)
}

// Get returns the member for key.
func (d *Dictionary) Get(key string) (Member, bool) {
	if d == nil {
		return nil, false
	}
	return d.m.get(key)
}

// Len returns the number of members.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.m.keys)
}

// Keys returns the keys in insertion order.
func (d *Dictionary) Keys() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.m.keys))
	copy(out, d.m.keys)
	return out
}

// At returns the i'th key and member in insertion order.
func (d *Dictionary) At(i int) (string, Member) {
	return d.m.keys[i], d.m.vals[i]
}
