// Package fixture loads and runs conformance test cases against the sfv
// parser.
//
// Fixture files are JSONC (JSON extended with comments and trailing
// commas), each holding an array of cases. A case names the header type to
// parse as, one or more raw field lines to join with ", ", and the
// expected structure in a generic JSON shape:
//
//   - items are [bare-item, parameters]
//   - inner lists are [[item, ...], parameters]
//   - parameters and dictionaries are arrays of [key, value] pairs, in
//     order
//   - tokens are {"__type": "token", "value": "..."} and byte sequences
//     {"__type": "binary", "value": "<base64>"}
//
// A case with must_fail set is required to fail; can_fail permits either
// outcome.
package fixture

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"reflect"
	"strings"

	"github.com/tidwall/jsonc"

	sfv "github.com/KimNorgaard/go-sfv"
)

// Case is one conformance test case.
type Case struct {
	Name       string          `json:"name"`
	HeaderType string          `json:"header_type"`
	Raw        []string        `json:"raw"`
	Expected   json.RawMessage `json:"expected"`
	MustFail   bool            `json:"must_fail"`
	CanFail    bool            `json:"can_fail"`
}

// Load reads a JSONC fixture file and returns its cases.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var cases []Case
	if err := json.Unmarshal(jsonc.ToJSON(data), &cases); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// Input returns the raw lines joined with ", ", the combination rule for
// repeated header fields.
func (c *Case) Input() []byte {
	return []byte(strings.Join(c.Raw, ", "))
}

// Verify parses the case input and checks the outcome against the
// expectations. It returns nil when the case passes.
func (c *Case) Verify() error {
	got, err := c.parse()
	if err != nil {
		if c.MustFail || c.CanFail {
			return nil
		}
		return fmt.Errorf("parse failed: %w", err)
	}
	if c.MustFail {
		return fmt.Errorf("parse succeeded, expected failure")
	}
	if len(c.Expected) == 0 {
		return nil
	}
	var want any
	if err := json.Unmarshal(c.Expected, &want); err != nil {
		return fmt.Errorf("bad expected value: %w", err)
	}
	if !equal(want, got) {
		return fmt.Errorf("got %v, want %v", got, want)
	}
	return nil
}

func (c *Case) parse() (any, error) {
	switch c.HeaderType {
	case "item":
		item, err := sfv.ParseItem(c.Input())
		if err != nil {
			return nil, err
		}
		return GenericItem(item), nil
	case "list":
		list, err := sfv.ParseList(c.Input())
		if err != nil {
			return nil, err
		}
		return GenericList(list), nil
	case "dictionary":
		dict, err := sfv.ParseDictionary(c.Input())
		if err != nil {
			return nil, err
		}
		return GenericDictionary(dict), nil
	default:
		return nil, fmt.Errorf("unknown header type %q", c.HeaderType)
	}
}

// GenericItem converts a parsed item to the generic JSON shape.
func GenericItem(item sfv.Item) any {
	return []any{genericBare(item.Value), genericParams(item.Params)}
}

// GenericList converts a parsed list to the generic JSON shape.
func GenericList(list sfv.List) any {
	out := make([]any, len(list))
	for i, member := range list {
		out[i] = genericMember(member)
	}
	return out
}

// GenericDictionary converts a parsed dictionary to the generic JSON
// shape: an ordered array of [key, member] pairs.
func GenericDictionary(dict *sfv.Dictionary) any {
	out := make([]any, 0, dict.Len())
	for i := 0; i < dict.Len(); i++ {
		key, member := dict.At(i)
		out = append(out, []any{key, genericMember(member)})
	}
	return out
}

func genericMember(member sfv.Member) any {
	switch m := member.(type) {
	case sfv.Item:
		return GenericItem(m)
	case sfv.InnerList:
		items := make([]any, len(m.Items))
		for i, item := range m.Items {
			items[i] = GenericItem(item)
		}
		return []any{items, genericParams(m.Params)}
	default:
		return nil
	}
}

func genericParams(params *sfv.Parameters) any {
	out := make([]any, 0, params.Len())
	for i := 0; i < params.Len(); i++ {
		key, value := params.At(i)
		out = append(out, []any{key, genericBare(value)})
	}
	return out
}

func genericBare(value sfv.BareItem) any {
	switch v := value.(type) {
	case sfv.Integer:
		return float64(v)
	case sfv.Decimal:
		return v.Float64()
	case sfv.String:
		return string(v)
	case sfv.Token:
		return map[string]any{"__type": "token", "value": string(v)}
	case sfv.ByteSequence:
		return map[string]any{"__type": "binary", "value": base64.StdEncoding.EncodeToString(v.Data)}
	case sfv.Boolean:
		return bool(v)
	default:
		return nil
	}
}

// equal compares two generic JSON shapes, tolerating float rounding on
// numbers so decimal expectations can be written as JSON literals.
func equal(want, got any) bool {
	switch w := want.(type) {
	case float64:
		g, ok := got.(float64)
		// Relative tolerance: decimals near the twelve-digit limit round
		// in the last float64 ulp.
		return ok && math.Abs(w-g) <= 1e-9*math.Max(1, math.Abs(w))
	case []any:
		g, ok := got.([]any)
		if !ok || len(w) != len(g) {
			return false
		}
		for i := range w {
			if !equal(w[i], g[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		g, ok := got.(map[string]any)
		if !ok || len(w) != len(g) {
			return false
		}
		for k, wv := range w {
			gv, ok := g[k]
			if !ok || !equal(wv, gv) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(want, got)
	}
}
