/*
Package sfv parses and serializes HTTP Structured Field Values (RFC 8941).

Structured field values are a grammar-strict textual encoding for typed,
ordered data carried in HTTP header and trailer fields. A field value is
one of three top-level shapes (an Item, a List, or a Dictionary) built
from six scalar types: integers, decimals, strings, tokens, byte sequences
and booleans.

Parsing is strict: every grammar violation fails the whole parse, and the
entire input must be consumed apart from optional whitespace. There is no
lenient mode and no partial result.

	item, err := sfv.ParseItem([]byte(`text/html; q=0.8`))
	if err != nil {
		// handle error
	}
	// item.Value is sfv.Token("text/html"), item.Params holds q=0.8

The three entry points mirror the three field shapes:

	sfv.ParseItem(data)       // one item
	sfv.ParseList(data)       // comma-separated items and inner lists
	sfv.ParseDictionary(data) // comma-separated key=member pairs

When a field occurs more than once in a message, join the raw occurrences
with ", " before parsing; the package never inspects HTTP messages itself.

Parse failures are reported as *ParseError carrying an ErrorKind and the
byte offset of the failure:

	var pe *sfv.ParseError
	if errors.As(err, &pe) {
		// pe.Kind, pe.Offset
	}

Parameters and dictionaries preserve insertion order. Setting a key that
already exists replaces its value but keeps the position where the key
first appeared.

All parse output is fully owned: strings, tokens and byte sequence
payloads are copied out of the input, so the input buffer may be reused as
soon as the call returns. A parse is synchronous and allocation is limited
to the output structure; independent parses may run concurrently.

MarshalItem, MarshalList and MarshalDictionary produce the canonical RFC
8941 encoding of a value, validating ranges and character classes on the
way out. Parsing the marshaled form of any parsed value yields an
identical structure.
*/
package sfv
