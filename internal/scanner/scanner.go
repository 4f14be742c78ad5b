// Package scanner provides a forward-only byte cursor over a field value.
//
// The scanner never copies or mutates its input; TakeWhile returns
// sub-slices of the original buffer. The structured field grammar needs at
// most one byte of lookahead, so the only primitives are Peek, Next, Accept
// and TakeWhile.
package scanner

// Scanner tracks a position in an immutable byte slice.
type Scanner struct {
	data []byte
	pos  int
}

// New returns a scanner positioned at the start of data.
func New(data []byte) *Scanner {
	return &Scanner{data: data}
}

// Pos returns the current byte offset.
func (s *Scanner) Pos() int {
	return s.pos
}

// EOF reports whether the input is exhausted.
func (s *Scanner) EOF() bool {
	return s.pos >= len(s.data)
}

// Peek returns the next byte without consuming it.
func (s *Scanner) Peek() (byte, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	return s.data[s.pos], true
}

// Next consumes and returns the next byte.
func (s *Scanner) Next() (byte, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	b := s.data[s.pos]
	s.pos++
	return b, true
}

// Accept consumes the next byte if it equals b.
func (s *Scanner) Accept(b byte) bool {
	if s.pos < len(s.data) && s.data[s.pos] == b {
		s.pos++
		return true
	}
	return false
}

// TakeWhile consumes bytes while pred holds and returns them as a sub-slice
// of the underlying input. The returned slice aliases the input buffer.
func (s *Scanner) TakeWhile(pred func(byte) bool) []byte {
	start := s.pos
	for s.pos < len(s.data) && pred(s.data[s.pos]) {
		s.pos++
	}
	return s.data[start:s.pos]
}

// SkipSP consumes a run of space characters and returns how many were
// consumed. Tabs are not spaces; inner lists and parameters permit SP only.
func (s *Scanner) SkipSP() int {
	n := 0
	for s.pos < len(s.data) && s.data[s.pos] == ' ' {
		s.pos++
		n++
	}
	return n
}

// SkipOWS consumes optional whitespace: spaces and horizontal tabs.
func (s *Scanner) SkipOWS() {
	for s.pos < len(s.data) {
		if b := s.data[s.pos]; b != ' ' && b != '\t' {
			return
		}
		s.pos++
	}
}

// RestIsOWS reports whether only spaces and tabs remain. It does not
// consume anything.
func (s *Scanner) RestIsOWS() bool {
	for i := s.pos; i < len(s.data); i++ {
		if b := s.data[i]; b != ' ' && b != '\t' {
			return false
		}
	}
	return true
}
