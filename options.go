package sfv

import "fmt"

// limits bounds container sizes during a parse. Zero means unlimited; the
// grammar itself already guarantees termination, so limits exist only to
// cap memory on hostile inputs.
type limits struct {
	maxMembers          int
	maxInnerListMembers int
	maxParameters       int
}

// Option configures a parse.
type Option func(*parser) error

// MaxMembers returns an Option that caps the number of members in a
// top-level list or dictionary. n must be a positive integer.
func MaxMembers(n int) Option {
	return func(p *parser) error {
		if n <= 0 {
			return fmt.Errorf("sfv: max members must be a positive integer")
		}
		p.limits.maxMembers = n
		return nil
	}
}

// MaxInnerListMembers returns an Option that caps the number of items in
// an inner list. n must be a positive integer.
func MaxInnerListMembers(n int) Option {
	return func(p *parser) error {
		if n <= 0 {
			return fmt.Errorf("sfv: max inner list members must be a positive integer")
		}
		p.limits.maxInnerListMembers = n
		return nil
	}
}

// MaxParameters returns an Option that caps the number of parameters on
// any single item or inner list. n must be a positive integer.
func MaxParameters(n int) Option {
	return func(p *parser) error {
		if n <= 0 {
			return fmt.Errorf("sfv: max parameters must be a positive integer")
		}
		p.limits.maxParameters = n
		return nil
	}
}
