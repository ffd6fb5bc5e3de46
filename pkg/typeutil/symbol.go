package typeutil

// Symbol is a unique, identity-compared token. Two symbols created with the
// same description are distinct.
type Symbol struct {
	desc string
}

// NewSymbol returns a new unique symbol.
func NewSymbol(desc string) *Symbol {
	return &Symbol{desc: desc}
}

// Description returns the text the symbol was created with.
func (s *Symbol) Description() string {
	if s == nil {
		return ""
	}
	return s.desc
}

func (s *Symbol) String() string {
	return "Symbol(" + s.Description() + ")"
}
