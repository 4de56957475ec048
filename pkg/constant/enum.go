package constant

import "strings"

// Pair binds an internal code to the symbolic name used in export documents.
type Pair struct {
	Code string
	Name string
}

// E is shorthand for a Pair literal.
func E(code, name string) Pair {
	return Pair{Code: code, Name: name}
}

// Enum is an ordered, read-only table of code/name pairs.
type Enum struct {
	pairs  []Pair
	byName map[string]string
	byCode map[string]string
}

// NewEnum builds a table. Later duplicates of a code or a name are ignored.
func NewEnum(pairs ...Pair) *Enum {
	e := &Enum{
		pairs:  make([]Pair, 0, len(pairs)),
		byName: make(map[string]string, len(pairs)),
		byCode: make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		if _, ok := e.byName[p.Name]; ok {
			continue
		}
		if _, ok := e.byCode[p.Code]; ok {
			continue
		}
		e.pairs = append(e.pairs, p)
		e.byName[p.Name] = p.Code
		e.byCode[p.Code] = p.Name
	}
	return e
}

// Code resolves a symbolic name to its internal code.
func (e *Enum) Code(name string) (string, bool) {
	code, ok := e.byName[name]
	return code, ok
}

// Name resolves an internal code to its symbolic name.
func (e *Enum) Name(code string) (string, bool) {
	name, ok := e.byCode[code]
	return name, ok
}

// Len returns the number of pairs.
func (e *Enum) Len() int { return len(e.pairs) }

// Names returns the symbolic names in declaration order.
func (e *Enum) Names() []string {
	out := make([]string, len(e.pairs))
	for i, p := range e.pairs {
		out[i] = p.Name
	}
	return out
}

// Without returns a new table lacking the given codes.
func (e *Enum) Without(codes ...string) *Enum {
	drop := make(map[string]bool, len(codes))
	for _, c := range codes {
		drop[c] = true
	}
	kept := make([]Pair, 0, len(e.pairs))
	for _, p := range e.pairs {
		if !drop[p.Code] {
			kept = append(kept, p)
		}
	}
	return NewEnum(kept...)
}

func (e *Enum) String() string {
	return "[" + strings.Join(e.Names(), ",") + "]"
}
