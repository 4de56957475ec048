package schema

import (
	"encoding/json"
	"fmt"
)

type nodeJSON struct {
	Kind     string      `json:"kind"`
	Required bool        `json:"required,omitempty"`
	Default  *string     `json:"default,omitempty"`
	In       []string    `json:"in,omitempty"`
	Prefix   string      `json:"prefix,omitempty"`
	Fields   []fieldJSON `json:"fields,omitempty"`
	Union    *unionJSON  `json:"union,omitempty"`
	Hooks    []string    `json:"hooks,omitempty"`
}

type fieldJSON struct {
	Name string `json:"name"`
	Node *Node  `json:"node"`
}

type unionJSON struct {
	Discriminator string        `json:"discriminator"`
	NumericOnly   bool          `json:"numeric_only,omitempty"`
	Variants      []variantJSON `json:"variants"`
	Fallback      *Node         `json:"fallback,omitempty"`
}

type variantJSON struct {
	Value string `json:"value"`
	Node  *Node  `json:"node"`
}

// MarshalJSON describes the node and its children. Fields keep their
// declaration order; union variants are sorted by discriminator value.
// Hooks are listed by name only.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	raw := nodeJSON{
		Kind:     n.Kind.String(),
		Required: n.Required,
		Default:  n.Default,
		Prefix:   n.Prefix,
		Hooks:    n.Hooks.names(),
	}
	if n.In != nil {
		raw.In = n.In.Names()
	}
	for _, f := range n.Fields {
		if f.Node == nil {
			return nil, fmt.Errorf("field %s: node is nil", f.Name)
		}
		raw.Fields = append(raw.Fields, fieldJSON{Name: f.Name, Node: f.Node})
	}
	if n.Union != nil {
		u := &unionJSON{
			Discriminator: n.Union.Discriminator,
			NumericOnly:   n.Union.NumericOnly,
			Fallback:      n.Union.Fallback,
		}
		for _, k := range n.Union.Keys() {
			u.Variants = append(u.Variants, variantJSON{Value: k, Node: n.Union.Variants[k]})
		}
		raw.Union = u
	}
	return json.Marshal(raw)
}

// Stats counts the nodes reachable from n, union shapes included.
type Stats struct {
	Nodes     int `json:"nodes"`
	Records   int `json:"records"`
	Sequences int `json:"sequences"`
	Enums     int `json:"enums"`
	Hooked    int `json:"hooked"`
}

// Count walks the graph below n.
func Count(n *Node) Stats {
	var s Stats
	count(n, &s)
	return s
}

func count(n *Node, s *Stats) {
	if n == nil {
		return
	}
	s.Nodes++
	switch n.Kind {
	case KindRecord:
		s.Records++
	case KindSequence:
		s.Sequences++
	}
	if n.In != nil {
		s.Enums++
	}
	if len(n.Hooks.names()) > 0 {
		s.Hooked++
	}
	for _, f := range n.Fields {
		count(f.Node, s)
	}
	if n.Union != nil {
		for _, v := range n.Union.Variants {
			count(v, s)
		}
		count(n.Union.Fallback, s)
	}
}
