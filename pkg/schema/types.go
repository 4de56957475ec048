package schema

import (
	"slices"
	"strconv"

	"github.com/darbi-a/zabbix/pkg/constant"
)

// Kind selects how a node's value is checked.
type Kind int

const (
	// KindRecord is a closed mapping of field names to values.
	KindRecord Kind = iota
	// KindSequence is an ordered list of records sharing Fields.
	KindSequence
	// KindString is a scalar string.
	KindString
	// KindOpaque has no shape of its own; hooks and unions decide.
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindRecord:
		return "record"
	case KindSequence:
		return "sequence"
	case KindString:
		return "string"
	case KindOpaque:
		return "opaque"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Record is the document form of a record.
type Record = map[string]any

// Field is a named child of a record. Field order is validation order.
type Field struct {
	Name string
	Node *Node
}

// Node describes one field, or one sequence of records.
type Node struct {
	Kind     Kind
	Required bool
	// Default is used when an optional field is absent. nil means none.
	Default *string
	// In restricts a string to the names of an enum; the code is emitted.
	In *constant.Enum
	// Prefix names sequence elements in paths and XML keys.
	Prefix string
	// Fields are the children of a record, or of each sequence element.
	Fields []Field
	Union  *Union
	Hooks  *Hooks
}

// Field returns the child named name.
func (n *Node) Field(name string) (*Node, bool) {
	for _, f := range n.Fields {
		if f.Name == name {
			return f.Node, true
		}
	}
	return nil, false
}

func (n *Node) container() bool {
	return n.Kind == KindRecord || n.Kind == KindSequence
}

func (n *Node) declares(name string) bool {
	_, ok := n.Field(name)
	return ok
}

// Union selects a record shape from the value of a sibling field.
type Union struct {
	// Discriminator is the sibling field that picks the variant.
	Discriminator string
	// Variants maps discriminator values to shapes.
	Variants map[string]*Node
	// Fallback is used for unlisted values. nil passes the value through.
	Fallback *Node
	// NumericOnly passes the value through when the discriminator is not an
	// integer, which is the case while it still holds a symbolic name.
	NumericOnly bool
}

// Select returns the shape for parent, or false when the value must pass
// through unchecked.
func (u *Union) Select(parent Record) (*Node, bool) {
	raw, present := parent[u.Discriminator]
	d, isString := raw.(string)
	if !present || !isString {
		return u.fallback()
	}
	if u.NumericOnly && !IsInt(d) {
		return nil, false
	}
	if n, ok := u.Variants[d]; ok {
		return n, true
	}
	return u.fallback()
}

// Keys returns the variant values in sorted order.
func (u *Union) Keys() []string {
	keys := make([]string, 0, len(u.Variants))
	for k := range u.Variants {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (u *Union) fallback() (*Node, bool) {
	if u.Fallback == nil {
		return nil, false
	}
	return u.Fallback, true
}

// IsInt reports whether s is a decimal integer, optionally signed.
func IsInt(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// Str returns a pointer to s, for Default.
func Str(s string) *string {
	return &s
}
