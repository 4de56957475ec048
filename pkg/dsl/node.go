package dsl

import (
	"github.com/darbi-a/zabbix/pkg/constant"
	"github.com/darbi-a/zabbix/pkg/schema"
)

// FieldBuilder provides a fluent API for configuring one field.
type FieldBuilder struct {
	name     string
	kind     schema.Kind
	required bool
	def      *string
	in       *constant.Enum
	prefix   string
	children []*FieldBuilder
	union    *schema.Union
	hooks    schema.Hooks
}

// Str declares a string field.
func Str(name string) *FieldBuilder {
	return &FieldBuilder{name: name, kind: schema.KindString}
}

// Rec declares a record field.
func Rec(name string, children ...*FieldBuilder) *FieldBuilder {
	return &FieldBuilder{name: name, kind: schema.KindRecord, children: children}
}

// Seq declares a sequence of records whose elements are named prefix.
func Seq(name, prefix string, children ...*FieldBuilder) *FieldBuilder {
	return &FieldBuilder{name: name, kind: schema.KindSequence, prefix: prefix, children: children}
}

// Any declares an opaque field, shaped only by its union and hooks.
func Any(name string) *FieldBuilder {
	return &FieldBuilder{name: name, kind: schema.KindOpaque}
}

// Required marks the field as mandatory.
func (f *FieldBuilder) Required() *FieldBuilder {
	f.required = true
	return f
}

// Default sets the value used when the field is absent.
func (f *FieldBuilder) Default(value string) *FieldBuilder {
	f.def = schema.Str(value)
	return f
}

// In restricts the field to the names of e.
func (f *FieldBuilder) In(e *constant.Enum) *FieldBuilder {
	f.in = e
	return f
}

// Union selects the shape of the value from a sibling discriminator.
func (f *FieldBuilder) Union(u *schema.Union) *FieldBuilder {
	f.union = u
	return f
}

// Preprocess sets the raw value rewrite.
func (f *FieldBuilder) Preprocess(fn func(any) (any, error)) *FieldBuilder {
	f.hooks.Preprocess = fn
	return f
}

// Validate sets the extended validation.
func (f *FieldBuilder) Validate(fn func(*schema.Validator, any, schema.Record, string) (any, error)) *FieldBuilder {
	f.hooks.ExtendedValidate = fn
	return f
}

// Rules sets the rule selector computed from the parent record.
func (f *FieldBuilder) Rules(fn func(schema.Record) *schema.Node) *FieldBuilder {
	f.hooks.ExtendedRules = fn
	return f
}

// RequiredWhen makes the field required depending on its siblings.
func (f *FieldBuilder) RequiredWhen(fn func(schema.Record) bool) *FieldBuilder {
	f.hooks.RequiredWhen = fn
	return f
}

// Import sets the import transform.
func (f *FieldBuilder) Import(fn func(schema.Record) (any, bool)) *FieldBuilder {
	f.hooks.Import = fn
	return f
}

// Export sets the export transform.
func (f *FieldBuilder) Export(fn func(schema.Record) (any, error)) *FieldBuilder {
	f.hooks.Export = fn
	return f
}

// Node builds the schema node of the field.
func (f *FieldBuilder) Node() *schema.Node {
	n := &schema.Node{
		Kind:     f.kind,
		Required: f.required,
		In:       f.in,
		Prefix:   f.prefix,
		Union:    f.union,
	}
	if f.def != nil {
		n.Default = schema.Str(*f.def)
	}
	if len(f.children) > 0 {
		n.Fields = buildFields(f.children)
	}
	if f.hasHooks() {
		hooks := f.hooks
		n.Hooks = &hooks
	}
	return n
}

// Build builds the named field.
func (f *FieldBuilder) Build() schema.Field {
	return schema.Field{Name: f.name, Node: f.Node()}
}

func (f *FieldBuilder) hasHooks() bool {
	h := f.hooks
	return h.Preprocess != nil || h.ExtendedRules != nil || h.RequiredWhen != nil ||
		h.ExtendedValidate != nil || h.Import != nil || h.Export != nil
}
