package dsl

import "github.com/darbi-a/zabbix/pkg/schema"

// Builder manages the ordered fields of one record.
type Builder struct {
	fields []*FieldBuilder
	index  map[string]*FieldBuilder
}

// New creates a new record builder.
func New() *Builder {
	return &Builder{
		index: make(map[string]*FieldBuilder),
	}
}

// Add creates a new string field at the end of the record.
// If the field already exists, it returns the existing builder.
func (b *Builder) Add(name string) *FieldBuilder {
	if fb, ok := b.index[name]; ok {
		return fb
	}
	fb := Str(name)
	b.append(fb)
	return fb
}

// Include appends prepared fields. nil entries are skipped; a field whose
// name is already taken replaces the earlier one in place.
func (b *Builder) Include(fields ...*FieldBuilder) *Builder {
	for _, fb := range fields {
		if fb == nil {
			continue
		}
		if _, ok := b.index[fb.name]; ok {
			for i, existing := range b.fields {
				if existing.name == fb.name {
					b.fields[i] = fb
				}
			}
			b.index[fb.name] = fb
			continue
		}
		b.append(fb)
	}
	return b
}

func (b *Builder) append(fb *FieldBuilder) {
	b.fields = append(b.fields, fb)
	b.index[fb.name] = fb
}

// Fields builds the declared fields in order.
func (b *Builder) Fields() []schema.Field {
	return buildFields(b.fields)
}

// Record builds a record node holding the declared fields.
func (b *Builder) Record() *schema.Node {
	return &schema.Node{Kind: schema.KindRecord, Fields: b.Fields()}
}

// Shape builds an anonymous record node, as used for union variants.
func Shape(children ...*FieldBuilder) *schema.Node {
	return New().Include(children...).Record()
}

// List builds an anonymous sequence node.
func List(prefix string, children ...*FieldBuilder) *schema.Node {
	return &schema.Node{Kind: schema.KindSequence, Prefix: prefix, Fields: buildFields(children)}
}

// When returns fb if cond holds and nil otherwise. Record builders skip nil
// children, which keeps per-format fields inline.
func When(cond bool, fb *FieldBuilder) *FieldBuilder {
	if !cond {
		return nil
	}
	return fb
}

// Strs declares optional string fields.
func Strs(names ...string) []*FieldBuilder {
	out := make([]*FieldBuilder, len(names))
	for i, name := range names {
		out[i] = Str(name)
	}
	return out
}

// RequiredStrs declares required string fields.
func RequiredStrs(names ...string) []*FieldBuilder {
	out := Strs(names...)
	for _, fb := range out {
		fb.Required()
	}
	return out
}

func buildFields(children []*FieldBuilder) []schema.Field {
	out := make([]schema.Field, 0, len(children))
	seen := make(map[string]int, len(children))
	for _, fb := range children {
		if fb == nil {
			continue
		}
		f := fb.Build()
		if i, ok := seen[f.Name]; ok {
			out[i] = f
			continue
		}
		seen[f.Name] = len(out)
		out = append(out, f)
	}
	return out
}
