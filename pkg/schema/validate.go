package schema

import (
	"slices"
	"strconv"
)

// Source names the encoding a document was decoded from. It only changes
// how sequences may be spelled.
type Source int

const (
	// SourceJSON expects sequences as lists.
	SourceJSON Source = iota
	// SourceXML also accepts sequences as records keyed prefix, prefix1,
	// prefix2 ..., which is how repeated XML tags are decoded.
	SourceXML
)

func (s Source) String() string {
	if s == SourceXML {
		return "xml"
	}
	return "json"
}

// Validator applies a schema graph to documents. It holds no per-call state.
type Validator struct {
	source Source
}

// Option configures a Validator.
type Option func(*Validator)

// WithSource sets the encoding of the documents.
func WithSource(s Source) Option {
	return func(v *Validator) {
		v.source = s
	}
}


// NewValidator creates a Validator.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks data against node and returns the normalized value.
// A nil data is an absent value: it fails when node is required, yields the
// default for scalars and an empty record or sequence otherwise.
func (v *Validator) Validate(node *Node, data any, path string) (any, error) {
	if data == nil {
		if node.Required {
			return nil, missing(path, lastSegment(path))
		}
		switch node.Kind {
		case KindRecord:
			return v.validateRecord(node, Record{}, path)
		case KindSequence:
			return []any{}, nil
		}
		if node.Default != nil {
			return *node.Default, nil
		}
		return nil, nil
	}
	return v.validateValue(node, data, nil, path)
}

func (v *Validator) validateValue(node *Node, raw any, parent Record, path string) (any, error) {
	var err error
	if node.Hooks != nil && node.Hooks.Preprocess != nil {
		if raw, err = node.Hooks.Preprocess(raw); err != nil {
			return nil, withPath(err, path)
		}
	}

	var out any
	switch node.Kind {
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, mismatch(path, "a character string", raw)
		}
		out = s
		if node.In != nil {
			code, ok := node.In.Code(s)
			if !ok {
				return nil, badEnum(path, s)
			}
			out = code
		}
	case KindRecord:
		if out, err = v.validateRecord(node, raw, path); err != nil {
			return nil, err
		}
	case KindSequence:
		if out, err = v.validateSequence(node, raw, path); err != nil {
			return nil, err
		}
	default:
		out = raw
	}

	if node.Union != nil {
		if shape, ok := node.Union.Select(parent); ok {
			if out, err = v.validateValue(shape, out, parent, path); err != nil {
				return nil, err
			}
		}
	}

	if node.Hooks != nil && node.Hooks.ExtendedValidate != nil {
		if out, err = node.Hooks.ExtendedValidate(v, out, parent, path); err != nil {
			return nil, withPath(err, path)
		}
	}
	return out, nil
}

func (v *Validator) validateRecord(node *Node, raw any, path string) (Record, error) {
	in, err := asRecord(raw, path)
	if err != nil {
		return nil, err
	}

	// Unknown tags are reported before any field is descended into.
	for _, key := range sortedKeys(in) {
		if !node.declares(key) {
			return nil, unexpected(join(path, key), key)
		}
	}

	parent := make(Record, len(in))
	for k, val := range in {
		parent[k] = val
	}
	out := make(Record, len(node.Fields))

	for _, f := range node.Fields {
		declared := f.Node
		effective := declared
		fpath := join(path, f.Name)
		hooks := declared.Hooks

		if hooks != nil && hooks.ExtendedRules != nil {
			if repl := hooks.ExtendedRules(parent); repl != nil {
				effective = repl
			}
		}

		value, present := in[f.Name]
		if hooks != nil && hooks.Import != nil {
			value, present = hooks.Import(parent)
		}
		// A null scalar is an absent one; a null record or sequence is an
		// empty tag.
		if present && value == nil && !effective.container() {
			present = false
		}

		required := effective.Required
		if hooks != nil && hooks.RequiredWhen != nil && hooks.RequiredWhen(parent) {
			required = true
		}

		if !present {
			if required {
				return nil, missing(fpath, f.Name)
			}
			if effective.Default != nil {
				out[f.Name] = *effective.Default
				parent[f.Name] = *effective.Default
			} else {
				delete(parent, f.Name)
			}
			continue
		}

		checked, err := v.validateField(declared, effective, value, parent, fpath)
		if err != nil {
			return nil, err
		}
		out[f.Name] = checked
		if effective.In != nil {
			parent[f.Name] = value
		} else {
			parent[f.Name] = checked
		}
	}
	return out, nil
}

// validateField checks value against effective, keeping the union and the
// extended validation of the declared node when rules were replaced.
func (v *Validator) validateField(declared, effective *Node, value any, parent Record, path string) (any, error) {
	if declared == effective {
		return v.validateValue(declared, value, parent, path)
	}
	merged := *effective
	if merged.Union == nil {
		merged.Union = declared.Union
	}
	if merged.Hooks == nil && declared.Hooks != nil {
		merged.Hooks = &Hooks{
			Preprocess:       declared.Hooks.Preprocess,
			ExtendedValidate: declared.Hooks.ExtendedValidate,
		}
	}
	return v.validateValue(&merged, value, parent, path)
}

func (v *Validator) validateSequence(node *Node, raw any, path string) ([]any, error) {
	items, err := v.asSequence(node, raw, path)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(items))
	for i, item := range items {
		rec, err := v.validateRecord(node, item, elementPath(path, node.Prefix, i))
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// asSequence normalizes the accepted spellings of a sequence to a list.
func (v *Validator) asSequence(node *Node, raw any, path string) ([]any, error) {
	switch val := raw.(type) {
	case nil:
		return []any{}, nil
	case string:
		if val == "" {
			return []any{}, nil
		}
	case []any:
		return val, nil
	case Record:
		if v.source == SourceXML {
			return indexedElements(val, node.Prefix, path)
		}
	}
	return nil, mismatch(path, "an indexed array", raw)
}

// indexedElements orders the prefix, prefix1, prefix2 ... keys the XML
// decoder produces for repeated tags.
func indexedElements(rec Record, prefix, path string) ([]any, error) {
	out := make([]any, len(rec))
	for i := range out {
		key := prefix
		if i > 0 {
			key += strconv.Itoa(i)
		}
		val, ok := rec[key]
		if !ok {
			return nil, unexpected(join(path, strayKey(rec, prefix)), strayKey(rec, prefix))
		}
		out[i] = val
	}
	return out, nil
}

// strayKey returns the first key, in sorted order, that is not a valid
// element key for prefix in a record of this size.
func strayKey(rec Record, prefix string) string {
	valid := make(map[string]bool, len(rec))
	for i := range len(rec) {
		key := prefix
		if i > 0 {
			key += strconv.Itoa(i)
		}
		valid[key] = true
	}
	for _, k := range sortedKeys(rec) {
		if !valid[k] {
			return k
		}
	}
	return prefix
}

func asRecord(raw any, path string) (Record, error) {
	switch val := raw.(type) {
	case nil:
		return Record{}, nil
	case string:
		if val == "" {
			return Record{}, nil
		}
	case Record:
		return val, nil
	}
	return nil, mismatch(path, "an array", raw)
}

func sortedKeys(rec Record) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func join(path, name string) string {
	return path + "/" + name
}

func elementPath(path, prefix string, index int) string {
	return path + "/" + prefix + "(" + strconv.Itoa(index+1) + ")"
}

func lastSegment(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}
