package schema

// Hooks are optional callbacks attached to a node. A nil func is skipped.
//
// Callbacks receive the parent record as assembled so far: fields already
// validated hold their checked value (enum fields keep the name they were
// given, absent fields their default), fields not reached yet hold their raw
// input. Discriminators must therefore be declared before the fields that
// read them.
type Hooks struct {
	// Preprocess rewrites a present raw value before any check.
	Preprocess func(value any) (any, error)

	// ExtendedRules replaces the node for this field. Returning nil keeps
	// the declared node.
	ExtendedRules func(parent Record) *Node

	// RequiredWhen makes an optional field required.
	RequiredWhen func(parent Record) bool

	// ExtendedValidate runs after the standard checks and the union. It
	// may call v.Validate with a sub-schema of its choosing.
	ExtendedValidate func(v *Validator, value any, parent Record, path string) (any, error)

	// Import supplies the raw value of the field from the parent record,
	// whether or not the field was present. ok=false leaves it absent.
	Import func(parent Record) (value any, ok bool)

	// Export produces the exported value of the field from the normalized
	// parent record. A nil value omits the field.
	Export func(record Record) (any, error)
}

func (h *Hooks) names() []string {
	if h == nil {
		return nil
	}
	var out []string
	if h.Preprocess != nil {
		out = append(out, "preprocess")
	}
	if h.ExtendedRules != nil {
		out = append(out, "extended_rules")
	}
	if h.RequiredWhen != nil {
		out = append(out, "required_when")
	}
	if h.ExtendedValidate != nil {
		out = append(out, "extended_validate")
	}
	if h.Import != nil {
		out = append(out, "import")
	}
	if h.Export != nil {
		out = append(out, "export")
	}
	return out
}
