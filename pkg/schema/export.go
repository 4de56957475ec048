package schema

// Exporter turns a normalized tree back into its document form: enum codes
// become names and export hooks replace the fields they own. Importing the
// result again yields the normalized tree.
type Exporter struct{}

// NewExporter creates an Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export converts data, a normalized value for node.
func (e *Exporter) Export(node *Node, data any, path string) (any, error) {
	if data == nil {
		return nil, nil
	}
	return e.exportValue(node, data, path)
}

func (e *Exporter) exportValue(node *Node, value any, path string) (any, error) {
	switch node.Kind {
	case KindString:
		s, ok := value.(string)
		if !ok {
			return nil, mismatch(path, "a character string", value)
		}
		if node.In == nil {
			return s, nil
		}
		name, ok := node.In.Name(s)
		if !ok {
			return nil, badEnum(path, s)
		}
		return name, nil
	case KindRecord:
		return e.exportRecord(node, value, path)
	case KindSequence:
		items, ok := value.([]any)
		if !ok {
			return nil, mismatch(path, "an indexed array", value)
		}
		out := make([]any, 0, len(items))
		for i, item := range items {
			rec, err := e.exportRecord(node, item, elementPath(path, node.Prefix, i))
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
		}
		return out, nil
	default:
		return value, nil
	}
}

func (e *Exporter) exportRecord(node *Node, value any, path string) (Record, error) {
	in, err := asRecord(value, path)
	if err != nil {
		return nil, err
	}
	for _, key := range sortedKeys(in) {
		if !node.declares(key) {
			return nil, unexpected(join(path, key), key)
		}
	}

	out := make(Record, len(in))
	for _, f := range node.Fields {
		fpath := join(path, f.Name)
		if f.Node.Hooks != nil && f.Node.Hooks.Export != nil {
			val, err := f.Node.Hooks.Export(in)
			if err != nil {
				return nil, withPath(err, fpath)
			}
			if val != nil {
				out[f.Name] = val
			}
			continue
		}
		val, ok := in[f.Name]
		if !ok || val == nil {
			continue
		}
		exported, err := e.exportValue(f.Node, val, fpath)
		if err != nil {
			return nil, err
		}
		out[f.Name] = exported
	}
	return out, nil
}
