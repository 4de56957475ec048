package document

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/darbi-a/zabbix/pkg/schema"
)

func decodeYAML(r io.Reader) (schema.Record, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	value, err := (&yamlTree{}).fromNode(&root, 0)
	if err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	rec, ok := value.(schema.Record)
	if !ok {
		return nil, fmt.Errorf("decode yaml: top level value is %T, not a mapping", value)
	}
	return rec, nil
}

// yamlTree converts a node tree, expanding aliases. An alias that refers
// to one of its own ancestors is rejected, as is a tree nested deeper than
// MaxDepth.
type yamlTree struct {
	expanding map[*yaml.Node]bool
}

// fromNode keeps scalars as written, so 4.40 stays "4.40".
func (t *yamlTree) fromNode(n *yaml.Node, depth int) (any, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("line %d: %w", n.Line, ErrTooDeep)
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return t.fromNode(n.Content[0], depth)
	case yaml.AliasNode:
		if t.expanding[n.Alias] {
			return nil, fmt.Errorf("line %d: alias %q refers to itself", n.Line, n.Value)
		}
		if t.expanding == nil {
			t.expanding = map[*yaml.Node]bool{}
		}
		t.expanding[n.Alias] = true
		defer delete(t.expanding, n.Alias)
		return t.fromNode(n.Alias, depth+1)
	case yaml.ScalarNode:
		// null is decoded like JSON null: the validator treats it as absent.
		if n.Tag == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := t.fromNode(c, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(schema.Record, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", key.Line)
			}
			v, err := t.fromNode(n.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			out[key.Value] = v
		}
		return out, nil
	}
	return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
