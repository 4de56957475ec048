package document

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/darbi-a/zabbix/pkg/schema"
)

func decodeJSON(r io.Reader) (schema.Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	rec, ok := stringify(raw).(schema.Record)
	if !ok {
		return nil, fmt.Errorf("decode json: top level value is %T, not an object", raw)
	}
	return rec, nil
}

// stringify turns every scalar into the string the schema expects.
func stringify(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = stringify(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = stringify(item)
		}
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	}
	return v
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
