package document

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/darbi-a/zabbix/pkg/schema"
)

// decodeXML builds the tree of an XML document. Elements with children
// become records; repeated tags are keyed tag, tag1, tag2 ... in document
// order. Leaf elements become their text, "" when blank. Attributes are
// ignored.
func decodeXML(r io.Reader) (schema.Record, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("decode xml: no root element")
			}
			return nil, fmt.Errorf("decode xml: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			value, err := decodeElement(dec, 1)
			if err != nil {
				return nil, fmt.Errorf("decode xml: %w", err)
			}
			return schema.Record{start.Name.Local: value}, nil
		}
	}
}

func decodeElement(dec *xml.Decoder, depth int) (any, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("line %d: %w", line(dec), ErrTooDeep)
	}
	var (
		text     strings.Builder
		children schema.Record
		seen     map[string]int
	)
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			value, err := decodeElement(dec, depth+1)
			if err != nil {
				return nil, err
			}
			if children == nil {
				children = schema.Record{}
				seen = map[string]int{}
			}
			name := t.Name.Local
			key := name
			if n := seen[name]; n > 0 {
				key = name + strconv.Itoa(n)
			}
			seen[name]++
			if _, dup := children[key]; dup {
				return nil, fmt.Errorf("line %d: tag <%s> collides with a repeated <%s>", line(dec), key, strings.TrimRight(key, "0123456789"))
			}
			children[key] = value
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if children != nil {
				return children, nil
			}
			if strings.TrimSpace(text.String()) == "" {
				return "", nil
			}
			return text.String(), nil
		}
	}
}

func line(dec *xml.Decoder) int {
	l, _ := dec.InputPos()
	return l
}
