// Package document reads and writes import documents as generic trees of
// records (map[string]any), sequences ([]any) and strings.
package document

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/darbi-a/zabbix/pkg/schema"
)

// Format is a document encoding.
type Format string

const (
	XML  Format = "xml"
	JSON Format = "json"
	YAML Format = "yaml"
)

// MaxDepth bounds the nesting of decoded documents. Real exports stay
// below 15 levels.
const MaxDepth = 128

var (
	// ErrUnknownFormat is returned for an encoding that cannot be handled.
	ErrUnknownFormat = errors.New("unknown document format")
	// ErrTooDeep is returned for a document nested deeper than MaxDepth.
	ErrTooDeep = errors.New("document nested too deeply")
)

// ParseFormat accepts xml, json, yaml and yml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "xml":
		return XML, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// FormatFromContentType picks the format from a MIME type.
func FormatFromContentType(ct string) (Format, error) {
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ct)
	}
	switch {
	case strings.HasSuffix(mediaType, "/xml"), strings.HasSuffix(mediaType, "+xml"):
		return XML, nil
	case strings.HasSuffix(mediaType, "/json"), strings.HasSuffix(mediaType, "+json"):
		return JSON, nil
	case strings.HasSuffix(mediaType, "yaml"):
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ct)
}

// Source is how the validator must read sequences of a decoded document.
func (f Format) Source() schema.Source {
	if f == XML {
		return schema.SourceXML
	}
	return schema.SourceJSON
}

// Decode reads one document.
func Decode(r io.Reader, f Format) (schema.Record, error) {
	switch f {
	case XML:
		return decodeXML(r)
	case JSON:
		return decodeJSON(r)
	case YAML:
		return decodeYAML(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Encode writes a document. XML output is not supported.
func Encode(w io.Writer, v any, f Format) error {
	switch f {
	case JSON:
		return encodeJSON(w, v)
	case YAML:
		return encodeYAML(w, v)
	}
	return fmt.Errorf("%w: cannot encode %q", ErrUnknownFormat, f)
}
