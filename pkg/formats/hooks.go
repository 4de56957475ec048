package formats

import (
	"errors"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/darbi-a/zabbix/pkg/constant"
	"github.com/darbi-a/zabbix/pkg/dsl"
	"github.com/darbi-a/zabbix/pkg/flags"
	"github.com/darbi-a/zabbix/pkg/schema"
)

var dateTime = regexp.MustCompile(`^20[0-9]{2}-(0[1-9]|1[0-2])-(0[1-9]|[1-2][0-9]|3[01])T(2[0-3]|[01][0-9]):[0-5][0-9]:[0-5][0-9]Z$`)

// is reports whether the raw sibling field equals one of values. Siblings
// may still hold their symbolic name, so callers pass both spellings.
func is(parent schema.Record, field string, values ...string) bool {
	s, ok := parent[field].(string)
	return ok && slices.Contains(values, s)
}

func validateDateTime(_ *schema.Validator, value any, _ schema.Record, _ string) (any, error) {
	s, _ := value.(string)
	if !dateTime.MatchString(s) {
		return nil, schema.NewError(schema.MalformedScalar, value, `"YYYY-MM-DDThh:mm:ssZ" is expected`)
	}
	return value, nil
}

// zeroToRecord collapses the "0" placeholder of an empty reference.
func zeroToRecord(value any) (any, error) {
	if s, ok := value.(string); ok && s == "0" {
		return schema.Record{}, nil
	}
	return value, nil
}

// Map elements.

var mapElements = &schema.Union{
	Discriminator: "elementtype",
	NumericOnly:   true,
	Variants: map[string]*schema.Node{
		constant.MapElementHost: dsl.List("element",
			dsl.Str("host").Required(),
		),
		constant.MapElementMap: dsl.List("element",
			dsl.Str("name").Required(),
		),
		constant.MapElementHostGroup: dsl.List("element",
			dsl.Str("name").Required(),
		),
		constant.MapElementTrigger: dsl.List("element",
			dsl.RequiredStrs("description", "expression", "recovery_expression")...,
		),
	},
	Fallback: dsl.Shape(),
}

func mapElementRequired(parent schema.Record) bool {
	return is(parent, "elementtype",
		constant.MapElementHost,
		constant.MapElementMap,
		constant.MapElementTrigger,
		constant.MapElementHostGroup,
	)
}

// Screen items.

var (
	hostKeyRef = dsl.Shape(dsl.RequiredStrs("key", "host")...)

	screenResources = &schema.Union{
		Discriminator: "resourcetype",
		NumericOnly:   true,
		Variants: map[string]*schema.Node{
			constant.ScreenResourceGraph:             dsl.Shape(dsl.RequiredStrs("name", "host")...),
			constant.ScreenResourceLLDGraph:          dsl.Shape(dsl.RequiredStrs("name", "host")...),
			constant.ScreenResourceSimpleGraph:       hostKeyRef,
			constant.ScreenResourceLLDSimpleGraph:    hostKeyRef,
			constant.ScreenResourcePlainText:         hostKeyRef,
			constant.ScreenResourceMap:               dsl.Shape(dsl.Str("name").Required()),
			constant.ScreenResourceTriggerOverview:   dsl.Shape(dsl.Str("name").Required()),
			constant.ScreenResourceDataOverview:      dsl.Shape(dsl.Str("name").Required()),
			constant.ScreenResourceHostGroupTriggers: dsl.Shape(dsl.Str("name")),
			constant.ScreenResourceHostTriggers:      dsl.Shape(dsl.Str("host")),
		},
	}
)

// validateClockResource checks clocks showing host time, the one resource
// whose shape also depends on the item style.
func validateClockResource(v *schema.Validator, value any, parent schema.Record, path string) (any, error) {
	if !is(parent, "resourcetype", constant.ScreenResourceClock) || !is(parent, "style", constant.TimeTypeHost) {
		return value, nil
	}
	return v.Validate(hostKeyRef, value, path)
}

// Graph axes.

func axisItem(typeField string) *schema.Union {
	ref := dsl.Shape(dsl.RequiredStrs("host", "key")...)
	return &schema.Union{
		Discriminator: typeField,
		Variants: map[string]*schema.Node{
			constant.YAxisTypeItem: ref,
			constant.NameItem:      ref,
		},
		Fallback: dsl.Shape(),
	}
}

// axisItemExport emits the axis item reference. The "0" placeholder is left
// out, it is the default.
func axisItemExport(typeField, itemField string) func(schema.Record) (any, error) {
	return func(record schema.Record) (any, error) {
		item, ok := record[itemField]
		if !ok {
			return nil, nil
		}
		if s, isString := item.(string); isString && s == "0" {
			return nil, nil
		}
		if is(record, typeField, constant.YAxisTypeItem) {
			ref, _ := item.(schema.Record)
			_, hasHost := ref["host"]
			_, hasKey := ref["key"]
			if !hasHost || !hasKey {
				return nil, schema.NewError(schema.ConditionalSchemaViolation, item, "an array is expected")
			}
		}
		return item, nil
	}
}

// Items.

var (
	postFields = dsl.List("post_field", dsl.RequiredStrs("name", "value")...)
	plainText  = dsl.Str("").Node()
)

// validateHTTPPosts accepts either raw post data or name/value pairs.
func validateHTTPPosts(v *schema.Validator, value any, _ schema.Record, path string) (any, error) {
	switch value.(type) {
	case []any, schema.Record:
		return v.Validate(postFields, value, path)
	}
	return v.Validate(plainText, value, path)
}

var (
	masterItem          = dsl.Shape(dsl.Str("key"))
	dependentMasterItem = dsl.Shape(dsl.Str("key").Required())
)

func validateMasterItem(v *schema.Validator, value any, parent schema.Record, path string) (any, error) {
	if is(parent, "type", constant.ItemTypeDependent, constant.NameDependent) {
		return v.Validate(dependentMasterItem, value, path)
	}
	return v.Validate(masterItem, value, path)
}

var (
	sshAuthType   = dsl.Str("authtype").Default(constant.AuthPassword).In(constant.SSHAuthType).Node()
	plainAuthType = dsl.Str("authtype").Default(constant.AuthNone).In(constant.AuthType).Node()
)

// authTypeRules picks the authentication table from the item type.
func authTypeRules(parent schema.Record) *schema.Node {
	if is(parent, "type", constant.ItemTypeSSH, constant.NameSSH) {
		return sshAuthType
	}
	return plainAuthType
}

func authTypeExport(record schema.Record) (any, error) {
	if !is(record, "type", constant.ItemTypeHTTPAgent, constant.ItemTypeSSH) {
		return constant.NameNone, nil
	}
	code, _ := record["authtype"].(string)
	name, ok := authTypeRules(record).In.Name(code)
	if !ok {
		return nil, schema.NewError(schema.InvalidEnumValue, code, "unexpected constant value %q", code)
	}
	return name, nil
}

// filterImport supplies the filter of discovery rules exported without one.
func filterImport(parent schema.Record) (any, bool) {
	if f, ok := parent["filter"]; ok {
		return f, true
	}
	return schema.Record{
		"conditions": "",
		"evaltype":   constant.NameAndOr,
		"formula":    "",
	}, true
}

// Hosts.

// tlsAcceptImport sums the accepted connection types. A stored sum is kept.
func tlsAcceptImport(value any) (any, error) {
	var names []string
	switch v := value.(type) {
	case string:
		if schema.IsInt(v) {
			return v, nil
		}
		names = []string{v}
	case []string:
		names = v
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, schema.NewError(schema.TypeMismatch, item, "a character string is expected")
			}
			names = append(names, s)
		}
	case schema.Record:
		for _, key := range byIndex(v) {
			s, ok := v[key].(string)
			if !ok {
				return nil, schema.NewError(schema.TypeMismatch, v[key], "a character string is expected")
			}
			names = append(names, s)
		}
	default:
		return nil, schema.NewError(schema.TypeMismatch, value, "a character string is expected")
	}

	sum, err := constant.TLSAccept.Combine(names)
	if errors.Is(err, flags.ErrUnknownFlag) {
		return nil, schema.NewError(schema.InvalidEnumValue, value,
			"%v, one of %s is expected", err, strings.Join(flagNames(), ", "))
	}
	if err != nil {
		return nil, err
	}
	return strconv.Itoa(sum), nil
}

func tlsAcceptExport(record schema.Record) (any, error) {
	sum, _ := record["tls_accept"].(string)
	names, err := constant.TLSAccept.DecomposeString(sum)
	if err != nil {
		return nil, schema.NewError(schema.UnsupportedFlagCombination, sum, "unexpected constant %q", sum)
	}
	out := make([]any, len(names))
	for i, name := range names {
		out[i] = name
	}
	return out, nil
}

func flagNames() []string {
	var out []string
	for _, f := range constant.TLSAccept.Flags() {
		out = append(out, f.Name)
	}
	return out
}

// byIndex orders repeated XML tags: tag, tag1, tag2 ...
func byIndex(rec schema.Record) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if d := tagIndex(a) - tagIndex(b); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	return keys
}

func tagIndex(key string) int {
	i := len(key)
	for i > 0 && key[i-1] >= '0' && key[i-1] <= '9' {
		i--
	}
	n, err := strconv.Atoi(key[i:])
	if err != nil {
		return 0
	}
	return n
}
