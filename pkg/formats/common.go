package formats

import (
	"github.com/darbi-a/zabbix/pkg/constant"
	"github.com/darbi-a/zabbix/pkg/dsl"
)

// Small fragments repeated all over the export format.

func named(name, prefix string) *dsl.FieldBuilder {
	return dsl.Seq(name, prefix, dsl.Str("name").Required())
}

func groups() *dsl.FieldBuilder       { return named("groups", "group").Required() }
func applications() *dsl.FieldBuilder { return named("applications", "application") }
func linkedTemplates() *dsl.FieldBuilder {
	return named("templates", "template")
}

func tags() *dsl.FieldBuilder {
	return dsl.Seq("tags", "tag",
		dsl.Str("tag").Required(),
		dsl.Str("value"),
	)
}

func macros() *dsl.FieldBuilder {
	return dsl.Seq("macros", "macro",
		dsl.Str("macro").Required(),
		dsl.Str("value"),
	)
}

func headers() *dsl.FieldBuilder {
	return dsl.Seq("headers", "header", dsl.RequiredStrs("name", "value")...)
}

func variables() *dsl.FieldBuilder {
	return dsl.Seq("variables", "variable", dsl.RequiredStrs("name", "value")...)
}

func queryFields() *dsl.FieldBuilder {
	return dsl.Seq("query_fields", "query_field",
		dsl.Str("name").Required(),
		dsl.Str("value"),
	)
}

func yesNo(name, def string) *dsl.FieldBuilder {
	return dsl.Str(name).Default(def).In(constant.YesNo)
}

func status() *dsl.FieldBuilder {
	return dsl.Str("status").Default(constant.Enabled).In(constant.Status)
}

func valueMaps() *dsl.FieldBuilder {
	return dsl.Seq("value_maps", "value_map",
		dsl.Str("name").Required(),
		dsl.Seq("mappings", "mapping", dsl.Strs("value", "newvalue")...),
	)
}

func images() *dsl.FieldBuilder {
	return dsl.Seq("images", "image", dsl.RequiredStrs("name", "imagetype", "encodedImage")...)
}
