package formats

import "github.com/darbi-a/zabbix/pkg/dsl"

func screenResource() *dsl.FieldBuilder {
	return dsl.Any("resource").
		Required().
		Preprocess(zeroToRecord).
		Union(screenResources).
		Validate(validateClockResource)
}

// screens declares global screens, where every item field is mandatory.
func screens() *dsl.FieldBuilder {
	return dsl.Seq("screens", "screen",
		dsl.Str("name").Required(),
		dsl.Str("hsize").Required(),
		dsl.Str("vsize").Required(),
		dsl.Seq("screen_items", "screen_item",
			dsl.Str("resourcetype").Required(),
			dsl.Str("style").Required(),
			screenResource(),
			dsl.Str("width").Required(),
			dsl.Str("height").Required(),
			dsl.Str("x").Required(),
			dsl.Str("y").Required(),
			dsl.Str("colspan").Required(),
			dsl.Str("rowspan").Required(),
			dsl.Str("elements").Required(),
			dsl.Str("valign").Required(),
			dsl.Str("halign").Required(),
			dsl.Str("dynamic").Required(),
			dsl.Str("sort_triggers").Required(),
			dsl.Str("url").Required(),
			dsl.Str("application").Required(),
			dsl.Str("max_columns").Required(),
		),
	)
}

// templateScreens declares screens nested in templates. The resource is
// read before resourcetype, so the union sees the raw discriminator.
func templateScreens() *dsl.FieldBuilder {
	return dsl.Seq("screens", "screen",
		dsl.Str("name"),
		dsl.Str("hsize"),
		dsl.Seq("screen_items", "screen_item",
			dsl.Str("x"),
			dsl.Str("y"),
			dsl.Str("application"),
			dsl.Str("colspan"),
			dsl.Str("dynamic"),
			dsl.Str("elements"),
			dsl.Str("halign"),
			dsl.Str("height"),
			dsl.Str("max_columns"),
			screenResource(),
			dsl.Str("resourcetype"),
			dsl.Str("rowspan"),
			dsl.Str("sort_triggers"),
			dsl.Str("style"),
			dsl.Str("url"),
			dsl.Str("valign"),
			dsl.Str("width"),
		),
		dsl.Str("vsize"),
	)
}
