package formats

import "github.com/darbi-a/zabbix/pkg/dsl"

func optionalName(field string) *dsl.FieldBuilder {
	return dsl.Rec(field, dsl.Str("name")).Required()
}

func maps() *dsl.FieldBuilder {
	return dsl.Seq("maps", "map", append(
		dsl.RequiredStrs(
			"name", "width", "height", "label_type", "label_location",
			"highlight", "expandproblem", "markelements", "show_unack",
			"severity_min", "show_suppressed", "grid_size", "grid_show",
			"grid_align", "label_format", "label_type_host",
			"label_type_hostgroup", "label_type_trigger", "label_type_map",
			"label_type_image", "label_string_host", "label_string_hostgroup",
			"label_string_trigger", "label_string_map", "label_string_image",
			"expand_macros",
		),
		optionalName("background"),
		optionalName("iconmap"),
		dsl.Seq("urls", "url", dsl.RequiredStrs("name", "url", "elementtype")...).Required(),
		selements(),
		shapes(),
		lines(),
		links(),
	)...)
}

func selements() *dsl.FieldBuilder {
	return dsl.Seq("selements", "selement",
		dsl.Str("elementtype").Required(),
		dsl.Any("elements").
			RequiredWhen(mapElementRequired).
			Union(mapElements),
		dsl.Str("label").Required(),
		dsl.Str("label_location").Required(),
		dsl.Str("x").Required(),
		dsl.Str("y").Required(),
		dsl.Str("elementsubtype").Required(),
		dsl.Str("areatype").Required(),
		dsl.Str("width").Required(),
		dsl.Str("height").Required(),
		dsl.Str("viewtype").Required(),
		dsl.Str("use_iconmap").Required(),
		dsl.Str("selementid").Required(),
		dsl.Rec("icon_off", dsl.Str("name").Required()).Required(),
		optionalName("icon_on"),
		optionalName("icon_disabled"),
		optionalName("icon_maintenance"),
		dsl.Str("application").Required(),
		dsl.Seq("urls", "url", dsl.RequiredStrs("name", "url")...).Required(),
	).Required()
}

func shapes() *dsl.FieldBuilder {
	return dsl.Seq("shapes", "shape", dsl.RequiredStrs(
		"type", "x", "y", "width", "height", "text", "font", "font_size",
		"font_color", "text_halign", "text_valign", "border_type",
		"border_width", "border_color", "background_color", "zindex",
	)...).Required()
}

func lines() *dsl.FieldBuilder {
	return dsl.Seq("lines", "line", dsl.RequiredStrs(
		"x1", "y1", "x2", "y2", "line_type", "line_width", "line_color", "zindex",
	)...).Required()
}

func links() *dsl.FieldBuilder {
	return dsl.Seq("links", "link",
		dsl.Str("drawtype").Required(),
		dsl.Str("color").Required(),
		dsl.Str("label").Required(),
		dsl.Str("selementid1").Required(),
		dsl.Str("selementid2").Required(),
		dsl.Seq("linktriggers", "linktrigger",
			dsl.Str("drawtype").Required(),
			dsl.Str("color").Required(),
			dsl.Rec("trigger", dsl.RequiredStrs("description", "expression", "recovery_expression")...).Required(),
		).Required(),
	).Required()
}
