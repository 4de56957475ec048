package formats

import (
	"github.com/darbi-a/zabbix/pkg/constant"
	"github.com/darbi-a/zabbix/pkg/dsl"
)

// graphs declares a graph or graph prototype sequence.
func graphs(name, prefix string) *dsl.FieldBuilder {
	return dsl.Seq(name, prefix,
		dsl.Seq("graph_items", "graph_item",
			dsl.Rec("item", dsl.RequiredStrs("host", "key")...).Required(),
			dsl.Str("calc_fnc").Default(constant.CalcFncAvg).In(constant.GraphCalcFunction),
			dsl.Str("color"),
			dsl.Str("drawtype").Default(constant.DrawTypeSingleLine).In(constant.GraphDrawType),
			dsl.Str("sortorder").Default("0"),
			dsl.Str("type").Default(constant.GraphItemSimple).In(constant.GraphItemType),
			dsl.Str("yaxisside").Default(constant.YAxisSideLeft).In(constant.GraphYAxisSide),
		).Required(),
		dsl.Str("name").Required(),
		dsl.Str("height").Default("200"),
		dsl.Str("percent_left").Default("0"),
		dsl.Str("percent_right").Default("0"),
		yesNo("show_3d", constant.No),
		yesNo("show_legend", constant.Yes),
		yesNo("show_triggers", constant.Yes),
		yesNo("show_work_period", constant.Yes),
		dsl.Str("type").Default(constant.GraphTypeNormal).In(constant.GraphType),
		dsl.Str("width").Default("900"),
		dsl.Str("yaxismax").Default("100"),
		dsl.Str("yaxismin").Default("0"),
		axisType("ymax_type_1"),
		axisItemField("ymax_type_1", "ymax_item_1"),
		axisType("ymin_type_1"),
		axisItemField("ymin_type_1", "ymin_item_1"),
	)
}

func axisType(name string) *dsl.FieldBuilder {
	return dsl.Str(name).Default(constant.YAxisTypeCalculated).In(constant.GraphYAxisType)
}

func axisItemField(typeField, name string) *dsl.FieldBuilder {
	return dsl.Any(name).
		Default("0").
		Preprocess(zeroToRecord).
		Union(axisItem(typeField)).
		Export(axisItemExport(typeField, name))
}
