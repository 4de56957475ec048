package formats

import (
	"github.com/darbi-a/zabbix/pkg/constant"
	"github.com/darbi-a/zabbix/pkg/dsl"
)

// triggers declares a trigger or trigger prototype sequence.
func triggers(p profile, name, prefix string) *dsl.FieldBuilder {
	dependency := []*dsl.FieldBuilder{
		dsl.Str("name").Required(),
		dsl.Str("expression").Required(),
		dsl.Str("recovery_expression"),
	}
	if prefix == "trigger_prototype" {
		dependency[0], dependency[1] = dependency[1], dependency[0]
	}

	return dsl.Seq(name, prefix,
		dsl.Str("expression").Required(),
		dsl.Str("name").Required(),
		dsl.Str("correlation_mode").Default(constant.CorrelationDisabled).In(constant.TriggerCorrelationMode),
		dsl.Str("correlation_tag"),
		dsl.Seq("dependencies", "dependency", dependency...),
		dsl.Str("description"),
		yesNo("manual_close", constant.No),
		dsl.When(p.opdata, dsl.Str("opdata")),
		dsl.Str("priority").Default(constant.PriorityNotClassified).In(constant.TriggerPriority),
		dsl.Str("recovery_expression"),
		dsl.Str("recovery_mode").Default(constant.RecoveryModeExpression).In(constant.TriggerRecoveryMode),
		status(),
		tags(),
		dsl.Str("type").Default(constant.TriggerTypeSingle).In(constant.TriggerType),
		dsl.Str("url"),
	)
}
