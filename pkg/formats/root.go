package formats

import (
	"github.com/darbi-a/zabbix/pkg/dsl"
	"github.com/darbi-a/zabbix/pkg/schema"
)

// build assembles the complete graph of one format version.
func build(p profile) *schema.Node {
	export := dsl.Rec("zabbix_export",
		dsl.Str("version").Required(),
		dsl.Str("date").Validate(validateDateTime),
		graphs("graphs", "graph"),
		dsl.Seq("groups", "group", dsl.Str("name").Required()),
		hosts(p),
		valueMaps(),
		templates(p),
		triggers(p, "triggers", "trigger"),
		screens(),
		images(),
		maps(),
	).Required()

	return dsl.Shape(export)
}
