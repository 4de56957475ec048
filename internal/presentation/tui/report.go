package tui

import (
	"fmt"
	"strings"

	"github.com/darbi-a/zabbix/pkg/schema"
)

// SchemaReport describes a format version as markdown: node statistics and
// one table row per section of the export.
func SchemaReport(version string, root *schema.Node) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Import format %s\n\n", version)

	st := schema.Count(root)
	sb.WriteString("| Nodes | Records | Sequences | Enums | With hooks |\n")
	sb.WriteString("|---:|---:|---:|---:|---:|\n")
	fmt.Fprintf(&sb, "| %d | %d | %d | %d | %d |\n\n", st.Nodes, st.Records, st.Sequences, st.Enums, st.Hooked)

	export, ok := root.Field("zabbix_export")
	if !ok {
		return sb.String()
	}

	sb.WriteString("## Sections\n\n")
	sb.WriteString("| Tag | Kind | Element | Required | Nodes |\n")
	sb.WriteString("|---|---|---|:---:|---:|\n")
	for _, f := range export.Fields {
		element := "-"
		if f.Node.Kind == schema.KindSequence {
			element = "`" + f.Node.Prefix + "`"
		}
		required := ""
		if f.Node.Required {
			required = "yes"
		}
		fmt.Fprintf(&sb, "| `%s` | %s | %s | %s | %d |\n", f.Name, f.Node.Kind, element, required, schema.Count(f.Node).Nodes)
	}
	return sb.String()
}
