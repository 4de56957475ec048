package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/darbi-a/zabbix"
	"github.com/darbi-a/zabbix/internal/adapters/document"
	"github.com/darbi-a/zabbix/internal/presentation/graph"
	"github.com/darbi-a/zabbix/internal/presentation/tui"
	"github.com/darbi-a/zabbix/pkg/formats"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema [VERSION]",
	Short: "Describe the schema of a format version",
	Long: `Prints the schema graph of a format version (default: the latest).

Formats:
- json: the complete graph, fields in declaration order
- markdown: node statistics and the top-level sections
- mermaid: a flowchart (graph TD); --error-path highlights the route to a failing tag`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version := formats.Latest
		if len(args) > 0 {
			version = args[0]
		}
		imp, err := zabbix.New()
		if err != nil {
			return err
		}
		root, err := imp.Schema(version)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		out := cmd.OutOrStdout()
		switch format {
		case "json":
			return document.Encode(out, root, document.JSON)
		case "markdown":
			render := tui.NewRenderer(tui.IsTerminal(out))
			text, err := render(tui.SchemaReport(version, root))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, text)
			return err
		case "mermaid":
			depth, _ := cmd.Flags().GetInt("depth")
			scalars, _ := cmd.Flags().GetBool("scalars")
			errPath, _ := cmd.Flags().GetString("error-path")

			opts := graph.Options{MaxDepth: depth, Scalars: scalars}
			if errPath != "" {
				opts.Overlay = &graph.Overlay{ErrorPath: errPath}
			}
			_, err := fmt.Fprint(out, graph.GenerateMermaid(root, opts))
			return err
		}
		return fmt.Errorf("unknown schema format %q (json, markdown, mermaid)", format)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringP("format", "f", "json", "Output format: json, markdown or mermaid")
	schemaCmd.Flags().Int("depth", 0, "Mermaid: stop below this depth (0 draws everything)")
	schemaCmd.Flags().Bool("scalars", false, "Mermaid: include scalar fields")
	schemaCmd.Flags().String("error-path", "", "Mermaid: highlight the route to this tag path")
}
