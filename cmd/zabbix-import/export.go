package main

import (
	"github.com/spf13/cobra"

	"github.com/darbi-a/zabbix"
	"github.com/darbi-a/zabbix/internal/adapters/document"
)

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Normalize a document and print it in export form",
	Long: `Imports the document (checking it and filling in defaults), then exports it
again: numeric codes become symbolic names. The result is printed as YAML or
JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, format, err := readDocument(cmd, args[0])
		if err != nil {
			return err
		}
		imp, err := newImporter(format.Source(), zabbix.WithLogger(commandLogger().With("file", args[0])))
		if err != nil {
			return err
		}

		normalized, err := imp.Import(cmd.Context(), doc)
		if err != nil {
			return err
		}
		exported, err := imp.Export(cmd.Context(), normalized)
		if err != nil {
			return err
		}

		out, err := document.ParseFormat(settings.Output)
		if err != nil {
			return err
		}
		return document.Encode(cmd.OutOrStdout(), exported, out)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "", "Output encoding: yaml or json")
}
