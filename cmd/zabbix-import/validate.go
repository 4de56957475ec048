package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/darbi-a/zabbix"
	"github.com/darbi-a/zabbix/internal/presentation/tui"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check import documents against their format schema",
	Long: `Validates every file in turn and stops at the first rejected one.
Use "-" to read a document from stdin (requires --source).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, files []string) error {
	printer := tui.NewPrinter(cmd.OutOrStdout())

	for _, file := range files {
		doc, format, err := readDocument(cmd, file)
		if err != nil {
			printer.Fail(file, err)
			return fmt.Errorf("validation failed: %s: %w", file, err)
		}

		imp, err := newImporter(format.Source(), zabbix.WithLogger(commandLogger().With("file", file)))
		if err != nil {
			return err
		}
		out, err := imp.Import(cmd.Context(), doc)
		if err != nil {
			printer.Fail(file, err)
			return fmt.Errorf("validation failed: %s: %w", file, err)
		}

		summary, err := zabbix.Summarize(out)
		if err != nil {
			return err
		}
		printer.OK(file, summary)
	}
	return nil
}
