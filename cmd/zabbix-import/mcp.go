package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/darbi-a/zabbix"
	"github.com/darbi-a/zabbix/internal/adapters/mcp"
	"github.com/darbi-a/zabbix/pkg/observability"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server on stdio",
	Long: `Exposes the validator to AI agents as MCP tools:
validate_document, list_versions and describe_schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)

		srv := mcp.NewServer(nil, zabbix.WithLifecycleHooks(observability.LogHooks(logger.With("component", "mcp"))))
		logger.Info("starting MCP server (stdio)")
		return srv.ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
