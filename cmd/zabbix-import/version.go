package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/darbi-a/zabbix"
	"github.com/darbi-a/zabbix/pkg/formats"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of zabbix-import",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "zabbix-import version %s (formats %s)\n",
			strings.TrimSpace(zabbix.Version), strings.Join(formats.Versions(), ", "))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
