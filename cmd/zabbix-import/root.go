package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/darbi-a/zabbix"
	"github.com/darbi-a/zabbix/internal/adapters/document"
	"github.com/darbi-a/zabbix/internal/config"
	"github.com/darbi-a/zabbix/internal/logging"
	"github.com/darbi-a/zabbix/pkg/schema"
)

var (
	settings = config.Default()
	logger   = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "zabbix-import",
	Short: "Validate and normalize Zabbix configuration import documents",
	Long: `zabbix-import checks Zabbix export documents (XML, JSON or YAML) against the
schema of their format version, fills in defaults and replaces symbolic
constants by their numeric codes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("format-version", "", "Force a format version instead of reading it from the document")
	rootCmd.PersistentFlags().String("source", "", "Document encoding: xml, json or yaml (default by file extension)")
}

// loadSettings merges the configuration file with the flags given on the
// command line. Flags win.
func loadSettings(cmd *cobra.Command) error {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path, flags.Changed("config"))
	if err != nil {
		return err
	}

	overrides := map[string]any{}
	for flag, key := range map[string]string{
		"log-level":      "log_level",
		"format-version": "version",
		"source":         "source",
		"output":         "output",
		"listen":         "listen",
	} {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}
	if err := config.Decode(overrides, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	settings = cfg
	logger = logging.New(level)
	return nil
}

// newImporter builds an Importer for documents read from source.
func newImporter(source schema.Source, opts ...zabbix.Option) (*zabbix.Importer, error) {
	opts = append([]zabbix.Option{
		zabbix.WithSource(source),
		zabbix.WithVersion(settings.Version),
	}, opts...)
	return zabbix.New(opts...)
}

// readDocument decodes a file, or stdin when path is "-".
func readDocument(cmd *cobra.Command, path string) (schema.Record, document.Format, error) {
	format, err := documentFormat(path)
	if err != nil {
		return nil, "", err
	}

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		r = f
	}

	doc, err := document.Decode(r, format)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return doc, format, nil
}

func documentFormat(path string) (document.Format, error) {
	if settings.Source != "" {
		return document.ParseFormat(settings.Source)
	}
	if path == "-" {
		return "", fmt.Errorf("reading stdin needs --source")
	}
	return document.FormatFromPath(path)
}

func commandLogger() *slog.Logger {
	return logger.With("component", "cli")
}
