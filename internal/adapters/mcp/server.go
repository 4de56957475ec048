// Package mcp exposes the validator to agents as Model Context Protocol tools.
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/darbi-a/zabbix"
	"github.com/darbi-a/zabbix/internal/adapters/document"
	"github.com/darbi-a/zabbix/pkg/formats"
	"github.com/darbi-a/zabbix/pkg/schema"
)

// Result is the structured outcome of a validate_document call.
type Result struct {
	Valid   bool           `json:"valid" jsonschema_description:"Whether the document passed validation"`
	Version string         `json:"version,omitempty" jsonschema_description:"Format version the document was checked against"`
	Kind    string         `json:"kind,omitempty" jsonschema_description:"Error kind when the document is invalid"`
	Path    string         `json:"path,omitempty" jsonschema_description:"Path of the offending tag"`
	Error   string         `json:"error,omitempty"`
	Summary zabbix.Summary `json:"summary" jsonschema_description:"Entity counts of the normalized document"`
}

// Server wraps the validator as an MCP server.
type Server struct {
	registry  *formats.Registry
	opts      []zabbix.Option
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(registry *formats.Registry, opts ...zabbix.Option) *Server {
	if registry == nil {
		registry = formats.NewDefaultRegistry()
	}
	s := &Server{
		registry:  registry,
		opts:      opts,
		mcpServer: server.NewMCPServer("zabbix-import-mcp", strings.TrimSpace(zabbix.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	validateTool := mcp.NewTool("validate_document",
		mcp.WithDescription("Validate a Zabbix import document and report the first defect with its path."),
		mcp.WithString("document", mcp.Required(), mcp.Description("The document text")),
		mcp.WithString("format", mcp.Description("xml, json or yaml (default xml)")),
		mcp.WithString("version", mcp.Description("Force a format version instead of reading it from the document")),
		mcp.WithOutputSchema[Result](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	s.mcpServer.AddTool(mcp.NewTool("list_versions",
		mcp.WithDescription("List the supported import format versions."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, _ := json.Marshal(s.registry.Versions())
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	s.mcpServer.AddTool(mcp.NewTool("describe_schema",
		mcp.WithDescription("Return the schema graph of a format version as JSON."),
		mcp.WithString("version", mcp.Required(), mcp.Description("Format version, e.g. 4.4")),
	), s.handleDescribe)
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (Result, error) {
	text, _ := args["document"].(string)
	if text == "" {
		return Result{}, fmt.Errorf("document is required")
	}
	name, _ := args["format"].(string)
	if name == "" {
		name = string(document.XML)
	}
	format, err := document.ParseFormat(name)
	if err != nil {
		return Result{}, err
	}

	// Per-request choices come last so they win over the shared options.
	opts := append(slices.Clone(s.opts),
		zabbix.WithRegistry(s.registry),
		zabbix.WithSource(format.Source()),
	)
	if v, _ := args["version"].(string); v != "" {
		opts = append(opts, zabbix.WithVersion(v))
	}
	imp, err := zabbix.New(opts...)
	if err != nil {
		return Result{}, err
	}

	doc, err := document.Decode(strings.NewReader(text), format)
	if err != nil {
		return Result{}, fmt.Errorf("decode failed: %w", err)
	}
	version, _ := imp.DetectVersion(doc)

	out, err := imp.Import(ctx, doc)
	if err != nil {
		res := Result{Version: version, Error: err.Error()}
		if verr, ok := schema.AsValidationError(err); ok {
			res.Kind = string(verr.Kind)
			res.Path = verr.Path
		}
		return res, nil
	}

	summary, err := zabbix.Summarize(out)
	if err != nil {
		return Result{}, err
	}
	return Result{Valid: true, Version: version, Summary: summary}, nil
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	version, err := request.RequireString("version")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	root, err := s.registry.Lookup(version)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var buf bytes.Buffer
	if err := document.Encode(&buf, root, document.JSON); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}
