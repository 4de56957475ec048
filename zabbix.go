package zabbix

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/darbi-a/zabbix/pkg/formats"
	"github.com/darbi-a/zabbix/pkg/observability"
	"github.com/darbi-a/zabbix/pkg/schema"
)

// Importer is the high-level entry point of the library.
// It is safe for concurrent use.
type Importer struct {
	registry *formats.Registry
	version  string
	source   schema.Source
	hooks    observability.LifecycleHooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Importer.
type Option func(*Importer)

// WithVersion forces a format version instead of reading it from the
// document.
func WithVersion(version string) Option {
	return func(i *Importer) {
		i.version = version
	}
}

// WithSource sets the encoding the documents were decoded from.
func WithSource(source schema.Source) Option {
	return func(i *Importer) {
		i.source = source
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks observability.LifecycleHooks) Option {
	return func(i *Importer) {
		i.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Importer) {
		i.logger = logger
	}
}

// WithRegistry replaces the built-in format registry.
func WithRegistry(r *formats.Registry) Option {
	return func(i *Importer) {
		i.registry = r
	}
}

// New creates an Importer. A forced version must be known to the registry.
func New(opts ...Option) (*Importer, error) {
	imp := &Importer{}
	for _, opt := range opts {
		opt(imp)
	}

	if imp.registry == nil {
		imp.registry = formats.NewDefaultRegistry()
	}
	if imp.logger == nil {
		imp.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	imp.logger = imp.logger.With("source", imp.source.String())

	if imp.version != "" {
		if _, err := imp.registry.Lookup(imp.version); err != nil {
			return nil, err
		}
		imp.logger = imp.logger.With("version", imp.version)
	}
	return imp, nil
}

// Versions lists the format versions the Importer accepts.
func (i *Importer) Versions() []string {
	return i.registry.Versions()
}

// Schema returns the schema graph of a format version.
func (i *Importer) Schema(version string) (*schema.Node, error) {
	return i.registry.Lookup(version)
}

// DetectVersion returns the forced version, or the version stored in the
// document.
func (i *Importer) DetectVersion(doc schema.Record) (string, error) {
	if i.version != "" {
		return i.version, nil
	}
	const path = "/zabbix_export/version"

	export, ok := doc["zabbix_export"].(schema.Record)
	if !ok {
		return "", &schema.ValidationError{
			Kind:   schema.MissingRequiredField,
			Path:   "/zabbix_export",
			Reason: `the tag "zabbix_export" is missing`,
		}
	}
	version, ok := export["version"].(string)
	if !ok {
		return "", &schema.ValidationError{
			Kind:   schema.MissingRequiredField,
			Path:   path,
			Reason: `the tag "version" is missing`,
		}
	}
	if _, err := i.registry.Lookup(version); err != nil {
		return "", fmt.Errorf("invalid tag %q: %w", path, err)
	}
	return version, nil
}

// Import validates doc and returns its normalized form.
func (i *Importer) Import(ctx context.Context, doc schema.Record) (schema.Record, error) {
	return i.run(ctx, observability.DirectionImport, doc, func(root *schema.Node, version string) (any, error) {
		v := schema.NewValidator(schema.WithSource(i.source))
		return v.Validate(root, doc, "")
	})
}

// Export turns a normalized document back into its exchange form.
func (i *Importer) Export(ctx context.Context, doc schema.Record) (schema.Record, error) {
	return i.run(ctx, observability.DirectionExport, doc, func(root *schema.Node, _ string) (any, error) {
		return schema.NewExporter().Export(root, doc, "")
	})
}

func (i *Importer) run(ctx context.Context, dir observability.Direction, doc schema.Record,
	fn func(root *schema.Node, version string) (any, error)) (schema.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	version, err := i.DetectVersion(doc)
	if err != nil {
		i.logger.WarnContext(ctx, "cannot detect format version", "direction", dir, "err", err)
		return nil, err
	}
	root, err := i.registry.Lookup(version)
	if err != nil {
		return nil, err
	}

	event := &observability.ValidationEvent{
		Timestamp: time.Now(),
		Type:      observability.EventValidateStart,
		Direction: dir,
		Version:   version,
		Source:    i.source.String(),
	}
	if i.hooks.OnValidateStart != nil {
		i.hooks.OnValidateStart(ctx, event)
	}
	i.logger.DebugContext(ctx, "validating document", "direction", dir, "format", version)

	out, err := fn(root, version)

	done := *event
	done.Type = observability.EventValidateDone
	done.Duration = time.Since(event.Timestamp)
	done.Err = err
	if verr, ok := schema.AsValidationError(err); ok {
		done.Kind = string(verr.Kind)
		done.Path = verr.Path
	}
	if i.hooks.OnValidateDone != nil {
		i.hooks.OnValidateDone(ctx, &done)
	}

	if err != nil {
		i.logger.WarnContext(ctx, "document rejected",
			"direction", dir,
			"format", version,
			"kind", done.Kind,
			"path", done.Path,
			"err", err,
		)
		return nil, err
	}
	i.logger.DebugContext(ctx, "document accepted", "direction", dir, "format", version, "duration", done.Duration)

	rec, ok := out.(schema.Record)
	if !ok {
		return nil, fmt.Errorf("%s produced %T, not a record", dir, out)
	}
	return rec, nil
}
