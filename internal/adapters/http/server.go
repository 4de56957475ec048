// Package http exposes the validator over HTTP.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/darbi-a/zabbix"
	"github.com/darbi-a/zabbix/internal/adapters/document"
	"github.com/darbi-a/zabbix/pkg/formats"
	"github.com/darbi-a/zabbix/pkg/schema"
)

// MaxBodyBytes bounds the size of an uploaded document.
const MaxBodyBytes = 32 << 20

// Options configures the handler.
type Options struct {
	// Importer options shared by every request. The source encoding and the
	// forced version are chosen per request.
	Importer []zabbix.Option
	// Registry lists the accepted format versions. Defaults to the built-in one.
	Registry *formats.Registry
	// Gatherer, when set, is served on /metrics.
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// Server serves validation requests.
type Server struct {
	opts     Options
	registry *formats.Registry
	logger   *slog.Logger
}

type problem struct {
	Kind  string `json:"kind,omitempty"`
	Path  string `json:"path,omitempty"`
	Error string `json:"error"`
}

// NewHandler builds the router.
func NewHandler(opts Options) (http.Handler, error) {
	c, err := loadContract()
	if err != nil {
		return nil, err
	}

	s := &Server{opts: opts, registry: opts.Registry, logger: opts.Logger}
	if s.registry == nil {
		s.registry = formats.NewDefaultRegistry()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(rawSpec)
	})
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Use(c.middleware)
		r.Post("/validate", s.Validate)
		r.Post("/export", s.Export)
	})
	return r, nil
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"app":     "zabbix-import",
		"version": strings.TrimSpace(zabbix.Version),
		"formats": s.registry.Versions(),
	})
}

// Validate handles POST /v1/validate.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	s.process(w, r, (*zabbix.Importer).Import)
}

// Export handles POST /v1/export.
func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	s.process(w, r, (*zabbix.Importer).Export)
}

type operation func(*zabbix.Importer, context.Context, schema.Record) (schema.Record, error)

func (s *Server) process(w http.ResponseWriter, r *http.Request, op operation) {
	format, err := requestFormat(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, problem{Error: err.Error()})
		return
	}

	// Per-request choices come last so they win over the shared options.
	opts := append(slices.Clone(s.opts.Importer),
		zabbix.WithRegistry(s.registry),
		zabbix.WithSource(format.Source()),
	)
	if v := r.URL.Query().Get("version"); v != "" {
		opts = append(opts, zabbix.WithVersion(v))
	}
	imp, err := zabbix.New(opts...)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, problem{Error: err.Error()})
		return
	}

	doc, err := document.Decode(http.MaxBytesReader(w, r.Body, MaxBodyBytes), format)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, problem{Error: err.Error()})
		return
	}

	out, err := op(imp, r.Context(), doc)
	if err != nil {
		if verr, ok := schema.AsValidationError(err); ok {
			writeProblem(w, http.StatusUnprocessableEntity, problem{
				Kind:  string(verr.Kind),
				Path:  verr.Path,
				Error: err.Error(),
			})
			return
		}
		if errors.Is(err, formats.ErrUnknownVersion) {
			writeProblem(w, http.StatusUnprocessableEntity, problem{Error: err.Error()})
			return
		}
		s.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		writeProblem(w, http.StatusInternalServerError, problem{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// requestFormat reads the source query parameter, then the Content-Type.
func requestFormat(r *http.Request) (document.Format, error) {
	if src := r.URL.Query().Get("source"); src != "" {
		return document.ParseFormat(src)
	}
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return document.JSON, nil
	}
	return document.FormatFromContentType(ct)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "err", err)
	}
}

func writeProblem(w http.ResponseWriter, status int, p problem) {
	writeJSON(w, status, p)
}
