package formats

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/darbi-a/zabbix/pkg/schema"
)

// ErrUnknownVersion is returned for a format version without a schema.
var ErrUnknownVersion = errors.New("unknown format version")

// BuildFunc constructs the root graph of a format version.
type BuildFunc func() *schema.Node

type entry struct {
	once  sync.Once
	build BuildFunc
	node  *schema.Node
}

func (e *entry) get() *schema.Node {
	e.once.Do(func() {
		e.node = e.build()
	})
	return e.node
}

// Registry maps format versions to schema graphs. Graphs are built on first
// use and shared afterwards.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
	}
}

// Register adds a format version.
// If the version is already registered, it is overwritten.
func (r *Registry) Register(version string, build BuildFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[version] = &entry{build: build}
}

// Lookup returns the root graph of version.
func (r *Registry) Lookup(version string) (*schema.Node, error) {
	r.mu.RLock()
	e, ok := r.entries[version]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVersion, version)
	}
	return e.get(), nil
}

// Versions lists the registered versions in ascending order.
func (r *Registry) Versions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.entries))
	for v := range r.entries {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

var defaultRegistry = NewDefaultRegistry()

// NewDefaultRegistry returns a registry holding every built-in format.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, p := range []profile{profile40, profile42, profile44} {
		r.Register(p.version, func() *schema.Node { return build(p) })
	}
	return r
}

// Lookup returns the built-in root graph of version.
func Lookup(version string) (*schema.Node, error) {
	return defaultRegistry.Lookup(version)
}

// Versions lists the built-in format versions.
func Versions() []string {
	return defaultRegistry.Versions()
}

// Latest is the newest built-in format version.
const Latest = "4.4"
