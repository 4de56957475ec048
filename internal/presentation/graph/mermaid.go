// Package graph draws schema graphs as Mermaid flowcharts.
package graph

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/darbi-a/zabbix/pkg/schema"
)

// Overlay marks the route to a failing tag on the chart.
type Overlay struct {
	// ErrorPath is the path of a validation error, element indexes included
	// (e.g. /zabbix_export/hosts/host(2)/items/item(1)/type).
	ErrorPath string
}

// Options tunes what the chart shows.
type Options struct {
	// MaxDepth stops the walk below this many levels. Zero draws everything.
	MaxDepth int
	// Scalars adds string and opaque fields; otherwise only containers,
	// enums and unions are drawn.
	Scalars bool
	Overlay *Overlay
}

// GenerateMermaid produces a Mermaid flowchart of the graph below root.
// It applies semantic styling:
// - Root: ((Circle))
// - Sequence: [[Subroutine]]
// - Enum: [/Parallelogram/]
// - Union: {{Hexagon}}
// - Default: [Rectangle]
// Required fields get a solid edge; optional ones a dotted edge.
func GenerateMermaid(root *schema.Node, opts Options) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	w := &walker{sb: &sb, opts: opts, seen: make(map[string]bool)}
	w.node("", "root", root, 0)

	if opts.Overlay != nil && opts.Overlay.ErrorPath != "" {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef onPath fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef failed fill:#ffcdd2,stroke:#b71c1c,stroke-width:4px,color:#000;\n")

		steps := overlaySteps(opts.Overlay.ErrorPath)
		for i, p := range steps {
			id := sanitizeMermaidID(p)
			if !w.seen[id] {
				continue
			}
			class := "onPath"
			if i == len(steps)-1 {
				class = "failed"
			}
			sb.WriteString(fmt.Sprintf("    class %s %s;\n", id, class))
		}
	}
	return sb.String()
}

type walker struct {
	sb   *strings.Builder
	opts Options
	seen map[string]bool
}

func (w *walker) node(path, label string, n *schema.Node, depth int) string {
	id := sanitizeMermaidID(path)
	if w.seen[id] {
		return id
	}
	w.seen[id] = true

	opener, closer := "[", "]"
	switch {
	case path == "":
		opener, closer = "((", "))"
	case n.Kind == schema.KindSequence:
		opener, closer = "[[", "]]"
	case n.Union != nil:
		opener, closer = "{{", "}}"
	case n.In != nil:
		opener, closer = "[/", "/]"
	}
	w.sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, label, closer))

	if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
		return id
	}

	base := path
	if n.Kind == schema.KindSequence {
		base = path + "/" + n.Prefix
	}
	for _, f := range n.Fields {
		if !w.draws(f.Node) {
			continue
		}
		child := w.node(base+"/"+f.Name, f.Name, f.Node, depth+1)
		arrow := "-.->"
		if f.Node.Required {
			arrow = "-->"
		}
		w.sb.WriteString(fmt.Sprintf("    %s %s %s\n", id, arrow, child))
	}

	if n.Union != nil {
		for _, v := range n.Union.Keys() {
			child := w.node(path+"#"+v, v, n.Union.Variants[v], depth+1)
			w.sb.WriteString(fmt.Sprintf("    %s -. \"%s=%s\" .-> %s\n", id, n.Union.Discriminator, v, child))
		}
		if n.Union.Fallback != nil {
			child := w.node(path+"#otherwise", "otherwise", n.Union.Fallback, depth+1)
			w.sb.WriteString(fmt.Sprintf("    %s -. \"otherwise\" .-> %s\n", id, child))
		}
	}
	return id
}

func (w *walker) draws(n *schema.Node) bool {
	if w.opts.Scalars {
		return true
	}
	return n.Kind == schema.KindRecord || n.Kind == schema.KindSequence || n.In != nil || n.Union != nil
}

var elementIndex = regexp.MustCompile(`\(\d+\)`)

// overlaySteps turns an error path into the chart paths it crosses.
func overlaySteps(errPath string) []string {
	clean := elementIndex.ReplaceAllString(errPath, "")
	steps := []string{""}
	var cur string
	for _, seg := range strings.Split(strings.TrimPrefix(clean, "/"), "/") {
		if seg == "" {
			continue
		}
		cur += "/" + seg
		steps = append(steps, cur)
	}
	return steps
}

func sanitizeMermaidID(id string) string {
	if id == "" {
		return "root"
	}
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", "#", "__", " ", "_")
	return "n" + r.Replace(id)
}
