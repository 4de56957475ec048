/*
Package zabbix validates and normalizes Zabbix configuration import documents.

A document (hosts, templates, items, triggers, graphs, screens, maps ...) is
checked against the schema graph of its format version. Every field is
validated in declaration order, defaults are filled in, symbolic constants
are replaced by their numeric codes and format specific transforms are
applied. The first defect stops the call and is reported with the exact path
of the offending tag.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/darbi-a/zabbix"
	)

	func main() {
		imp, err := zabbix.New()
		if err != nil {
			log.Fatal(err)
		}

		doc := map[string]any{
			"zabbix_export": map[string]any{
				"version": "4.4",
				"groups":  []any{map[string]any{"name": "Linux servers"}},
			},
		}

		out, err := imp.Import(context.Background(), doc)
		if err != nil {
			// *schema.ValidationError carries Kind and Path.
			log.Fatal(err)
		}
		fmt.Println(out)
	}

# Export

Export is the inverse of Import: numeric codes become symbolic names again
and export transforms (such as splitting tls_accept into its options) run.
Importing an exported document yields the same normalized tree.

# Observability

WithLogger attaches a log/slog logger and WithLifecycleHooks receives an event
around every call; the observability package turns those events into
prometheus metrics.
*/
package zabbix
