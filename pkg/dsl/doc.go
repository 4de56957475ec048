/*
Package dsl provides a fluent Go DSL for declaring schema graphs.

Schema tables are large and repetitive. The DSL keeps them readable as
structured literals and lets shared fragments be written once as functions
returning field builders:

	package main

	import (
		"github.com/darbi-a/zabbix/pkg/constant"
		"github.com/darbi-a/zabbix/pkg/dsl"
	)

	func tags() *dsl.FieldBuilder {
		return dsl.Seq("tags", "tag",
			dsl.Str("tag").Required(),
			dsl.Str("value"),
		)
	}

	func main() {
		b := dsl.New()
		b.Add("name").Required()
		b.Add("status").Default(constant.Enabled).In(constant.Status)
		b.Include(tags())

		// The result is an immutable *schema.Node.
		node := b.Record()
		_ = node
	}

Every Build call allocates a fresh node tree, so builders can be reused to
stamp out the same fragment in several places.
*/
package dsl
