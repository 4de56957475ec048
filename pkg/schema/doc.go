// Package schema describes and enforces the shape of hierarchical import
// documents.
//
// A schema is a graph of *Node values. Each node has a Kind (Record,
// Sequence, String or Opaque), may be Required, may carry a Default, may
// restrict its value to an enum table (In), may select a sub-schema from a
// sibling discriminator (Union) and may attach callbacks (Hooks) for cases a
// declaration cannot express.
//
// Documents are plain Go values: map[string]any for records, []any for
// sequences and string for scalars. A Validator walks a document top-down,
// fills defaults, rewrites enum names to their codes and returns the
// normalized tree:
//
//	v := schema.NewValidator(schema.WithSource(schema.SourceXML))
//	out, err := v.Validate(root, doc, "")
//	if err != nil {
//	    var verr *schema.ValidationError
//	    if errors.As(err, &verr) {
//	        fmt.Println(verr.Kind, verr.Path)
//	    }
//	}
//
// Validation stops at the first violation. The error names the offending
// node with a slash separated path, sequence elements are addressed as
// prefix(n) with n starting at 1:
//
//	/zabbix_export/hosts/host(1)/items/item(3)/key
//
// An Exporter walks a normalized tree in the other direction, turning codes
// back into names and running export hooks.
//
// Nodes are never modified once built, so a schema graph can be shared by
// any number of goroutines.
package schema
