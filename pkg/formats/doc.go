// Package formats declares the schema graphs of the Zabbix import formats.
//
// Each supported format version owns a complete, immutable graph rooted at
// the zabbix_export record. The graphs are assembled from shared per-entity
// builders (items, triggers, graphs, hosts, screens, maps ...) that receive a
// profile describing the small differences between versions.
//
// Graphs are built lazily on first Lookup and shared afterwards:
//
//	root, err := formats.Lookup("4.4")
//	if err != nil {
//		return err
//	}
//	out, err := schema.NewValidator().Validate(root, doc, "")
package formats
