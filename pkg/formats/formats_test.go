package formats

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darbi-a/zabbix/pkg/schema"
)

// doc wraps fields into a zabbix_export document of version.
func doc(version string, fields map[string]any) map[string]any {
	export := map[string]any{"version": version}
	for k, v := range fields {
		export[k] = v
	}
	return map[string]any{"zabbix_export": export}
}

func importDoc(t *testing.T, version string, data map[string]any, opts ...schema.Option) (schema.Record, error) {
	t.Helper()
	root, err := Lookup(version)
	require.NoError(t, err)

	out, err := schema.NewValidator(opts...).Validate(root, data, "")
	if err != nil {
		return nil, err
	}
	rec, ok := out.(schema.Record)
	require.True(t, ok, "root should normalize to a record")
	return rec, nil
}

func exportDoc(t *testing.T, version string, normalized schema.Record) schema.Record {
	t.Helper()
	root, err := Lookup(version)
	require.NoError(t, err)

	out, err := schema.NewExporter().Export(root, normalized, "")
	require.NoError(t, err)
	return out.(schema.Record)
}

// at walks a normalized tree by record keys and 0-based sequence indexes.
func at(t *testing.T, v any, steps ...any) any {
	t.Helper()
	for _, step := range steps {
		switch s := step.(type) {
		case string:
			rec, ok := v.(schema.Record)
			require.True(t, ok, "expected a record before %q, got %T", s, v)
			v, ok = rec[s]
			require.True(t, ok, "missing key %q", s)
		case int:
			seq, ok := v.([]any)
			require.True(t, ok, "expected a sequence before [%d], got %T", s, v)
			require.Less(t, s, len(seq))
			v = seq[s]
		}
	}
	return v
}

func requireKind(t *testing.T, err error, kind schema.ErrorKind, path string) {
	t.Helper()
	require.Error(t, err)
	verr, ok := schema.AsValidationError(err)
	require.True(t, ok, "expected a validation error, got %v", err)
	assert.Equal(t, kind, verr.Kind, verr.Error())
	assert.Equal(t, path, verr.Path)
}

func host(fields map[string]any) map[string]any {
	h := map[string]any{
		"host":   "web-01",
		"groups": []any{map[string]any{"name": "Linux servers"}},
	}
	for k, v := range fields {
		h[k] = v
	}
	return h
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"4.0", "4.2", "4.4"}, Versions())

	first, err := Lookup(Latest)
	require.NoError(t, err)
	second, err := Lookup(Latest)
	require.NoError(t, err)
	assert.Same(t, first, second, "graphs are built once")

	_, err = Lookup("3.0")
	assert.ErrorIs(t, err, ErrUnknownVersion)
}

func TestRegistry_ConcurrentLookup(t *testing.T) {
	r := NewDefaultRegistry()
	var wg sync.WaitGroup
	nodes := make([]*schema.Node, 8)
	for i := range nodes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			nodes[i], _ = r.Lookup("4.2")
		}()
	}
	wg.Wait()
	for _, n := range nodes {
		assert.Same(t, nodes[0], n)
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	calls := 0
	r.Register("test", func() *schema.Node {
		calls++
		return &schema.Node{Kind: schema.KindRecord}
	})

	_, err := r.Lookup("test")
	require.NoError(t, err)
	_, err = r.Lookup("test")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"test"}, r.Versions())
}

func TestImport_MinimalDocument(t *testing.T) {
	out, err := importDoc(t, "4.4", doc("4.4", nil))
	require.NoError(t, err)
	assert.Equal(t, schema.Record{"zabbix_export": schema.Record{"version": "4.4"}}, out)
}

func TestImport_RootErrors(t *testing.T) {
	_, err := importDoc(t, "4.4", map[string]any{})
	requireKind(t, err, schema.MissingRequiredField, "/zabbix_export")

	_, err = importDoc(t, "4.4", doc("4.4", map[string]any{"applications": ""}))
	requireKind(t, err, schema.UnexpectedField, "/zabbix_export/applications")

	_, err = importDoc(t, "4.4", map[string]any{"zabbix_export": map[string]any{}})
	requireKind(t, err, schema.MissingRequiredField, "/zabbix_export/version")
}

func TestImport_Date(t *testing.T) {
	_, err := importDoc(t, "4.4", doc("4.4", map[string]any{"date": "2019-11-20T09:38:10Z"}))
	require.NoError(t, err)

	for _, bad := range []string{"2019-11-20", "1999-11-20T09:38:10Z", "2019-13-20T09:38:10Z", "2019-11-20T24:00:00Z"} {
		_, err := importDoc(t, "4.4", doc("4.4", map[string]any{"date": bad}))
		requireKind(t, err, schema.MalformedScalar, "/zabbix_export/date")
		assert.ErrorIs(t, err, schema.ErrMalformedScalar)
	}
}

func TestImport_HostDefaults(t *testing.T) {
	out, err := importDoc(t, "4.4", doc("4.4", map[string]any{
		"hosts": []any{host(nil)},
	}))
	require.NoError(t, err)

	h := at(t, out, "zabbix_export", "hosts", 0).(schema.Record)
	assert.Equal(t, "0", h["status"])
	assert.Equal(t, "0", h["inventory_mode"])
	assert.Equal(t, "-1", h["ipmi_authtype"])
	assert.Equal(t, "2", h["ipmi_privilege"])
	assert.Equal(t, "1", h["tls_accept"])
	assert.Equal(t, "1", h["tls_connect"])
	assert.NotContains(t, h, "items", "absent sequences are omitted")
	assert.Equal(t, []any{schema.Record{"name": "Linux servers"}}, h["groups"])
}

func TestImport_HostRequiresGroups(t *testing.T) {
	_, err := importDoc(t, "4.4", doc("4.4", map[string]any{
		"hosts": []any{map[string]any{"host": "web-01"}},
	}))
	requireKind(t, err, schema.MissingRequiredField, "/zabbix_export/hosts/host(1)/groups")
}

func TestImport_XMLSequences(t *testing.T) {
	data := doc("4.4", map[string]any{
		"hosts": map[string]any{
			"host1": host(map[string]any{"host": "second"}),
			"host":  host(map[string]any{"host": "first"}),
		},
	})
	out, err := importDoc(t, "4.4", data, schema.WithSource(schema.SourceXML))
	require.NoError(t, err)
	assert.Equal(t, "first", at(t, out, "zabbix_export", "hosts", 0, "host"))
	assert.Equal(t, "second", at(t, out, "zabbix_export", "hosts", 1, "host"))

	_, err = importDoc(t, "4.4", data)
	requireKind(t, err, schema.TypeMismatch, "/zabbix_export/hosts")
}

func TestTLSAccept(t *testing.T) {
	out, err := importDoc(t, "4.4", doc("4.4", map[string]any{
		"hosts": []any{host(map[string]any{"tls_accept": []any{"NO_ENCRYPTION", "TLS_PSK"}})},
	}))
	require.NoError(t, err)
	assert.Equal(t, "3", at(t, out, "zabbix_export", "hosts", 0, "tls_accept"))

	exported := exportDoc(t, "4.4", out)
	assert.Equal(t, []any{"NO_ENCRYPTION", "TLS_PSK"}, at(t, exported, "zabbix_export", "hosts", 0, "tls_accept"))

	again, err := importDoc(t, "4.4", exported)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestTLSAccept_RoundTripAllSums(t *testing.T) {
	for _, sum := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		names, err := tlsAcceptExport(schema.Record{"tls_accept": sum})
		require.NoError(t, err, sum)

		back, err := tlsAcceptImport(names)
		require.NoError(t, err, sum)
		assert.Equal(t, sum, back)
	}
}

func TestTLSAccept_Forms(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"single name", "TLS_CERTIFICATE", "4"},
		{"stored sum", "5", "5"},
		{"string list", []string{"TLS_PSK", "TLS_CERTIFICATE"}, "6"},
		{"xml tags", schema.Record{"option1": "TLS_CERTIFICATE", "option": "TLS_PSK"}, "6"},
		{"duplicates count twice", []any{"TLS_PSK", "TLS_PSK"}, "4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tlsAcceptImport(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTLSAccept_Errors(t *testing.T) {
	_, err := importDoc(t, "4.4", doc("4.4", map[string]any{
		"hosts": []any{host(map[string]any{"tls_accept": []any{"TLS_PSK", "PLAIN"}})},
	}))
	requireKind(t, err, schema.InvalidEnumValue, "/zabbix_export/hosts/host(1)/tls_accept")

	_, err = tlsAcceptExport(schema.Record{"tls_accept": "8"})
	assert.Equal(t, schema.UnsupportedFlagCombination, schema.KindOf(err))
	assert.True(t, errors.Is(err, schema.ErrUnsupportedFlagCombination))
}

func TestAuthType(t *testing.T) {
	tests := []struct {
		name string
		item map[string]any
		want string
		kind schema.ErrorKind
	}{
		{"default", map[string]any{}, "0", ""},
		{"plain table", map[string]any{"authtype": "KERBEROS"}, "3", ""},
		{"ssh default", map[string]any{"type": "SSH"}, "0", ""},
		{"ssh public key", map[string]any{"type": "SSH", "authtype": "PUBLIC_KEY"}, "1", ""},
		{"ssh rejects http names", map[string]any{"type": "SSH", "authtype": "NTLM"}, "", schema.InvalidEnumValue},
		{"plain rejects ssh names", map[string]any{"authtype": "PASSWORD"}, "", schema.InvalidEnumValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := map[string]any{"key": "agent.ping", "name": "Ping"}
			for k, v := range tt.item {
				item[k] = v
			}
			out, err := importDoc(t, "4.4", doc("4.4", map[string]any{
				"hosts": []any{host(map[string]any{"items": []any{item}})},
			}))
			if tt.kind != "" {
				requireKind(t, err, tt.kind, "/zabbix_export/hosts/host(1)/items/item(1)/authtype")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, at(t, out, "zabbix_export", "hosts", 0, "items", 0, "authtype"))
		})
	}
}

func TestAuthTypeExport(t *testing.T) {
	name, err := authTypeExport(schema.Record{"type": "13", "authtype": "1"})
	require.NoError(t, err)
	assert.Equal(t, "PUBLIC_KEY", name)

	name, err = authTypeExport(schema.Record{"type": "19", "authtype": "2"})
	require.NoError(t, err)
	assert.Equal(t, "NTLM", name)

	name, err = authTypeExport(schema.Record{"type": "0", "authtype": "3"})
	require.NoError(t, err)
	assert.Equal(t, "NONE", name)

	_, err = authTypeExport(schema.Record{"type": "13", "authtype": "3"})
	assert.Equal(t, schema.InvalidEnumValue, schema.KindOf(err))
}

func TestMasterItem(t *testing.T) {
	item := func(fields map[string]any) map[string]any {
		it := map[string]any{"key": "json.get", "name": "Parsed", "master_item": map[string]any{}}
		for k, v := range fields {
			it[k] = v
		}
		return doc("4.4", map[string]any{"hosts": []any{host(map[string]any{"items": []any{it}})}})
	}

	_, err := importDoc(t, "4.4", item(map[string]any{"type": "DEPENDENT"}))
	requireKind(t, err, schema.MissingRequiredField, "/zabbix_export/hosts/host(1)/items/item(1)/master_item/key")

	_, err = importDoc(t, "4.4", item(nil))
	require.NoError(t, err)

	out, err := importDoc(t, "4.4", item(map[string]any{
		"type":        "DEPENDENT",
		"master_item": map[string]any{"key": "http.raw"},
	}))
	require.NoError(t, err)
	assert.Equal(t, schema.Record{"key": "http.raw"}, at(t, out, "zabbix_export", "hosts", 0, "items", 0, "master_item"))
}

func TestDiscoveryRuleFilterImport(t *testing.T) {
	rule := map[string]any{"key": "vfs.fs.discovery", "name": "Filesystems"}
	out, err := importDoc(t, "4.4", doc("4.4", map[string]any{
		"templates": []any{map[string]any{
			"template":        "Template OS",
			"groups":          []any{map[string]any{"name": "Templates"}},
			"discovery_rules": []any{rule},
		}},
	}))
	require.NoError(t, err)

	filter := at(t, out, "zabbix_export", "templates", 0, "discovery_rules", 0, "filter")
	assert.Equal(t, schema.Record{"conditions": []any{}, "evaltype": "0", "formula": ""}, filter)
	assert.Equal(t, "30d", at(t, out, "zabbix_export", "templates", 0, "discovery_rules", 0, "lifetime"))

	exported := exportDoc(t, "4.4", out)
	again, err := importDoc(t, "4.4", exported)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestTemplatesHaveNoInterfaces(t *testing.T) {
	_, err := importDoc(t, "4.4", doc("4.4", map[string]any{
		"templates": []any{map[string]any{
			"template": "Template App",
			"groups":   []any{map[string]any{"name": "Templates"}},
			"items": []any{map[string]any{
				"key": "a", "name": "a", "interface_ref": "if1",
			}},
		}},
	}))
	requireKind(t, err, schema.UnexpectedField, "/zabbix_export/templates/template(1)/items/item(1)/interface_ref")
}

func TestHTTPPosts(t *testing.T) {
	scenario := func(posts any) map[string]any {
		return doc("4.4", map[string]any{"hosts": []any{host(map[string]any{
			"httptests": []any{map[string]any{
				"name":  "Login",
				"steps": []any{map[string]any{"name": "post", "url": "http://example.com", "posts": posts}},
			}},
		})}})
	}

	out, err := importDoc(t, "4.4", scenario("user=admin"))
	require.NoError(t, err)
	assert.Equal(t, "user=admin", at(t, out, "zabbix_export", "hosts", 0, "httptests", 0, "steps", 0, "posts"))

	pairs := []any{map[string]any{"name": "user", "value": "admin"}}
	out, err = importDoc(t, "4.4", scenario(pairs))
	require.NoError(t, err)
	assert.Equal(t, []any{schema.Record{"name": "user", "value": "admin"}},
		at(t, out, "zabbix_export", "hosts", 0, "httptests", 0, "steps", 0, "posts"))

	_, err = importDoc(t, "4.4", scenario([]any{map[string]any{"name": "user"}}))
	requireKind(t, err, schema.MissingRequiredField,
		"/zabbix_export/hosts/host(1)/httptests/httptest(1)/steps/step(1)/posts/post_field(1)/value")
}

func graph(fields map[string]any) map[string]any {
	g := map[string]any{
		"name":        "CPU",
		"graph_items": []any{map[string]any{"item": map[string]any{"host": "web-01", "key": "system.cpu.load"}}},
	}
	for k, v := range fields {
		g[k] = v
	}
	return doc("4.4", map[string]any{"graphs": []any{g}})
}

func TestGraphAxisItem(t *testing.T) {
	out, err := importDoc(t, "4.4", graph(nil))
	require.NoError(t, err)
	g := at(t, out, "zabbix_export", "graphs", 0).(schema.Record)
	assert.Equal(t, "0", g["ymin_item_1"])
	assert.Equal(t, "0", g["ymax_type_1"])
	assert.Equal(t, "2", at(t, g, "graph_items", 0, "calc_fnc"))

	out, err = importDoc(t, "4.4", graph(map[string]any{
		"ymax_type_1": "ITEM",
		"ymax_item_1": map[string]any{"host": "web-01", "key": "system.cpu.num"},
	}))
	require.NoError(t, err)
	assert.Equal(t, "2", at(t, out, "zabbix_export", "graphs", 0, "ymax_type_1"))

	_, err = importDoc(t, "4.4", graph(map[string]any{"ymin_type_1": "ITEM", "ymin_item_1": "0"}))
	requireKind(t, err, schema.MissingRequiredField, "/zabbix_export/graphs/graph(1)/ymin_item_1/host")

	out, err = importDoc(t, "4.4", graph(map[string]any{"ymin_type_1": "FIXED", "ymin_item_1": "0"}))
	require.NoError(t, err)
	assert.Equal(t, schema.Record{}, at(t, out, "zabbix_export", "graphs", 0, "ymin_item_1"))

	_, err = importDoc(t, "4.4", graph(map[string]any{"ymin_item_1": map[string]any{"host": "web-01"}}))
	requireKind(t, err, schema.UnexpectedField, "/zabbix_export/graphs/graph(1)/ymin_item_1/host")
}

func TestGraphAxisItem_RoundTrip(t *testing.T) {
	for _, fields := range []map[string]any{
		nil,
		{"ymin_type_1": "FIXED", "ymin_item_1": "0"},
		{"ymax_type_1": "ITEM", "ymax_item_1": map[string]any{"host": "h", "key": "k"}},
	} {
		out, err := importDoc(t, "4.4", graph(fields))
		require.NoError(t, err)

		again, err := importDoc(t, "4.4", exportDoc(t, "4.4", out))
		require.NoError(t, err)
		assert.Equal(t, out, again)
	}

	exportItem := axisItemExport("ymax_type_1", "ymax_item_1")
	_, err := exportItem(schema.Record{"ymax_type_1": "2", "ymax_item_1": schema.Record{"host": "h"}})
	assert.Equal(t, schema.ConditionalSchemaViolation, schema.KindOf(err))
}

// screenItem fills every mandatory field of a global screen item.
func screenItem(resourcetype, style string, resource any) map[string]any {
	item := map[string]any{
		"resourcetype": resourcetype, "style": style, "resource": resource,
	}
	for _, f := range []string{"width", "height", "x", "y", "colspan", "rowspan", "elements",
		"valign", "halign", "dynamic", "sort_triggers", "url", "application", "max_columns"} {
		item[f] = "0"
	}
	return doc("4.4", map[string]any{"screens": []any{map[string]any{
		"name": "Overview", "hsize": "1", "vsize": "1",
		"screen_items": []any{item},
	}}})
}

const resourcePath = "/zabbix_export/screens/screen(1)/screen_items/screen_item(1)/resource"

func TestScreenItemResource(t *testing.T) {
	tests := []struct {
		name         string
		resourcetype string
		style        string
		resource     any
		missing      string
	}{
		{"graph requires name", "0", "0", map[string]any{}, "/name"},
		{"graph requires host", "0", "0", map[string]any{"name": "CPU"}, "/host"},
		{"lld graph", "20", "0", "0", "/name"},
		{"simple graph requires key", "1", "0", map[string]any{}, "/key"},
		{"plain text", "3", "0", map[string]any{"key": "k"}, "/host"},
		{"map requires name", "2", "0", map[string]any{}, "/name"},
		{"trigger overview", "9", "0", map[string]any{}, "/name"},
		{"data overview", "10", "0", map[string]any{}, "/name"},
		{"host clock requires key", "7", "2", map[string]any{}, "/key"},
		{"hostgroup triggers", "14", "0", map[string]any{}, ""},
		{"host triggers", "16", "0", map[string]any{"host": "web-01"}, ""},
		{"server clock passes", "7", "0", "0", ""},
		{"unlisted type passes", "11", "0", "0", ""},
		{"symbolic type passes", "GRAPH", "0", map[string]any{"anything": "x"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := importDoc(t, "4.4", screenItem(tt.resourcetype, tt.style, tt.resource))
			if tt.missing == "" {
				require.NoError(t, err)
				return
			}
			requireKind(t, err, schema.MissingRequiredField, resourcePath+tt.missing)
		})
	}
}

func TestScreenItemResource_Unexpected(t *testing.T) {
	_, err := importDoc(t, "4.4", screenItem("16", "0", map[string]any{"name": "x"}))
	requireKind(t, err, schema.UnexpectedField, resourcePath+"/name")
}

func TestScreenItemResource_Normalized(t *testing.T) {
	out, err := importDoc(t, "4.4", screenItem("14", "0", "0"))
	require.NoError(t, err)
	assert.Equal(t, schema.Record{}, at(t, out, "zabbix_export", "screens", 0, "screen_items", 0, "resource"))
}

func TestTemplateScreenSeesRawResourceType(t *testing.T) {
	_, err := importDoc(t, "4.4", doc("4.4", map[string]any{
		"templates": []any{map[string]any{
			"template": "Template OS",
			"groups":   []any{map[string]any{"name": "Templates"}},
			"screens": []any{map[string]any{
				"name": "System",
				"screen_items": []any{map[string]any{
					"resource":     map[string]any{"name": "CPU"},
					"resourcetype": "0",
				}},
			}},
		}},
	}))
	requireKind(t, err, schema.MissingRequiredField,
		"/zabbix_export/templates/template(1)/screens/screen(1)/screen_items/screen_item(1)/resource/host")
}

func TestMapElements(t *testing.T) {
	node := &schema.Node{Kind: schema.KindRecord, Fields: []schema.Field{
		{Name: "elementtype", Node: &schema.Node{Kind: schema.KindString, Required: true}},
		{Name: "elements", Node: selementsNode(t)},
	}}
	v := schema.NewValidator()

	tests := []struct {
		name    string
		data    map[string]any
		kind    schema.ErrorKind
		errPath string
	}{
		{"host requires elements", map[string]any{"elementtype": "0"}, schema.MissingRequiredField, "/elements"},
		{"host element", map[string]any{"elementtype": "0", "elements": []any{map[string]any{"host": "web-01"}}}, "", ""},
		{"host element shape", map[string]any{"elementtype": "0", "elements": []any{map[string]any{}}}, schema.MissingRequiredField, "/elements/element(1)/host"},
		{"map element", map[string]any{"elementtype": "1", "elements": []any{map[string]any{}}}, schema.MissingRequiredField, "/elements/element(1)/name"},
		{"trigger element", map[string]any{"elementtype": "2", "elements": []any{map[string]any{"description": "d", "expression": "e"}}}, schema.MissingRequiredField, "/elements/element(1)/recovery_expression"},
		{"host group element", map[string]any{"elementtype": "3", "elements": []any{map[string]any{"name": "Linux"}}}, "", ""},
		{"image needs nothing", map[string]any{"elementtype": "4"}, "", ""},
		{"image takes no elements", map[string]any{"elementtype": "4", "elements": map[string]any{"x": "1"}}, schema.UnexpectedField, "/elements/x"},
		{"symbolic type passes", map[string]any{"elementtype": "HOST", "elements": "anything"}, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Validate(node, tt.data, "")
			if tt.kind == "" {
				require.NoError(t, err)
				return
			}
			requireKind(t, err, tt.kind, tt.errPath)
		})
	}
}

// selementsNode extracts the declared elements node of map selements.
func selementsNode(t *testing.T) *schema.Node {
	t.Helper()
	root, err := Lookup("4.4")
	require.NoError(t, err)
	export, _ := root.Field("zabbix_export")
	maps, _ := export.Field("maps")
	selements, _ := maps.Field("selements")
	elements, ok := selements.Field("elements")
	require.True(t, ok)
	return elements
}

func trigger(fields map[string]any) map[string]any {
	tr := map[string]any{"name": "High load", "expression": "{web-01:system.cpu.load.last()}>5"}
	for k, v := range fields {
		tr[k] = v
	}
	return tr
}

func TestFormatDeltas(t *testing.T) {
	opdata := func(version string) map[string]any {
		return doc(version, map[string]any{"triggers": []any{trigger(map[string]any{"opdata": "{ITEM.LASTVALUE}"})}})
	}
	_, err := importDoc(t, "4.4", opdata("4.4"))
	require.NoError(t, err)
	_, err = importDoc(t, "4.2", opdata("4.2"))
	requireKind(t, err, schema.UnexpectedField, "/zabbix_export/triggers/trigger(1)/opdata")

	step := func(version, stepType string) map[string]any {
		return doc(version, map[string]any{"hosts": []any{host(map[string]any{"items": []any{map[string]any{
			"key": "k", "name": "n",
			"preprocessing": []any{map[string]any{"type": stepType, "params": ""}},
		}}})}})
	}
	out, err := importDoc(t, "4.2", step("4.2", "JAVASCRIPT"))
	require.NoError(t, err)
	assert.Equal(t, "21", at(t, out, "zabbix_export", "hosts", 0, "items", 0, "preprocessing", 0, "type"))
	assert.Equal(t, "0", at(t, out, "zabbix_export", "hosts", 0, "items", 0, "preprocessing", 0, "error_handler"))

	_, err = importDoc(t, "4.0", step("4.0", "JAVASCRIPT"))
	requireKind(t, err, schema.InvalidEnumValue, "/zabbix_export/hosts/host(1)/items/item(1)/preprocessing/step(1)/type")

	out, err = importDoc(t, "4.0", step("4.0", "JSONPATH"))
	require.NoError(t, err)
	assert.NotContains(t, at(t, out, "zabbix_export", "hosts", 0, "items", 0, "preprocessing", 0), "error_handler")

	paths := func(version string) map[string]any {
		return doc(version, map[string]any{"hosts": []any{host(map[string]any{"discovery_rules": []any{map[string]any{
			"key": "k", "name": "n",
			"lld_macro_paths": []any{map[string]any{"lld_macro": "{#FS}", "path": "$.fs"}},
		}}})}})
	}
	_, err = importDoc(t, "4.2", paths("4.2"))
	require.NoError(t, err)
	_, err = importDoc(t, "4.0", paths("4.0"))
	requireKind(t, err, schema.UnexpectedField, "/zabbix_export/hosts/host(1)/discovery_rules/discovery_rule(1)/lld_macro_paths")
}

func TestTriggerDefaultsAndEnums(t *testing.T) {
	out, err := importDoc(t, "4.4", doc("4.4", map[string]any{"triggers": []any{trigger(map[string]any{
		"priority": "HIGH",
		"tags":     []any{map[string]any{"tag": "scope", "value": "performance"}},
	})}}))
	require.NoError(t, err)

	tr := at(t, out, "zabbix_export", "triggers", 0).(schema.Record)
	assert.Equal(t, "4", tr["priority"])
	assert.Equal(t, "0", tr["recovery_mode"])
	assert.Equal(t, "0", tr["manual_close"])

	_, err = importDoc(t, "4.4", doc("4.4", map[string]any{"triggers": []any{trigger(map[string]any{"priority": "URGENT"})}}))
	requireKind(t, err, schema.InvalidEnumValue, "/zabbix_export/triggers/trigger(1)/priority")
}

func TestFullDocumentRoundTrip(t *testing.T) {
	data := doc("4.4", map[string]any{
		"date":   "2019-11-20T09:38:10Z",
		"groups": []any{map[string]any{"name": "Linux servers"}},
		"hosts": []any{host(map[string]any{
			"tls_accept": []any{"TLS_PSK", "TLS_CERTIFICATE"},
			"interfaces": []any{map[string]any{"interface_ref": "if1", "ip": "127.0.0.1"}},
			"inventory":  map[string]any{"os": "Linux"},
			"items": []any{
				map[string]any{"key": "ssh.run[uptime]", "name": "Uptime", "type": "SSH", "authtype": "PUBLIC_KEY"},
				map[string]any{"key": "agent.ping", "name": "Ping", "triggers": []any{trigger(nil)}},
			},
		})},
		"value_maps": []any{map[string]any{
			"name":     "Service state",
			"mappings": []any{map[string]any{"value": "0", "newvalue": "Down"}},
		}},
	})

	out, err := importDoc(t, "4.4", data)
	require.NoError(t, err)
	assert.Equal(t, "6", at(t, out, "zabbix_export", "hosts", 0, "tls_accept"))
	assert.Equal(t, "1", at(t, out, "zabbix_export", "hosts", 0, "items", 0, "authtype"))

	exported := exportDoc(t, "4.4", out)
	assert.Equal(t, "PUBLIC_KEY", at(t, exported, "zabbix_export", "hosts", 0, "items", 0, "authtype"))
	assert.Equal(t, "NONE", at(t, exported, "zabbix_export", "hosts", 0, "items", 1, "authtype"))
	assert.Equal(t, "SSH", at(t, exported, "zabbix_export", "hosts", 0, "items", 0, "type"))

	again, err := importDoc(t, "4.4", exported)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestSchemaStats(t *testing.T) {
	for _, version := range Versions() {
		root, err := Lookup(version)
		require.NoError(t, err)
		stats := schema.Count(root)
		assert.Greater(t, stats.Sequences, 50, version)
		assert.Greater(t, stats.Enums, 100, version)
		assert.Greater(t, stats.Hooked, 10, version)
	}
}
