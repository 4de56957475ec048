package formats

import (
	"github.com/darbi-a/zabbix/pkg/constant"
	"github.com/darbi-a/zabbix/pkg/dsl"
)

func hosts(p profile) *dsl.FieldBuilder {
	return dsl.Seq("hosts", "host",
		groups(),
		dsl.Str("host").Required(),
		applications(),
		dsl.Str("description"),
		discoveryRules(p, onHost),
		httpTests(),
		interfaces(),
		inventory(),
		dsl.Str("inventory_mode").Default(constant.InventoryManual).In(constant.InventoryMode),
		dsl.Str("ipmi_authtype").Default(constant.IPMIAuthDefault).In(constant.IPMIAuthType),
		dsl.Str("ipmi_password"),
		dsl.Str("ipmi_privilege").Default(constant.IPMIPrivilegeUser).In(constant.IPMIPrivilege),
		dsl.Str("ipmi_username"),
		items(p, onHost),
		macros(),
		dsl.Str("name"),
		dsl.Rec("proxy", dsl.Str("name").Required()),
		status(),
		tags(),
		linkedTemplates(),
		dsl.Str("tls_accept").
			Default(constant.TLSNoEncryption).
			Preprocess(tlsAcceptImport).
			Export(tlsAcceptExport),
		dsl.Str("tls_connect").Default(constant.TLSNoEncryption).In(constant.TLSConnect),
		dsl.Str("tls_issuer"),
		dsl.Str("tls_psk"),
		dsl.Str("tls_psk_identity"),
		dsl.Str("tls_subject"),
	)
}

func templates(p profile) *dsl.FieldBuilder {
	return dsl.Seq("templates", "template",
		groups(),
		dsl.Str("template").Required(),
		dsl.Str("description"),
		dsl.Str("name"),
		applications(),
		discoveryRules(p, onTemplate),
		httpTests(),
		items(p, onTemplate),
		macros(),
		templateScreens(),
		tags(),
		linkedTemplates(),
	)
}

func interfaces() *dsl.FieldBuilder {
	return dsl.Seq("interfaces", "interface",
		dsl.Str("interface_ref").Required(),
		yesNo("bulk", constant.Yes),
		yesNo("default", constant.Yes),
		dsl.Str("dns"),
		dsl.Str("ip"),
		dsl.Str("port"),
		dsl.Str("type").Default(constant.InterfaceZabbix).In(constant.InterfaceType),
		yesNo("useip", constant.Yes),
	)
}

func inventory() *dsl.FieldBuilder {
	return dsl.Rec("inventory", dsl.Strs(constant.InventoryFields()...)...)
}
