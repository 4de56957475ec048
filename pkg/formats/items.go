package formats

import (
	"github.com/darbi-a/zabbix/pkg/constant"
	"github.com/darbi-a/zabbix/pkg/dsl"
)

// itemKind selects which of the three item-like entities a field list is for.
type itemKind int

const (
	plainItem itemKind = iota
	itemPrototype
	discoveryRule
)

// owner is the entity holding the items. Templates have no interfaces.
type owner int

const (
	onHost owner = iota
	onTemplate
)

func items(p profile, o owner) *dsl.FieldBuilder {
	return dsl.Seq("items", "item", itemFields(p, o, plainItem)...)
}

func itemPrototypes(p profile, o owner) *dsl.FieldBuilder {
	return dsl.Seq("item_prototypes", "item_prototype", itemFields(p, o, itemPrototype)...)
}

func discoveryRules(p profile, o owner) *dsl.FieldBuilder {
	return dsl.Seq("discovery_rules", "discovery_rule", itemFields(p, o, discoveryRule)...)
}

// itemFields lists the fields of items, item prototypes and discovery rules,
// which share most of their definition.
func itemFields(p profile, o owner, k itemKind) []*dsl.FieldBuilder {
	collects := k != discoveryRule
	rule := k == discoveryRule

	itemTypes := constant.ItemType
	if rule {
		itemTypes = constant.DiscoveryItemType
	}

	var trig *dsl.FieldBuilder
	switch k {
	case plainItem:
		trig = triggers(p, "triggers", "trigger")
	default:
		trig = triggers(p, "trigger_prototypes", "trigger_prototype")
	}

	return []*dsl.FieldBuilder{
		dsl.Str("key").Required(),
		dsl.Str("name").Required(),
		yesNo("allow_traps", constant.No),
		dsl.Str("allowed_hosts"),
		dsl.When(collects, applications()),
		dsl.When(k == itemPrototype, named("application_prototypes", "application_prototype")),
		dsl.Str("authtype").
			Default(constant.AuthNone).
			In(constant.AuthType).
			Rules(authTypeRules).
			Export(authTypeExport),
		dsl.Str("delay").Default("1m"),
		dsl.Str("description"),
		dsl.When(rule, filter()),
		yesNo("follow_redirects", constant.Yes),
		dsl.When(rule, graphs("graph_prototypes", "graph_prototype")),
		headers(),
		dsl.When(collects, dsl.Str("history").Default("90d")),
		dsl.When(rule, hostPrototypes()),
		dsl.Str("http_proxy"),
		dsl.When(o == onHost, dsl.Str("interface_ref")),
		dsl.When(collects, dsl.Str("inventory_link").Default(constant.InventoryLinkNone).In(constant.InventoryLink)),
		dsl.Str("ipmi_sensor"),
		dsl.When(rule, itemPrototypes(p, o)),
		dsl.Str("jmx_endpoint"),
		dsl.When(rule, dsl.Str("lifetime").Default("30d")),
		dsl.When(rule && p.lldMacroPaths, dsl.Seq("lld_macro_paths", "lld_macro_path", dsl.Strs("lld_macro", "path")...)),
		dsl.When(collects, dsl.Str("logtimefmt")),
		dsl.Rec("master_item", dsl.Str("key")).Validate(validateMasterItem),
		dsl.When(collects, dsl.Str("output_format").Default(constant.OutputFormatRaw).In(constant.OutputFormat)),
		dsl.Str("params"),
		dsl.Str("password"),
		dsl.Str("port"),
		dsl.Str("post_type").Default(constant.PostTypeRaw).In(constant.PostType),
		dsl.Str("posts"),
		dsl.When(!rule || p.discoveryPreprocessing, preprocessing(p, rule)),
		dsl.Str("privatekey"),
		dsl.Str("publickey"),
		queryFields(),
		dsl.Str("request_method").Default(constant.RequestMethodGet).In(constant.RequestMethod),
		dsl.Str("retrieve_mode").Default(constant.RetrieveModeBody).In(constant.RetrieveMode),
		dsl.Str("snmp_community"),
		dsl.Str("snmp_oid"),
		dsl.Str("snmpv3_authpassphrase"),
		dsl.Str("snmpv3_authprotocol").Default(constant.AuthProtocolMD5).In(constant.SNMPv3AuthProtocol),
		dsl.Str("snmpv3_contextname"),
		dsl.Str("snmpv3_privpassphrase"),
		dsl.Str("snmpv3_privprotocol").Default(constant.PrivProtocolDES).In(constant.SNMPv3PrivProtocol),
		dsl.Str("snmpv3_securitylevel").Default(constant.SecurityLevelNoAuthNoPriv).In(constant.SNMPv3SecurityLevel),
		dsl.Str("snmpv3_securityname"),
		dsl.Str("ssl_cert_file"),
		dsl.Str("ssl_key_file"),
		dsl.Str("ssl_key_password"),
		status(),
		dsl.Str("status_codes"),
		dsl.Str("timeout"),
		dsl.When(collects, dsl.Str("trends").Default("365d")),
		trig,
		dsl.Str("type").Default(constant.ItemTypeZabbixPassive).In(itemTypes),
		dsl.When(collects, dsl.Str("units")),
		dsl.Str("url"),
		dsl.Str("username"),
		dsl.When(collects, dsl.Str("value_type").Default(constant.ValueTypeUnsigned).In(constant.ValueType)),
		dsl.When(collects, dsl.Rec("valuemap", dsl.Str("name").Required())),
		yesNo("verify_host", constant.No),
		yesNo("verify_peer", constant.No),
	}
}

func preprocessing(p profile, rule bool) *dsl.FieldBuilder {
	steps := p.steps
	if rule {
		steps = constant.DiscoveryPreprocessingStepType
	}
	return dsl.Seq("preprocessing", "step",
		dsl.Str("params").Required(),
		dsl.Str("type").Required().In(steps),
		dsl.When(p.errorHandler, dsl.Str("error_handler").
			Default(constant.ErrorHandlerOriginal).
			In(constant.PreprocessingErrorHandler)),
		dsl.When(p.errorHandler, dsl.Str("error_handler_params")),
	)
}

func filter() *dsl.FieldBuilder {
	return dsl.Rec("filter",
		dsl.Seq("conditions", "condition",
			dsl.Str("formulaid").Required(),
			dsl.Str("macro").Required(),
			dsl.Str("operator").Default(constant.ConditionMatchesRegex).In(constant.ConditionOperator),
			dsl.Str("value"),
		),
		dsl.Str("evaltype").Default(constant.EvalTypeAndOr).In(constant.FilterEvalType),
		dsl.Str("formula"),
	).Import(filterImport)
}

func hostPrototypes() *dsl.FieldBuilder {
	return dsl.Seq("host_prototypes", "host_prototype",
		dsl.Str("host").Required(),
		dsl.Seq("group_links", "group_link",
			dsl.Rec("group", dsl.Str("name").Required()),
		),
		named("group_prototypes", "group_prototype"),
		dsl.Str("name"),
		status(),
		linkedTemplates(),
	)
}
