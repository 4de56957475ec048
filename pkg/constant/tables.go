package constant

import "strings"

var (
	YesNo = NewEnum(
		E(No, "NO"),
		E(Yes, "YES"),
	)

	Status = NewEnum(
		E(Enabled, "ENABLED"),
		E(Disabled, "DISABLED"),
	)
)

var (
	ItemType = NewEnum(
		E(ItemTypeZabbixPassive, "ZABBIX_PASSIVE"),
		E(ItemTypeSNMPv1, "SNMPV1"),
		E(ItemTypeTrap, "TRAP"),
		E(ItemTypeSimple, "SIMPLE"),
		E(ItemTypeSNMPv2, "SNMPV2"),
		E(ItemTypeInternal, "INTERNAL"),
		E(ItemTypeSNMPv3, "SNMPV3"),
		E(ItemTypeZabbixActive, "ZABBIX_ACTIVE"),
		E(ItemTypeAggregate, "AGGREGATE"),
		E(ItemTypeExternal, "EXTERNAL"),
		E(ItemTypeODBC, "ODBC"),
		E(ItemTypeIPMI, "IPMI"),
		E(ItemTypeSSH, NameSSH),
		E(ItemTypeTelnet, "TELNET"),
		E(ItemTypeCalculated, "CALCULATED"),
		E(ItemTypeJMX, "JMX"),
		E(ItemTypeSNMPTrap, "SNMP_TRAP"),
		E(ItemTypeDependent, NameDependent),
		E(ItemTypeHTTPAgent, NameHTTPAgent),
	)

	// DiscoveryItemType excludes the types a discovery rule cannot have.
	DiscoveryItemType = ItemType.Without(
		ItemTypeAggregate,
		ItemTypeCalculated,
		ItemTypeSNMPTrap,
	)

	ValueType = NewEnum(
		E(ValueTypeFloat, "FLOAT"),
		E(ValueTypeChar, "CHAR"),
		E(ValueTypeLog, "LOG"),
		E(ValueTypeUnsigned, "UNSIGNED"),
		E(ValueTypeText, "TEXT"),
	)

	AuthType = NewEnum(
		E(AuthNone, NameNone),
		E(AuthBasic, "BASIC"),
		E(AuthNTLM, "NTLM"),
		E(AuthKerberos, "KERBEROS"),
	)

	SSHAuthType = NewEnum(
		E(AuthPassword, "PASSWORD"),
		E(AuthPublicKey, "PUBLIC_KEY"),
	)

	// WebAuthentication is the web scenario subset of AuthType.
	WebAuthentication = AuthType.Without(AuthKerberos)

	InventoryLink = NewEnum(append([]Pair{E(InventoryLinkNone, NameNone)}, inventoryFields...)...)
)

// InventoryFields lists the host inventory record fields in link order.
func InventoryFields() []string {
	out := make([]string, len(inventoryFields))
	for i, p := range inventoryFields {
		out[i] = strings.ToLower(p.Name)
	}
	return out
}

var inventoryFields = []Pair{
	E("1", "TYPE"),
	E("2", "TYPE_FULL"),
	E("3", "NAME"),
	E("4", "ALIAS"),
	E("5", "OS"),
	E("6", "OS_FULL"),
	E("7", "OS_SHORT"),
	E("8", "SERIALNO_A"),
	E("9", "SERIALNO_B"),
	E("10", "TAG"),
	E("11", "ASSET_TAG"),
	E("12", "MACADDRESS_A"),
	E("13", "MACADDRESS_B"),
	E("14", "HARDWARE"),
	E("15", "HARDWARE_FULL"),
	E("16", "SOFTWARE"),
	E("17", "SOFTWARE_FULL"),
	E("18", "SOFTWARE_APP_A"),
	E("19", "SOFTWARE_APP_B"),
	E("20", "SOFTWARE_APP_C"),
	E("21", "SOFTWARE_APP_D"),
	E("22", "SOFTWARE_APP_E"),
	E("23", "CONTACT"),
	E("24", "LOCATION"),
	E("25", "LOCATION_LAT"),
	E("26", "LOCATION_LON"),
	E("27", "NOTES"),
	E("28", "CHASSIS"),
	E("29", "MODEL"),
	E("30", "HW_ARCH"),
	E("31", "VENDOR"),
	E("32", "CONTRACT_NUMBER"),
	E("33", "INSTALLER_NAME"),
	E("34", "DEPLOYMENT_STATUS"),
	E("35", "URL_A"),
	E("36", "URL_B"),
	E("37", "URL_C"),
	E("38", "HOST_NETWORKS"),
	E("39", "HOST_NETMASK"),
	E("40", "HOST_ROUTER"),
	E("41", "OOB_IP"),
	E("42", "OOB_NETMASK"),
	E("43", "OOB_ROUTER"),
	E("44", "DATE_HW_PURCHASE"),
	E("45", "DATE_HW_INSTALL"),
	E("46", "DATE_HW_EXPIRY"),
	E("47", "DATE_HW_DECOMM"),
	E("48", "SITE_ADDRESS_A"),
	E("49", "SITE_ADDRESS_B"),
	E("50", "SITE_ADDRESS_C"),
	E("51", "SITE_CITY"),
	E("52", "SITE_STATE"),
	E("53", "SITE_COUNTRY"),
	E("54", "SITE_ZIP"),
	E("55", "SITE_RACK"),
	E("56", "SITE_NOTES"),
	E("57", "POC_1_NAME"),
	E("58", "POC_1_EMAIL"),
	E("59", "POC_1_PHONE_A"),
	E("60", "POC_1_PHONE_B"),
	E("61", "POC_1_CELL"),
	E("62", "POC_1_SCREEN"),
	E("63", "POC_1_NOTES"),
	E("64", "POC_2_NAME"),
	E("65", "POC_2_EMAIL"),
	E("66", "POC_2_PHONE_A"),
	E("67", "POC_2_PHONE_B"),
	E("68", "POC_2_CELL"),
	E("69", "POC_2_SCREEN"),
	E("70", "POC_2_NOTES"),
}

var (
	GraphCalcFunction = NewEnum(
		E(CalcFncMin, "MIN"),
		E(CalcFncAvg, "AVG"),
		E(CalcFncMax, "MAX"),
		E(CalcFncAll, "ALL"),
		E(CalcFncLast, "LAST"),
	)

	GraphDrawType = NewEnum(
		E(DrawTypeSingleLine, "SINGLE_LINE"),
		E(DrawTypeFilledRegion, "FILLED_REGION"),
		E(DrawTypeBoldLine, "BOLD_LINE"),
		E(DrawTypeDottedLine, "DOTTED_LINE"),
		E(DrawTypeDashedLine, "DASHED_LINE"),
		E(DrawTypeGradientLine, "GRADIENT_LINE"),
	)

	GraphType = NewEnum(
		E(GraphTypeNormal, "NORMAL"),
		E(GraphTypeStacked, "STACKED"),
		E(GraphTypePie, "PIE"),
		E(GraphTypeExploded, "EXPLODED"),
	)

	GraphYAxisType = NewEnum(
		E(YAxisTypeCalculated, "CALCULATED"),
		E(YAxisTypeFixed, "FIXED"),
		E(YAxisTypeItem, NameItem),
	)

	GraphYAxisSide = NewEnum(
		E(YAxisSideLeft, "LEFT"),
		E(YAxisSideRight, "RIGHT"),
	)

	GraphItemType = NewEnum(
		E(GraphItemSimple, "SIMPLE"),
		E(GraphItemSum, "GRAPH_SUM"),
	)
)

var (
	TriggerPriority = NewEnum(
		E(PriorityNotClassified, "NOT_CLASSIFIED"),
		E(PriorityInfo, "INFO"),
		E(PriorityWarning, "WARNING"),
		E(PriorityAverage, "AVERAGE"),
		E(PriorityHigh, "HIGH"),
		E(PriorityDisaster, "DISASTER"),
	)

	TriggerRecoveryMode = NewEnum(
		E(RecoveryModeExpression, "EXPRESSION"),
		E(RecoveryModeRecoveryExpression, "RECOVERY_EXPRESSION"),
		E(RecoveryModeNone, NameNone),
	)

	TriggerCorrelationMode = NewEnum(
		E(CorrelationDisabled, "DISABLED"),
		E(CorrelationTagValue, "TAG_VALUE"),
	)

	TriggerType = NewEnum(
		E(TriggerTypeSingle, "SINGLE"),
		E(TriggerTypeMultiple, "MULTIPLE"),
	)
)

var (
	PreprocessingStepType = NewEnum(
		E(StepMultiplier, "MULTIPLIER"),
		E(StepRTrim, "RTRIM"),
		E(StepLTrim, "LTRIM"),
		E(StepTrim, "TRIM"),
		E(StepRegex, "REGEX"),
		E(StepBoolToDecimal, "BOOL_TO_DECIMAL"),
		E(StepOctalToDecimal, "OCTAL_TO_DECIMAL"),
		E(StepHexToDecimal, "HEX_TO_DECIMAL"),
		E(StepSimpleChange, "SIMPLE_CHANGE"),
		E(StepChangePerSecond, "CHANGE_PER_SECOND"),
		E(StepXMLPath, "XMLPATH"),
		E(StepJSONPath, "JSONPATH"),
		E(StepInRange, "IN_RANGE"),
		E(StepMatchesRegex, "MATCHES_REGEX"),
		E(StepNotMatchesRegex, "NOT_MATCHES_REGEX"),
		E(StepCheckJSONError, "CHECK_JSON_ERROR"),
		E(StepCheckXMLError, "CHECK_XML_ERROR"),
		E(StepCheckRegexError, "CHECK_REGEX_ERROR"),
		E(StepDiscardUnchanged, "DISCARD_UNCHANGED"),
		E(StepDiscardUnchangedHeartbeat, "DISCARD_UNCHANGED_HEARTBEAT"),
		E(StepJavaScript, "JAVASCRIPT"),
		E(StepPrometheusPattern, "PROMETHEUS_PATTERN"),
		E(StepPrometheusToJSON, "PROMETHEUS_TO_JSON"),
	)

	DiscoveryPreprocessingStepType = NewEnum(
		E(StepRegex, "REGEX"),
		E(StepXMLPath, "XMLPATH"),
		E(StepJSONPath, "JSONPATH"),
		E(StepNotMatchesRegex, "NOT_MATCHES_REGEX"),
		E(StepCheckJSONError, "CHECK_JSON_ERROR"),
		E(StepCheckXMLError, "CHECK_XML_ERROR"),
		E(StepDiscardUnchangedHeartbeat, "DISCARD_UNCHANGED_HEARTBEAT"),
		E(StepJavaScript, "JAVASCRIPT"),
		E(StepPrometheusToJSON, "PROMETHEUS_TO_JSON"),
	)

	PreprocessingErrorHandler = NewEnum(
		E(ErrorHandlerOriginal, "ORIGINAL_ERROR"),
		E(ErrorHandlerDiscard, "DISCARD_VALUE"),
		E(ErrorHandlerCustomValue, "CUSTOM_VALUE"),
		E(ErrorHandlerCustomError, "CUSTOM_ERROR"),
	)
)

var (
	PostType = NewEnum(
		E(PostTypeRaw, "RAW"),
		E(PostTypeJSON, "JSON"),
		E(PostTypeXML, "XML"),
	)

	RequestMethod = NewEnum(
		E(RequestMethodGet, "GET"),
		E(RequestMethodPost, "POST"),
		E(RequestMethodPut, "PUT"),
		E(RequestMethodHead, "HEAD"),
	)

	RetrieveMode = NewEnum(
		E(RetrieveModeBody, "BODY"),
		E(RetrieveModeHeaders, "HEADERS"),
		E(RetrieveModeBoth, "BOTH"),
	)

	OutputFormat = NewEnum(
		E(OutputFormatRaw, "RAW"),
		E(OutputFormatJSON, "JSON"),
	)

	SNMPv3SecurityLevel = NewEnum(
		E(SecurityLevelNoAuthNoPriv, "NOAUTHNOPRIV"),
		E(SecurityLevelAuthNoPriv, "AUTHNOPRIV"),
		E(SecurityLevelAuthPriv, "AUTHPRIV"),
	)

	SNMPv3AuthProtocol = NewEnum(
		E(AuthProtocolMD5, "MD5"),
		E(AuthProtocolSHA, "SHA"),
	)

	SNMPv3PrivProtocol = NewEnum(
		E(PrivProtocolDES, "DES"),
		E(PrivProtocolAES, "AES"),
	)

	ConditionOperator = NewEnum(
		E(ConditionMatchesRegex, "MATCHES_REGEX"),
		E(ConditionNotMatchesRegex, "NOT_MATCHES_REGEX"),
	)

	FilterEvalType = NewEnum(
		E(EvalTypeAndOr, NameAndOr),
		E(EvalTypeAnd, "AND"),
		E(EvalTypeOr, "OR"),
		E(EvalTypeFormula, "FORMULA"),
	)
)

var (
	InterfaceType = NewEnum(
		E(InterfaceZabbix, "ZABBIX"),
		E(InterfaceSNMP, "SNMP"),
		E(InterfaceIPMI, "IPMI"),
		E(InterfaceJMX, "JMX"),
	)

	InventoryMode = NewEnum(
		E(InventoryDisabled, "DISABLED"),
		E(InventoryManual, "MANUAL"),
		E(InventoryAutomatic, "AUTOMATIC"),
	)

	IPMIAuthType = NewEnum(
		E(IPMIAuthDefault, "DEFAULT"),
		E(IPMIAuthNone, NameNone),
		E(IPMIAuthMD2, "MD2"),
		E(IPMIAuthMD5, "MD5"),
		E(IPMIAuthStraight, "STRAIGHT"),
		E(IPMIAuthOEM, "OEM"),
		E(IPMIAuthRMCPPlus, "RMCP_PLUS"),
	)

	IPMIPrivilege = NewEnum(
		E(IPMIPrivilegeCallback, "CALLBACK"),
		E(IPMIPrivilegeUser, "USER"),
		E(IPMIPrivilegeOperator, "OPERATOR"),
		E(IPMIPrivilegeAdmin, "ADMIN"),
		E(IPMIPrivilegeOEM, "OEM"),
	)

	TLSConnect = NewEnum(
		E(TLSNoEncryption, NameNoEncryption),
		E(TLSPSK, NameTLSPSK),
		E(TLSCertificate, NameTLSCert),
	)
)
