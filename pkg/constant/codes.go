package constant

// Generic switches.
const (
	No       = "0"
	Yes      = "1"
	Enabled  = "0"
	Disabled = "1"
)

// Item types.
const (
	ItemTypeZabbixPassive = "0"
	ItemTypeSNMPv1        = "1"
	ItemTypeTrap          = "2"
	ItemTypeSimple        = "3"
	ItemTypeSNMPv2        = "4"
	ItemTypeInternal      = "5"
	ItemTypeSNMPv3        = "6"
	ItemTypeZabbixActive  = "7"
	ItemTypeAggregate     = "8"
	ItemTypeExternal      = "10"
	ItemTypeODBC          = "11"
	ItemTypeIPMI          = "12"
	ItemTypeSSH           = "13"
	ItemTypeTelnet        = "14"
	ItemTypeCalculated    = "15"
	ItemTypeJMX           = "16"
	ItemTypeSNMPTrap      = "17"
	ItemTypeDependent     = "18"
	ItemTypeHTTPAgent     = "19"
)

// Item value types.
const (
	ValueTypeFloat    = "0"
	ValueTypeChar     = "1"
	ValueTypeLog      = "2"
	ValueTypeUnsigned = "3"
	ValueTypeText     = "4"
)

// Item authentication.
const (
	AuthNone      = "0"
	AuthBasic     = "1"
	AuthNTLM      = "2"
	AuthKerberos  = "3"
	AuthPassword  = "0"
	AuthPublicKey = "1"
)

// Graph settings.
const (
	CalcFncMin  = "1"
	CalcFncAvg  = "2"
	CalcFncMax  = "4"
	CalcFncAll  = "7"
	CalcFncLast = "9"

	DrawTypeSingleLine   = "0"
	DrawTypeFilledRegion = "1"
	DrawTypeBoldLine     = "2"
	DrawTypeDottedLine   = "3"
	DrawTypeDashedLine   = "4"
	DrawTypeGradientLine = "5"

	GraphTypeNormal   = "0"
	GraphTypeStacked  = "1"
	GraphTypePie      = "2"
	GraphTypeExploded = "3"

	YAxisTypeCalculated = "0"
	YAxisTypeFixed      = "1"
	YAxisTypeItem       = "2"

	YAxisSideLeft  = "0"
	YAxisSideRight = "1"

	GraphItemSimple = "0"
	GraphItemSum    = "2"
)

// Triggers.
const (
	PriorityNotClassified = "0"
	PriorityInfo          = "1"
	PriorityWarning       = "2"
	PriorityAverage       = "3"
	PriorityHigh          = "4"
	PriorityDisaster      = "5"

	RecoveryModeExpression         = "0"
	RecoveryModeRecoveryExpression = "1"
	RecoveryModeNone               = "2"

	CorrelationDisabled = "0"
	CorrelationTagValue = "1"

	TriggerTypeSingle   = "0"
	TriggerTypeMultiple = "1"
)

// Preprocessing.
const (
	StepMultiplier                = "1"
	StepRTrim                     = "2"
	StepLTrim                     = "3"
	StepTrim                      = "4"
	StepRegex                     = "5"
	StepBoolToDecimal             = "6"
	StepOctalToDecimal            = "7"
	StepHexToDecimal              = "8"
	StepSimpleChange              = "9"
	StepChangePerSecond           = "10"
	StepXMLPath                   = "11"
	StepJSONPath                  = "12"
	StepInRange                   = "13"
	StepMatchesRegex              = "14"
	StepNotMatchesRegex           = "15"
	StepCheckJSONError            = "16"
	StepCheckXMLError             = "17"
	StepCheckRegexError           = "18"
	StepDiscardUnchanged          = "19"
	StepDiscardUnchangedHeartbeat = "20"
	StepJavaScript                = "21"
	StepPrometheusPattern         = "22"
	StepPrometheusToJSON          = "23"

	ErrorHandlerOriginal    = "0"
	ErrorHandlerDiscard     = "1"
	ErrorHandlerCustomValue = "2"
	ErrorHandlerCustomError = "3"
)

// HTTP agent and web scenario settings.
const (
	PostTypeRaw  = "0"
	PostTypeJSON = "2"
	PostTypeXML  = "3"

	RequestMethodGet  = "0"
	RequestMethodPost = "1"
	RequestMethodPut  = "2"
	RequestMethodHead = "3"

	RetrieveModeBody    = "0"
	RetrieveModeHeaders = "1"
	RetrieveModeBoth    = "2"

	OutputFormatRaw  = "0"
	OutputFormatJSON = "1"
)

// SNMPv3.
const (
	SecurityLevelNoAuthNoPriv = "0"
	SecurityLevelAuthNoPriv   = "1"
	SecurityLevelAuthPriv     = "2"

	AuthProtocolMD5 = "0"
	AuthProtocolSHA = "1"

	PrivProtocolDES = "0"
	PrivProtocolAES = "1"
)

// Low-level discovery filters.
const (
	ConditionMatchesRegex    = "8"
	ConditionNotMatchesRegex = "9"

	EvalTypeAndOr   = "0"
	EvalTypeAnd     = "1"
	EvalTypeOr      = "2"
	EvalTypeFormula = "3"
)

// Hosts.
const (
	InterfaceZabbix = "1"
	InterfaceSNMP   = "2"
	InterfaceIPMI   = "3"
	InterfaceJMX    = "4"

	InventoryDisabled  = "-1"
	InventoryManual    = "0"
	InventoryAutomatic = "1"

	IPMIAuthDefault  = "-1"
	IPMIAuthNone     = "0"
	IPMIAuthMD2      = "1"
	IPMIAuthMD5      = "2"
	IPMIAuthStraight = "4"
	IPMIAuthOEM      = "5"
	IPMIAuthRMCPPlus = "6"

	IPMIPrivilegeCallback = "1"
	IPMIPrivilegeUser     = "2"
	IPMIPrivilegeOperator = "3"
	IPMIPrivilegeAdmin    = "4"
	IPMIPrivilegeOEM      = "5"

	TLSNoEncryption = "1"
	TLSPSK          = "2"
	TLSCertificate  = "4"

	InventoryLinkNone = "0"
)

// Map elements.
const (
	MapElementHost      = "0"
	MapElementMap       = "1"
	MapElementTrigger   = "2"
	MapElementHostGroup = "3"
	MapElementImage     = "4"
)

// Screen item resources.
const (
	ScreenResourceGraph             = "0"
	ScreenResourceSimpleGraph       = "1"
	ScreenResourceMap               = "2"
	ScreenResourcePlainText         = "3"
	ScreenResourceHostInfo          = "4"
	ScreenResourceTriggerInfo       = "5"
	ScreenResourceServerInfo        = "6"
	ScreenResourceClock             = "7"
	ScreenResourceScreen            = "8"
	ScreenResourceTriggerOverview   = "9"
	ScreenResourceDataOverview      = "10"
	ScreenResourceURL               = "11"
	ScreenResourceActions           = "12"
	ScreenResourceEvents            = "13"
	ScreenResourceHostGroupTriggers = "14"
	ScreenResourceSystemStatus      = "15"
	ScreenResourceHostTriggers      = "16"
	ScreenResourceLLDSimpleGraph    = "19"
	ScreenResourceLLDGraph          = "20"

	TimeTypeLocal  = "0"
	TimeTypeServer = "1"
	TimeTypeHost   = "2"
)

// Symbolic names referenced outside their tables.
const (
	NameNone         = "NONE"
	NameSSH          = "SSH"
	NameDependent    = "DEPENDENT"
	NameHTTPAgent    = "HTTP_AGENT"
	NameItem         = "ITEM"
	NameAndOr        = "AND_OR"
	NameNoEncryption = "NO_ENCRYPTION"
	NameTLSPSK       = "TLS_PSK"
	NameTLSCert      = "TLS_CERTIFICATE"
)
