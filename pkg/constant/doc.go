// Package constant holds the code/name tables of the Zabbix export format.
//
// Export documents carry symbolic names (ENABLED, ZABBIX_ACTIVE, ...) while the
// import pipeline works on the internal numeric codes. An Enum binds the two in
// declaration order so that schema nodes can validate a name, rewrite it to its
// code and map the code back on export.
package constant
