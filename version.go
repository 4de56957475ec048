package zabbix

// Version is the release of this module. Release builds override it with
// -ldflags "-X github.com/darbi-a/zabbix.Version=...".
var Version = "0.3.0"
