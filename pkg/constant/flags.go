package constant

import "github.com/darbi-a/zabbix/pkg/flags"

// TLSAccept is the host tls_accept option set with the sums Zabbix can store.
var TLSAccept = flags.NewSet(
	[]flags.Flag{
		{Name: NameNoEncryption, Value: 1},
		{Name: NameTLSPSK, Value: 2},
		{Name: NameTLSCert, Value: 4},
	},
	map[int][]string{
		1: {NameNoEncryption},
		2: {NameTLSPSK},
		3: {NameNoEncryption, NameTLSPSK},
		4: {NameTLSCert},
		5: {NameNoEncryption, NameTLSCert},
		6: {NameTLSPSK, NameTLSCert},
		7: {NameNoEncryption, NameTLSPSK, NameTLSCert},
	},
)
