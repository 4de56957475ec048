package formats

import (
	"github.com/darbi-a/zabbix/pkg/constant"
	"github.com/darbi-a/zabbix/pkg/dsl"
)

func httpTests() *dsl.FieldBuilder {
	return dsl.Seq("httptests", "httptest",
		dsl.Str("name").Required(),
		dsl.Seq("steps", "step",
			dsl.Str("name").Required(),
			dsl.Str("url").Required(),
			yesNo("follow_redirects", constant.Yes),
			headers(),
			dsl.Any("posts").Validate(validateHTTPPosts),
			queryFields(),
			dsl.Str("required"),
			dsl.Str("retrieve_mode").Default(constant.RetrieveModeBody).In(constant.RetrieveMode),
			dsl.Str("status_codes"),
			dsl.Str("timeout").Default("15s"),
			variables(),
		).Required(),
		dsl.Str("agent").Default("Zabbix"),
		dsl.Rec("application", dsl.Str("name").Required()),
		dsl.Str("attempts").Default("1"),
		dsl.Str("authentication").Default(constant.AuthNone).In(constant.WebAuthentication),
		dsl.Str("delay").Default("1m"),
		headers(),
		dsl.Str("http_password"),
		dsl.Str("http_proxy"),
		dsl.Str("http_user"),
		dsl.Str("ssl_cert_file"),
		dsl.Str("ssl_key_file"),
		dsl.Str("ssl_key_password"),
		status(),
		variables(),
		yesNo("verify_host", constant.No),
		yesNo("verify_peer", constant.No),
	)
}
