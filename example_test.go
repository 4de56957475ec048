package zabbix_test

import (
	"context"
	"fmt"

	"github.com/darbi-a/zabbix"
	"github.com/darbi-a/zabbix/pkg/schema"
)

func ExampleImporter_Import() {
	imp, err := zabbix.New()
	if err != nil {
		panic(err)
	}

	doc := schema.Record{
		"zabbix_export": schema.Record{
			"version": "4.4",
			"groups":  []any{schema.Record{"name": "Templates"}},
		},
	}
	out, err := imp.Import(context.Background(), doc)
	if err != nil {
		panic(err)
	}

	s, _ := zabbix.Summarize(out)
	fmt.Println(s.Version, s.Groups)
	// Output: 4.4 1
}

func ExampleImporter_Import_error() {
	imp, _ := zabbix.New()

	doc := schema.Record{
		"zabbix_export": schema.Record{
			"version": "4.4",
			"groups":  []any{schema.Record{}},
		},
	}
	_, err := imp.Import(context.Background(), doc)

	verr, _ := schema.AsValidationError(err)
	fmt.Println(verr.Kind, verr.Path)
	// Output: missing_required_field /zabbix_export/groups/group(1)/name
}
