package zabbix

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/darbi-a/zabbix/pkg/schema"
)

// Summary counts the top level entities of a normalized document.
type Summary struct {
	Version   string
	Date      string
	Groups    int
	Hosts     int
	Templates int
	Items     int
	Triggers  int
	Graphs    int
	ValueMaps int
	Screens   int
	Images    int
	Maps      int
}

type exportView struct {
	Version   string           `mapstructure:"version"`
	Date      string           `mapstructure:"date"`
	Groups    []any            `mapstructure:"groups"`
	Hosts     []map[string]any `mapstructure:"hosts"`
	Templates []map[string]any `mapstructure:"templates"`
	Triggers  []any            `mapstructure:"triggers"`
	Graphs    []any            `mapstructure:"graphs"`
	ValueMaps []any            `mapstructure:"value_maps"`
	Screens   []any            `mapstructure:"screens"`
	Images    []any            `mapstructure:"images"`
	Maps      []any            `mapstructure:"maps"`
}

type ownerView struct {
	Items []any `mapstructure:"items"`
}

// Summarize reports what a normalized document contains. Items are counted
// across hosts and templates.
func Summarize(doc schema.Record) (Summary, error) {
	var view exportView
	if err := mapstructure.Decode(doc["zabbix_export"], &view); err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}

	s := Summary{
		Version:   view.Version,
		Date:      view.Date,
		Groups:    len(view.Groups),
		Hosts:     len(view.Hosts),
		Templates: len(view.Templates),
		Triggers:  len(view.Triggers),
		Graphs:    len(view.Graphs),
		ValueMaps: len(view.ValueMaps),
		Screens:   len(view.Screens),
		Images:    len(view.Images),
		Maps:      len(view.Maps),
	}
	for _, owner := range append(view.Hosts, view.Templates...) {
		var o ownerView
		if err := mapstructure.Decode(owner, &o); err != nil {
			return Summary{}, fmt.Errorf("summarize: %w", err)
		}
		s.Items += len(o.Items)
	}
	return s, nil
}
