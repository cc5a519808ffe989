package mobiledetect

import (
	_ "embed"
	"sync"

	"github.com/dmitrymomot/uasniff/pkg/rules"
)

//go:embed data/rules.yaml
var rulesYAML []byte

// Tables groups the signature tables the detector works with.
type Tables struct {
	Phones           rules.Table `yaml:"phones"`
	Tablets          rules.Table `yaml:"tablets"`
	OperatingSystems rules.Table `yaml:"operating_systems"`
	Browsers         rules.Table `yaml:"browsers"`
	Utilities        rules.Table `yaml:"utilities"`
	Properties       rules.Table `yaml:"properties"`
}

// MobileRules merges every table that marks a client as mobile.
func (t Tables) MobileRules() rules.Table {
	return rules.Merge(t.Phones, t.Tablets, t.OperatingSystems, t.Browsers)
}

var (
	defaultTables     Tables
	defaultTablesErr  error
	defaultTablesOnce sync.Once
)

// DefaultTables returns the embedded signature tables.
// It panics if the embedded data is malformed, which is a build defect.
func DefaultTables() Tables {
	defaultTablesOnce.Do(func() {
		defaultTablesErr = rules.ParseTables(rulesYAML, &defaultTables)
	})
	if defaultTablesErr != nil {
		panic(defaultTablesErr)
	}
	return defaultTables
}

// ParseTables decodes signature tables from YAML.
func ParseTables(data []byte) (Tables, error) {
	var t Tables
	if err := rules.ParseTables(data, &t); err != nil {
		return Tables{}, err
	}
	return t, nil
}
