package useragent

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/dmitrymomot/uasniff/pkg/rules"
)

//go:embed data/extensions.yaml
var extensionsYAML []byte

// Extensions are the categories a Detector layers over the base tables.
// Devices and Browsers are tried before the base tables, OperatingSystems
// after them. Properties supply version templates for the new categories.
type Extensions struct {
	Devices          rules.Table `yaml:"devices"`
	OperatingSystems rules.Table `yaml:"operating_systems"`
	Browsers         rules.Table `yaml:"browsers"`
	Properties       rules.Table `yaml:"properties"`
}

var (
	defaultExtensions     Extensions
	defaultExtensionsErr  error
	defaultExtensionsOnce sync.Once
)

// DefaultExtensions returns the built-in desktop extensions.
// It panics if the embedded data is malformed.
func DefaultExtensions() Extensions {
	defaultExtensionsOnce.Do(func() {
		defaultExtensions, defaultExtensionsErr = ParseExtensions(extensionsYAML)
	})
	if defaultExtensionsErr != nil {
		panic(defaultExtensionsErr)
	}
	return defaultExtensions
}

// ParseExtensions decodes extension tables from YAML.
func ParseExtensions(data []byte) (Extensions, error) {
	var ext Extensions
	if err := rules.ParseTables(data, &ext); err != nil {
		return Extensions{}, errors.Join(ErrInvalidExtensions, err)
	}
	return ext, nil
}

// LoadExtensions reads extension tables from a YAML file.
func LoadExtensions(path string) (Extensions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Extensions{}, errors.Join(ErrInvalidExtensions, fmt.Errorf("read %s: %w", path, err))
	}
	return ParseExtensions(data)
}

// Merge returns ext with other's entries appended. Keys already present in
// ext keep their position and absorb other's patterns.
func (ext Extensions) Merge(other Extensions) Extensions {
	return Extensions{
		Devices:          rules.Merge(ext.Devices, other.Devices),
		OperatingSystems: rules.Merge(ext.OperatingSystems, other.OperatingSystems),
		Browsers:         rules.Merge(ext.Browsers, other.Browsers),
		Properties:       rules.Merge(ext.Properties, other.Properties),
	}
}
