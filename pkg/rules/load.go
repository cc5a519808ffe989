package rules

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a mapping of key to pattern or pattern list.
// Mapping order is kept as priority order, which is why the table is read
// from the node tree instead of a Go map.
func (t *Table) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*t = Table{}
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: expected mapping", ErrInvalidTable, node.Line)
	}

	var b builder
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		if valNode.Kind == yaml.AliasNode {
			valNode = valNode.Alias
		}

		var p Patterns
		switch valNode.Kind {
		case yaml.ScalarNode:
			if valNode.Tag == "!!null" {
				p = One("")
				break
			}
			p = One(valNode.Value)
		case yaml.SequenceNode:
			values := make([]string, 0, len(valNode.Content))
			for _, item := range valNode.Content {
				if item.Kind != yaml.ScalarNode {
					return fmt.Errorf("%w: line %d: key %q: patterns must be strings",
						ErrInvalidTable, item.Line, keyNode.Value)
				}
				values = append(values, item.Value)
			}
			p = Many(values...)
		default:
			return fmt.Errorf("%w: line %d: key %q: expected string or list",
				ErrInvalidTable, valNode.Line, keyNode.Value)
		}
		b.add(Entry{Key: keyNode.Value, Patterns: p})
	}
	*t = b.table()
	return nil
}

// MarshalYAML renders the table as an ordered mapping.
func (t Table) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range t.entries {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: e.Key}
		var val *yaml.Node
		if e.Patterns.multi {
			val = &yaml.Node{Kind: yaml.SequenceNode}
			for _, v := range e.Patterns.values {
				val.Content = append(val.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: v})
			}
		} else {
			val = &yaml.Node{Kind: yaml.ScalarNode, Value: e.Patterns.String()}
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// ParseTables decodes a YAML document into v, typically a struct whose
// fields are Table values.
func ParseTables(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Join(ErrInvalidTable, err)
	}
	return nil
}
