package common

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a YAML file from the given path and unmarshals it into a *yaml.Node
func LoadYAML(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("unmarshal to node: %w", err)
	}
	return &node, nil
}

// WriteYAML encodes v (a value or a *yaml.Node) with two space indent and
// writes it to path, creating parent directories
func WriteYAML(path string, v interface{}) error {
	buf := &bytes.Buffer{}
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	enc.Close()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// GetChildByKey returns the value node associated with the given key from a MappingNode
func GetChildByKey(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// ensureMapping returns the mapping under key, creating it (or replacing a
// null/empty scalar) when needed
func ensureMapping(node *yaml.Node, key string) (*yaml.Node, error) {
	child := GetChildByKey(node, key)
	if child != nil && child.Kind == yaml.MappingNode {
		return child, nil
	}
	if child != nil && !(child.Kind == yaml.ScalarNode && (child.Tag == "!!null" || child.Value == "")) {
		return nil, fmt.Errorf("%q is not a mapping", key)
	}

	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if child != nil {
		*child = *mapping
		return child, nil
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		mapping,
	)
	return mapping, nil
}

func setScalar(node *yaml.Node, key, value string) {
	if child := GetChildByKey(node, key); child != nil {
		child.Kind = yaml.ScalarNode
		child.Tag = "!!str"
		child.Style = yaml.DoubleQuotedStyle
		child.Value = value
		child.Content = nil
		return
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: value},
	)
}

// SetContractAddresses records contract addresses under networks.<network>.contracts
// of a YAML networks config, keeping comments and key order of the rest of the file.
func SetContractAddresses(path, network string, addresses map[string]string) error {
	if err := verifyNetwork(network); err != nil {
		return err
	}
	doc, err := LoadYAML(path)
	if err != nil {
		return err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return fmt.Errorf("%s is empty", path)
	}

	networks, err := ensureMapping(doc.Content[0], "networks")
	if err != nil {
		return err
	}
	if GetChildByKey(networks, network) == nil {
		return fmt.Errorf("%w: %q", ErrNetworkNotConfigured, network)
	}
	n, err := ensureMapping(networks, network)
	if err != nil {
		return err
	}
	contracts, err := ensureMapping(n, "contracts")
	if err != nil {
		return err
	}

	names := make([]string, 0, len(addresses))
	for name := range addresses {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		setScalar(contracts, name, addresses[name])
	}
	return WriteYAML(path, doc)
}
