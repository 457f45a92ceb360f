package config

import (
	"bytes"
	"math"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Marshal writes cfg in canonical form. Parse(Marshal(cfg)) yields a Config
// equal to cfg for any cfg returned by Parse.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Format parses data and returns its canonical form.
func Format(data []byte) ([]byte, error) {
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Marshal(cfg)
}

// MarshalYAML writes a bare name when the extension has no options.
func (e Extension) MarshalYAML() (any, error) {
	if len(e.Params) == 0 {
		return e.Name, nil
	}
	params, err := valueNode(e.Params)
	if err != nil {
		return nil, err
	}
	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Name}, params},
	}, nil
}

// valueNode builds the node for a decoded option value. Floats are written
// with a fraction so that 1.0 reads back as a float and not as an int.
func valueNode(v any) (*yaml.Node, error) {
	switch v := v.(type) {
	case float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(v)}, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		n := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range keys {
			child, err := valueNode(v[k])
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, child)
		}
		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range v {
			child, err := valueNode(item)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		return n, nil
	default:
		var n yaml.Node
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		return &n, nil
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func (e NavEntry) MarshalYAML() (any, error) {
	switch {
	case e.IsGroup():
		return map[string][]NavEntry{e.Label: e.Children}, nil
	case e.Label == "":
		return e.Path, nil
	default:
		return map[string]string{e.Label: e.Path}, nil
	}
}
