package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse decodes a configuration document and returns a validated Config.
// Unknown top-level keys are ignored. Parse never touches the filesystem.
func Parse(data []byte) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedDocumentError{Err: err}
	}

	cfg := &Config{UseDirectoryURLs: true}
	var root *yaml.Node
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root = deref(doc.Content[0])
	}
	switch {
	case root == nil || isNull(root):
		// Empty document; Validate reports the missing fields.
	case root.Kind != yaml.MappingNode:
		return nil, &MalformedDocumentError{Err: fmt.Errorf("top level is a %s, want a mapping", kindName(root))}
	default:
		if err := decodeTop(cfg, root); err != nil {
			return nil, err
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeTop(cfg *Config, root *yaml.Node) error {
	strs := map[string]*string{
		"site_name":        &cfg.Site.Name,
		"site_description": &cfg.Site.Description,
		"site_author":      &cfg.Site.Author,
		"site_url":         &cfg.Site.URL,
		"repo_name":        &cfg.Site.Repo.Name,
		"repo_url":         &cfg.Site.Repo.URL,
		"edit_uri":         &cfg.Site.Repo.EditURI,
		"copyright":        &cfg.Site.Copyright,
		"docs_dir":         &cfg.DocsDir,
	}

	var err error
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], deref(root.Content[i+1])
		if key.Kind != yaml.ScalarNode {
			continue
		}
		if dst, ok := strs[key.Value]; ok {
			*dst, err = scalar(val, key.Value)
			if err != nil {
				return err
			}
			continue
		}
		switch key.Value {
		case "use_directory_urls":
			if isNull(val) {
				continue
			}
			if val.Kind != yaml.ScalarNode || val.Decode(&cfg.UseDirectoryURLs) != nil {
				return invalid(key.Value, "expected a boolean, got %s", describe(val))
			}
		case "theme":
			if err := decodeTheme(&cfg.Theme, val); err != nil {
				return err
			}
		case "markdown_extensions":
			if cfg.Extensions, err = decodeExtensions(val); err != nil {
				return err
			}
		case "nav":
			if cfg.Nav, err = decodeNav(val, "nav"); err != nil {
				return err
			}
		}
	}
	return nil
}

func decodeTheme(t *ThemeConfig, n *yaml.Node) error {
	switch {
	case isNull(n):
		return nil
	case n.Kind == yaml.ScalarNode:
		t.Name = n.Value
		return nil
	case n.Kind != yaml.MappingNode:
		return invalid("theme", "expected a theme name or a mapping, got a %s", kindName(n))
	}

	var err error
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, deref(n.Content[i+1])
		field := "theme." + key
		switch key {
		case "name":
			t.Name, err = scalar(val, field)
		case "logo":
			t.Logo, err = scalar(val, field)
		case "favicon":
			t.Favicon, err = scalar(val, field)
		case "palette":
			err = decodePairs(val, field, map[string]*string{
				"primary": &t.Palette.Primary,
				"accent":  &t.Palette.Accent,
			})
		case "font":
			err = decodePairs(val, field, map[string]*string{
				"text": &t.Font.Text,
				"code": &t.Font.Code,
			})
		case "features":
			t.Features, err = scalarList(val, field)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// decodePairs fills dst from a mapping of scalars; keys not in dst are ignored.
func decodePairs(n *yaml.Node, field string, dst map[string]*string) error {
	if isNull(n) {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return invalid(field, "expected a mapping, got a %s", kindName(n))
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		p, ok := dst[key]
		if !ok {
			continue
		}
		v, err := scalar(deref(n.Content[i+1]), field+"."+key)
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

func decodeExtensions(n *yaml.Node) (Extensions, error) {
	const field = "markdown_extensions"
	switch {
	case isNull(n):
		return nil, nil
	case n.Kind == yaml.MappingNode:
		// Mapping form: every key is an extension, in document order.
		var exts Extensions
		for i := 0; i+1 < len(n.Content); i += 2 {
			e, err := decodeExtension(n.Content[i], deref(n.Content[i+1]), fmt.Sprintf("%s.%s", field, n.Content[i].Value))
			if err != nil {
				return nil, err
			}
			exts = append(exts, e)
		}
		return exts, nil
	case n.Kind != yaml.SequenceNode:
		return nil, invalid(field, "expected a sequence, got a %s", kindName(n))
	}

	exts := make(Extensions, 0, len(n.Content))
	for i, item := range n.Content {
		item = deref(item)
		itemField := fmt.Sprintf("%s[%d]", field, i)
		switch {
		case item.Kind == yaml.ScalarNode && !isNull(item):
			exts = append(exts, Extension{Name: item.Value})
		case item.Kind == yaml.MappingNode && len(item.Content) == 2:
			e, err := decodeExtension(item.Content[0], deref(item.Content[1]), itemField)
			if err != nil {
				return nil, err
			}
			exts = append(exts, e)
		case item.Kind == yaml.MappingNode:
			return nil, invalid(itemField, "expected a single extension name, got %d keys", len(item.Content)/2)
		default:
			return nil, invalid(itemField, "expected an extension name or mapping, got a %s", kindName(item))
		}
	}
	return exts, nil
}

func decodeExtension(key, val *yaml.Node, field string) (Extension, error) {
	if key.Kind != yaml.ScalarNode || key.Value == "" {
		return Extension{}, invalid(field, "extension name must be a non-empty string")
	}
	e := Extension{Name: key.Value}
	if isNull(val) {
		return e, nil
	}
	if val.Kind != yaml.MappingNode {
		return Extension{}, invalid(field, "options for %q must be a mapping, got a %s", e.Name, kindName(val))
	}
	var params map[string]any
	if err := val.Decode(&params); err != nil {
		return Extension{}, invalid(field, "options for %q: %v", e.Name, err)
	}
	if len(params) > 0 {
		e.Params = params
	}
	return e, nil
}

// decodeNav reads a group body: a sequence of items, or a mapping whose keys
// are read in document order.
func decodeNav(n *yaml.Node, field string) ([]NavEntry, error) {
	switch {
	case isNull(n):
		return nil, nil
	case n.Kind == yaml.MappingNode:
		return decodeNavPairs(n, field)
	case n.Kind != yaml.SequenceNode:
		return nil, invalid(field, "expected a sequence of entries, got a %s", kindName(n))
	}

	var entries []NavEntry
	for i, item := range n.Content {
		item = deref(item)
		itemField := fmt.Sprintf("%s[%d]", field, i)
		switch {
		case item.Kind == yaml.ScalarNode && !isNull(item):
			if err := checkPath(item, itemField); err != nil {
				return nil, err
			}
			entries = append(entries, NavEntry{Path: item.Value})
		case item.Kind == yaml.MappingNode:
			sub, err := decodeNavPairs(item, itemField)
			if err != nil {
				return nil, err
			}
			entries = append(entries, sub...)
		default:
			return nil, invalid(itemField, "expected a path or a label mapping, got a %s", kindName(item))
		}
	}
	return entries, nil
}

func decodeNavPairs(n *yaml.Node, field string) ([]NavEntry, error) {
	entries := make([]NavEntry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], deref(n.Content[i+1])
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, invalid(field, "navigation label must be a non-empty string")
		}
		label := key.Value
		sub := field + "." + label

		switch {
		case isNull(val):
			return nil, invalid(sub, "missing path")
		case val.Kind == yaml.ScalarNode:
			if err := checkPath(val, sub); err != nil {
				return nil, err
			}
			entries = append(entries, NavEntry{Label: label, Path: val.Value})
		default:
			children, err := decodeNav(val, sub)
			if err != nil {
				return nil, err
			}
			if len(children) == 0 {
				return nil, invalid(sub, "group has no entries")
			}
			entries = append(entries, NavEntry{Label: label, Children: children})
		}
	}
	return entries, nil
}

// checkPath accepts a non-empty string scalar. Numbers and booleans are
// rejected; quote them to use them as file names.
func checkPath(n *yaml.Node, field string) error {
	if n.ShortTag() != "!!str" {
		return invalid(field, "expected a path string, got %s (%s)", describe(n), n.ShortTag())
	}
	if n.Value == "" {
		return invalid(field, "empty path")
	}
	return nil
}

func scalar(n *yaml.Node, field string) (string, error) {
	if isNull(n) {
		return "", nil
	}
	if n.Kind != yaml.ScalarNode {
		return "", invalid(field, "expected a scalar, got a %s", kindName(n))
	}
	return n.Value, nil
}

func scalarList(n *yaml.Node, field string) ([]string, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, invalid(field, "expected a sequence, got a %s", kindName(n))
	}
	var out []string
	for i, item := range n.Content {
		v, err := scalar(deref(item), fmt.Sprintf("%s[%d]", field, i))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "scalar"
	}
}

func describe(n *yaml.Node) string {
	if n.Kind == yaml.ScalarNode {
		return fmt.Sprintf("%q", n.Value)
	}
	return "a " + kindName(n)
}
