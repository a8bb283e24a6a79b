package profile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// rawProfile is the direct YAML decoding target for a profile document,
// before normalization. Field names are lower-cased automatically by
// gopkg.in/yaml.v3 except where a tag overrides it; tags are spelled out
// here for clarity, matching the profile file's top-level key names.
//
// Env is decoded as a raw yaml.Node, not a Go map, because a profile's
// variable iteration order is observable at script-emission time (an
// earlier variable may be referenced by a later one's runtime pipeline)
// and decoding straight into a map would discard the document's key order.
type rawProfile struct {
	Extends string               `yaml:"extends"`
	Env     yaml.Node            `yaml:"env"`
	Flags   map[string]rawFlag   `yaml:"flags"`
	Hooks   map[string][]rawHook `yaml:"hooks"`
}

// envEntry is one name/value pair from a profile's env mapping, in the
// order it appeared in the document.
type envEntry struct {
	Name      string
	Directive any
}

// orderedEnv decodes node (a YAML mapping node, or the zero Node when the
// profile has no env section) into envEntry pairs, preserving document
// order. A mapping node's Content alternates key node, value node, in the
// order they were written.
func orderedEnv(node yaml.Node) ([]envEntry, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("env must be a mapping, got %v", node.Kind)
	}

	entries := make([]envEntry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return nil, fmt.Errorf("env key at line %d: %w", keyNode.Line, err)
		}

		var directive any
		if err := valueNode.Decode(&directive); err != nil {
			return nil, fmt.Errorf("env %q: %w", name, err)
		}

		entries = append(entries, envEntry{Name: name, Directive: directive})
	}
	return entries, nil
}

// rawFlag is the direct decoding target for one entry of a profile's
// flags mapping. Flag is any because a profile may spell it as either a
// single string or a sequence of alias strings.
type rawFlag struct {
	Flag    any               `yaml:"flag"`
	Default any               `yaml:"default"`
	Target  string            `yaml:"target"`
	Map     map[string]string `yaml:"map"`
}

type rawHook struct {
	Name   string `yaml:"name"`
	Script string `yaml:"script"`
}
