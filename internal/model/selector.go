package model

import (
	"fmt"
	"strings"
)

// Selector is a single required label key/value pair
type Selector struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// SelectorSet is a collection of selectors. Order is irrelevant and
// duplicates are allowed.
type SelectorSet []Selector

// Keys returns the set of keys referenced by the selectors
func (s SelectorSet) Keys() map[string]struct{} {
	keys := make(map[string]struct{}, len(s))
	for _, sel := range s {
		keys[sel.Key] = struct{}{}
	}
	return keys
}

func (s SelectorSet) String() string {
	parts := make([]string, 0, len(s))
	for _, sel := range s {
		parts = append(parts, fmt.Sprintf("%s=%s", sel.Key, sel.Value))
	}
	return strings.Join(parts, ",")
}

// GroupDefinition is a named selector set read from a "groups:<name>"
// configuration section
type GroupDefinition struct {
	Name      string      `json:"name" yaml:"name"`
	Selectors SelectorSet `json:"selectors" yaml:"selectors"`
}
