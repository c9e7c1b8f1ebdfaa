// Package output serializes an inventory for Ansible.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/martinsuchenak/hcloud-inventory/internal/model"
)

// Format is an output document format
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (json, yaml)", s)
	}
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// WriteJSON writes the dynamic inventory document
func WriteJSON(w io.Writer, inv *model.Inventory, pretty bool) error {
	return encodeJSON(w, inv, pretty)
}

// WriteHost writes the host variables of a single host. Unknown hosts
// produce an empty object.
func WriteHost(w io.Writer, inv *model.Inventory, host string, pretty bool) error {
	if vars, ok := inv.HostVars[host]; ok {
		return encodeJSON(w, vars, pretty)
	}
	return encodeJSON(w, struct{}{}, pretty)
}

func encodeJSON(w io.Writer, v any, pretty bool) error {
	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding inventory: %w", err)
	}
	return nil
}

type yamlGroup struct {
	Hosts    map[string]*model.HostVars `yaml:"hosts,omitempty"`
	Children map[string]yamlGroup       `yaml:"children,omitempty"`
}

// WriteYAML writes the inventory as a static Ansible YAML inventory. Host
// variables are attached under all.hosts, groups reference hosts by name.
func WriteYAML(w io.Writer, inv *model.Inventory) error {
	all := yamlGroup{
		Hosts:    make(map[string]*model.HostVars, len(inv.HostVars)),
		Children: make(map[string]yamlGroup, len(inv.Groups)+1),
	}
	for name, vars := range inv.HostVars {
		all.Hosts[name] = &vars
	}
	for _, g := range inv.Groups {
		all.Children[g.Name] = yamlGroup{Hosts: hostRefs(g.Hosts)}
	}
	all.Children[model.UngroupedName] = yamlGroup{Hosts: hostRefs(inv.Ungrouped)}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(map[string]yamlGroup{"all": all}); err != nil {
		return fmt.Errorf("encoding inventory: %w", err)
	}
	return encoder.Close()
}

func hostRefs(hosts []string) map[string]*model.HostVars {
	refs := make(map[string]*model.HostVars, len(hosts))
	for _, h := range hosts {
		refs[h] = nil
	}
	return refs
}

// Write writes the inventory in the given format
func Write(w io.Writer, inv *model.Inventory, format Format, pretty bool) error {
	switch format {
	case FormatYAML:
		return WriteYAML(w, inv)
	default:
		return WriteJSON(w, inv, pretty)
	}
}
