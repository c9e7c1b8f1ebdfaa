// Package inventory assembles the Ansible inventory from the server list.
package inventory

import (
	"github.com/martinsuchenak/hcloud-inventory/internal/log"
	"github.com/martinsuchenak/hcloud-inventory/internal/model"
	"github.com/martinsuchenak/hcloud-inventory/internal/selector"
)

// Option configures a Builder
type Option func(*Builder)

// WithResidualUngrouped makes the ungrouped group list only the matched
// servers that belong to no configured group. Without it every matched
// server is listed.
func WithResidualUngrouped() Option {
	return func(b *Builder) {
		b.residualUngrouped = true
	}
}

// Builder filters and groups servers into an inventory
type Builder struct {
	residualUngrouped bool
}

// NewBuilder creates a new Builder
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build filters servers by the global filters, assigns the matched ones to
// groups and extracts their host variables. Any extraction error aborts the
// build.
func (b *Builder) Build(servers []model.Server, filters model.SelectorSet, groups []model.GroupDefinition) (*model.Inventory, error) {
	matched := selector.Filter(filters, servers)

	inv := &model.Inventory{
		HostVars:  make(map[string]model.HostVars, len(matched)),
		Groups:    make([]model.Group, 0, len(groups)),
		Ungrouped: make([]string, 0, len(matched)),
	}

	names := make([]string, 0, len(matched))
	for _, srv := range matched {
		name, vars, err := ExtractHostVars(srv)
		if err != nil {
			return nil, err
		}
		if _, dup := inv.HostVars[name]; !dup {
			names = append(names, name)
		}
		inv.HostVars[name] = vars
	}

	grouped := make(map[string]bool, len(matched))
	for _, def := range groups {
		group := model.Group{Name: def.Name, Hosts: []string{}}
		for _, srv := range matched {
			if selector.MatchesServer(def.Selectors, srv) {
				name := cleanName(srv.Name)
				group.Hosts = append(group.Hosts, name)
				grouped[name] = true
			}
		}
		inv.Groups = append(inv.Groups, group)
	}

	for _, name := range names {
		if b.residualUngrouped && grouped[name] {
			continue
		}
		inv.Ungrouped = append(inv.Ungrouped, name)
	}

	log.Debug("Inventory built",
		"servers", len(servers),
		"matched", len(matched),
		"groups", len(inv.Groups),
		"grouped_hosts", len(grouped))

	return inv, nil
}
