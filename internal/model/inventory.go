package model

import "encoding/json"

// UngroupedName is the name of the implicit group for matched servers
const UngroupedName = "ungrouped"

// ReservedGroupNames cannot be used for configured groups because they are
// top-level keys of the inventory document
var ReservedGroupNames = []string{"_meta", "all", UngroupedName}

// IsReservedGroupName reports whether name collides with a reserved key
func IsReservedGroupName(name string) bool {
	for _, r := range ReservedGroupNames {
		if name == r {
			return true
		}
	}
	return false
}

// Group is a named list of hosts in discovery order
type Group struct {
	Name  string   `json:"name"`
	Hosts []string `json:"hosts"`
}

// Inventory is the assembled dynamic inventory
type Inventory struct {
	HostVars  map[string]HostVars
	Groups    []Group
	Ungrouped []string
}

// Children returns the group names in configuration order followed by the
// ungrouped group
func (inv *Inventory) Children() []string {
	children := make([]string, 0, len(inv.Groups)+1)
	for _, g := range inv.Groups {
		children = append(children, g.Name)
	}
	return append(children, UngroupedName)
}

type hostList struct {
	Hosts []string `json:"hosts"`
}

type childList struct {
	Children []string `json:"children"`
}

type meta struct {
	HostVars map[string]HostVars `json:"hostvars"`
}

// MarshalJSON renders the inventory in the Ansible dynamic inventory format
func (inv *Inventory) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(inv.Groups)+3)

	hostVars := inv.HostVars
	if hostVars == nil {
		hostVars = map[string]HostVars{}
	}
	doc["_meta"] = meta{HostVars: hostVars}
	doc["all"] = childList{Children: inv.Children()}
	doc[UngroupedName] = hostList{Hosts: nonNil(inv.Ungrouped)}

	for _, g := range inv.Groups {
		doc[g.Name] = hostList{Hosts: nonNil(g.Hosts)}
	}

	return json.Marshal(doc)
}

func nonNil(hosts []string) []string {
	if hosts == nil {
		return []string{}
	}
	return hosts
}
