package model

// Location represents the physical site that owns a datacenter
type Location struct {
	Name string `json:"name" yaml:"name"`
}

// Datacenter represents a datacenter a server is placed in
type Datacenter struct {
	Name     string    `json:"name" yaml:"name"`
	Location *Location `json:"location,omitempty" yaml:"location,omitempty"`
}

// ServerType represents the plan a server runs on (e.g. "cx22")
type ServerType struct {
	Name string `json:"name" yaml:"name"`
}
