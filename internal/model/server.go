package model

// Server represents one cloud server as returned by the server directory.
// Nested records are pointers: nil means the API did not return them.
type Server struct {
	Name       string            `json:"name"`
	Labels     map[string]string `json:"labels"`
	PublicIPv4 string            `json:"public_ipv4,omitempty"`
	ServerType *ServerType       `json:"server_type,omitempty"`
	Datacenter *Datacenter       `json:"datacenter,omitempty"`
}

// HostVars holds the variables emitted for a host in the inventory
type HostVars struct {
	AnsibleHost      string `json:"ansible_host" yaml:"ansible_host"`
	HCloudServerType string `json:"hcloud_server_type" yaml:"hcloud_server_type"`
	HCloudDataCenter string `json:"hcloud_data_center" yaml:"hcloud_data_center"`
	HCloudLocation   string `json:"hcloud_location" yaml:"hcloud_location"`
}
