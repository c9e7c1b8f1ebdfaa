package inventory

import "github.com/martinsuchenak/hcloud-inventory/internal/model"

// ExtractHostVars maps a server to its inventory name and host variables
func ExtractHostVars(server model.Server) (string, model.HostVars, error) {
	name := cleanName(server.Name)

	switch {
	case server.PublicIPv4 == "":
		return "", model.HostVars{}, &MissingFieldError{Server: server.Name, Field: "public_net.ipv4"}
	case server.ServerType == nil:
		return "", model.HostVars{}, &MissingFieldError{Server: server.Name, Field: "server_type"}
	case server.Datacenter == nil:
		return "", model.HostVars{}, &MissingFieldError{Server: server.Name, Field: "datacenter"}
	case server.Datacenter.Location == nil:
		return "", model.HostVars{}, &MissingFieldError{Server: server.Name, Field: "datacenter.location"}
	}

	return name, model.HostVars{
		AnsibleHost:      server.PublicIPv4,
		HCloudServerType: server.ServerType.Name,
		HCloudDataCenter: server.Datacenter.Name,
		HCloudLocation:   server.Datacenter.Location.Name,
	}, nil
}

// cleanName is where inventory host names get normalized. Names are
// currently passed through unchanged.
func cleanName(name string) string {
	return name
}
