package directory

import (
	"context"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/martinsuchenak/hcloud-inventory/internal/log"
	"github.com/martinsuchenak/hcloud-inventory/internal/model"
)

const applicationName = "hcloud-inventory"

// HCloud lists servers through the Hetzner Cloud API
type HCloud struct {
	client *hcloud.Client
}

// NewHCloud creates a Directory for the given token. An empty endpoint
// uses the public API.
func NewHCloud(token, endpoint, version string) *HCloud {
	opts := []hcloud.ClientOption{
		hcloud.WithToken(token),
		hcloud.WithApplication(applicationName, version),
	}
	if endpoint != "" {
		opts = append(opts, hcloud.WithEndpoint(endpoint))
	}
	return &HCloud{client: hcloud.NewClient(opts...)}
}

// Servers fetches every server, following pagination. API errors are
// returned unchanged.
func (h *HCloud) Servers(ctx context.Context) ([]model.Server, error) {
	servers, err := h.client.Server.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.Server, 0, len(servers))
	for _, s := range servers {
		out = append(out, fromHCloud(s))
	}
	log.Debug("Fetched servers", "count", len(out))
	return out, nil
}

func fromHCloud(s *hcloud.Server) model.Server {
	srv := model.Server{
		Name:   s.Name,
		Labels: s.Labels,
	}
	if srv.Labels == nil {
		srv.Labels = map[string]string{}
	}

	if ip := s.PublicNet.IPv4.IP; ip != nil && !ip.IsUnspecified() {
		srv.PublicIPv4 = ip.String()
	}
	if s.ServerType != nil {
		srv.ServerType = &model.ServerType{Name: s.ServerType.Name}
	}
	if dc := s.Datacenter; dc != nil {
		srv.Datacenter = &model.Datacenter{Name: dc.Name}
		if dc.Location != nil {
			srv.Datacenter.Location = &model.Location{Name: dc.Location.Name}
		}
	}
	return srv
}
