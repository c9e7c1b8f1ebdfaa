// Package directory lists the servers visible to the configured credentials.
package directory

import (
	"context"

	"github.com/martinsuchenak/hcloud-inventory/internal/model"
)

// Directory returns the complete server list in a single call
type Directory interface {
	Servers(ctx context.Context) ([]model.Server, error)
}

// Static is a Directory backed by a fixed server list
type Static []model.Server

// Servers returns a copy of the static list
func (s Static) Servers(ctx context.Context) ([]model.Server, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]model.Server, len(s))
	copy(out, s)
	return out, nil
}
