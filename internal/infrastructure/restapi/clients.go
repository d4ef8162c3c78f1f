package restapi

import (
	"context"
	"fmt"

	"github.com/eisf/gestion-web/internal/domain/entity"
)

// ListClients charge la liste des clients.
func (c *Client) ListClients(ctx context.Context) ([]entity.Client, error) {
	var out []entity.Client
	if err := c.getJSON(ctx, "/api/clients/", &out); err != nil {
		return nil, fmt.Errorf("clients: %w", err)
	}
	return out, nil
}

// CreateClient crée un client.
func (c *Client) CreateClient(ctx context.Context, in entity.NouveauClient) (*entity.Client, error) {
	var out entity.Client
	if err := c.postJSON(ctx, "/api/clients/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
