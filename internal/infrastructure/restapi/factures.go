package restapi

import (
	"context"
	"fmt"

	"github.com/eisf/gestion-web/internal/domain/entity"
)

// ListFactures charge les factures avec leurs lignes embarquées.
func (c *Client) ListFactures(ctx context.Context) ([]entity.Facture, error) {
	var out []entity.Facture
	if err := c.getJSON(ctx, "/api/factures/", &out); err != nil {
		return nil, fmt.Errorf("factures: %w", err)
	}
	return out, nil
}

// GetFacture charge une facture par identifiant.
func (c *Client) GetFacture(ctx context.Context, id int64) (*entity.Facture, error) {
	var out entity.Facture
	if err := c.getJSON(ctx, fmt.Sprintf("/api/factures/%d/", id), &out); err != nil {
		return nil, fmt.Errorf("facture %d: %w", id, err)
	}
	return &out, nil
}

// CreateFacture crée une facture vide pour un client; les lignes sont
// ajoutées ensuite via CreateLigneFacture.
func (c *Client) CreateFacture(ctx context.Context, in entity.NouvelleFacture) (*entity.Facture, error) {
	var out entity.Facture
	if err := c.postJSON(ctx, "/api/factures/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateLigneFacture ajoute une ligne à une facture existante.
func (c *Client) CreateLigneFacture(ctx context.Context, in entity.NouvelleLigneFacture) (*entity.LigneFacture, error) {
	var out entity.LigneFacture
	if err := c.postJSON(ctx, "/api/lignes-facture/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
