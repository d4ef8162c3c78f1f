package restapi

import (
	"context"
	"fmt"

	"github.com/eisf/gestion-web/internal/domain/entity"
)

// ListProduits charge le catalogue des produits.
func (c *Client) ListProduits(ctx context.Context) ([]entity.Produit, error) {
	var out []entity.Produit
	if err := c.getJSON(ctx, "/api/produits/", &out); err != nil {
		return nil, fmt.Errorf("produits: %w", err)
	}
	return out, nil
}

// ListLieuxStockage charge les lieux de stockage.
func (c *Client) ListLieuxStockage(ctx context.Context) ([]entity.LieuStockage, error) {
	var out []entity.LieuStockage
	if err := c.getJSON(ctx, "/api/lieux_stockage/", &out); err != nil {
		return nil, fmt.Errorf("lieux de stockage: %w", err)
	}
	return out, nil
}

// ListStocks charge les stocks par lieu (produit et lieu embarqués).
func (c *Client) ListStocks(ctx context.Context) ([]entity.Stock, error) {
	var out []entity.Stock
	if err := c.getJSON(ctx, "/api/stocks/", &out); err != nil {
		return nil, fmt.Errorf("stocks: %w", err)
	}
	return out, nil
}

// ListTransferts charge l'historique des transferts.
func (c *Client) ListTransferts(ctx context.Context) ([]entity.Transfert, error) {
	var out []entity.Transfert
	if err := c.getJSON(ctx, "/api/transferts/", &out); err != nil {
		return nil, fmt.Errorf("transferts: %w", err)
	}
	return out, nil
}
