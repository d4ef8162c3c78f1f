package usecase

import (
	"context"

	"github.com/eisf/gestion-web/internal/application/dto"
	"github.com/eisf/gestion-web/internal/domain/gateway"
)

// ProduitUseCase prépare la page du catalogue: produits et totaux de stock.
type ProduitUseCase struct {
	gw gateway.Reference
}

// NewProduitUseCase construit le cas d'usage.
func NewProduitUseCase(gw gateway.Reference) *ProduitUseCase {
	return &ProduitUseCase{gw: gw}
}

// List renvoie les produits dans l'ordre du catalogue, chacun avec son
// total de stock (somme sur tous les lieux) et l'indicateur de seuil.
func (uc *ProduitUseCase) List(ctx context.Context) ([]dto.ProduitVue, error) {
	produits, err := uc.gw.ListProduits(ctx)
	if err != nil {
		return nil, err
	}
	stocks, err := uc.gw.ListStocks(ctx)
	if err != nil {
		return nil, err
	}

	totaux := make(map[int64]int64, len(produits))
	for _, s := range stocks {
		totaux[s.Produit.ID] += s.Quantite
	}

	vues := make([]dto.ProduitVue, 0, len(produits))
	for _, p := range produits {
		total := totaux[p.ID]
		vues = append(vues, dto.ProduitVue{
			Produit:    p,
			StockTotal: total,
			SousSeuil:  total < p.SeuilAlerte,
		})
	}
	return vues, nil
}
