package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eisf/gestion-web/internal/application/usecase"
	"github.com/eisf/gestion-web/internal/domain/entity"
)

// fauxReference est un gateway.Reference en mémoire.
type fauxReference struct {
	produits []entity.Produit
	stocks   []entity.Stock
	errListe error
}

func (f *fauxReference) ListProduits(context.Context) ([]entity.Produit, error) {
	return f.produits, f.errListe
}
func (f *fauxReference) ListLieuxStockage(context.Context) ([]entity.LieuStockage, error) {
	return nil, nil
}
func (f *fauxReference) ListStocks(context.Context) ([]entity.Stock, error) {
	return f.stocks, nil
}
func (f *fauxReference) ListTransferts(context.Context) ([]entity.Transfert, error) {
	return nil, nil
}

func TestProduitList_TotauxEtSeuil(t *testing.T) {
	gw := &fauxReference{
		produits: []entity.Produit{
			{ID: 1, Nom: "Clavier", SeuilAlerte: 10},
			{ID: 2, Nom: "Souris", SeuilAlerte: 3},
			{ID: 3, Nom: "Écran", SeuilAlerte: 2},
		},
		stocks: []entity.Stock{
			{ID: 100, Produit: entity.Produit{ID: 1}, Quantite: 4},
			{ID: 101, Produit: entity.Produit{ID: 1}, Quantite: 3},
			{ID: 102, Produit: entity.Produit{ID: 2}, Quantite: 8},
		},
	}
	uc := usecase.NewProduitUseCase(gw)

	vues, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, vues, 3)

	// l'ordre du catalogue est conservé
	assert.Equal(t, "Clavier", vues[0].Nom)
	assert.Equal(t, int64(7), vues[0].StockTotal, "le total somme tous les lieux")
	assert.True(t, vues[0].SousSeuil, "7 < 10: alerte")

	assert.Equal(t, int64(8), vues[1].StockTotal)
	assert.False(t, vues[1].SousSeuil)

	assert.Equal(t, int64(0), vues[2].StockTotal, "produit sans stock: total zéro")
	assert.True(t, vues[2].SousSeuil)
}

func TestProduitList_ErreurRemontee(t *testing.T) {
	gw := &fauxReference{errListe: errors.New("api indisponible")}
	uc := usecase.NewProduitUseCase(gw)

	_, err := uc.List(context.Background())
	assert.Error(t, err)
}
