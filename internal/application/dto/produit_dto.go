package dto

import "github.com/eisf/gestion-web/internal/domain/entity"

// ProduitVue est un produit enrichi pour l'affichage: total de stock tous
// lieux confondus et indicateur de passage sous le seuil d'alerte.
type ProduitVue struct {
	entity.Produit
	StockTotal int64
	SousSeuil  bool
}
