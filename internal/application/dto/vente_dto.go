package dto

import "github.com/shopspring/decimal"

// LigneVente est une ligne du formulaire de vente: produit, quantité et
// prix unitaire négocié au comptoir.
type LigneVente struct {
	ProduitID    int64
	Quantite     int64
	PrixUnitaire decimal.Decimal
}

// VenteRequest est la saisie complète du formulaire de vente.
type VenteRequest struct {
	ClientID int64
	Lignes   []LigneVente
}
