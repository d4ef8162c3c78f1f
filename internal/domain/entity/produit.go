package entity

import "github.com/shopspring/decimal"

// Produit représente un produit (SKU) du catalogue, tel que servi par l'API
// distante. Donnée de référence en lecture seule côté front-end.
type Produit struct {
	ID          int64           `json:"id"`
	Nom         string          `json:"nom"`
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
	PrixVente   decimal.Decimal `json:"prix_vente"`   // prix de vente unitaire
	SeuilAlerte int64           `json:"seuil_alerte"` // quantité minimale avant alerte de réapprovisionnement
}
