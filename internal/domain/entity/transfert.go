package entity

import "time"

// Transfert représente un transfert de stock confirmé par le serveur.
// Créé uniquement par l'API distante en réponse à un NouveauTransfert;
// jamais modifié ni supprimé par le front-end.
type Transfert struct {
	ID               int64     `json:"id"`
	Produit          Produit   `json:"produit"`
	StockSource      Stock     `json:"stock_source"`
	StockDestination Stock     `json:"stock_destination"`
	Quantite         int64     `json:"quantite"`
	DateTransfert    time.Time `json:"date_transfert"`
	Description      string    `json:"description"`
}

// NouveauTransfert est le corps de la requête de création d'un transfert.
// Description est optionnelle mais toujours envoyée (chaîne vide incluse).
type NouveauTransfert struct {
	ProduitID          int64  `json:"produit_id"`
	StockSourceID      int64  `json:"stock_source_id"`
	StockDestinationID int64  `json:"stock_destination_id"`
	Quantite           int64  `json:"quantite"`
	Description        string `json:"description"`
}
