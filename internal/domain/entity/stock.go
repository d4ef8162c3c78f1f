package entity

// Stock représente la quantité d'un produit présente dans un lieu de
// stockage. Au plus un enregistrement par couple (produit, lieu), contrainte
// garantie côté serveur. C'est l'unité débitée/créditée par un transfert.
type Stock struct {
	ID           int64        `json:"id"`
	Produit      Produit      `json:"produit"`
	LieuStockage LieuStockage `json:"lieu_stockage"`
	Quantite     int64        `json:"quantite"`
}
