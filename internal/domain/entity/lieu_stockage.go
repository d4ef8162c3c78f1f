package entity

// LieuStockage représente un lieu physique ou logique où l'inventaire est
// conservé. Donnée de référence en lecture seule.
type LieuStockage struct {
	ID          int64  `json:"id"`
	Nom         string `json:"nom"`
	Description string `json:"description"`
}
