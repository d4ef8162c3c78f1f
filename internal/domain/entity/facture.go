package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Facture représente une facture client avec ses lignes embarquées.
// Le montant total est calculé côté serveur à partir des lignes.
type Facture struct {
	ID              int64           `json:"id"`
	ClientDetail    Client          `json:"client_detail"`
	DateFacturation time.Time       `json:"date_facturation"`
	MontantTotal    decimal.Decimal `json:"montant_total"`
	EstPayee        bool            `json:"est_payee"`
	DateEcheance    Date            `json:"date_echeance"` // date limite de paiement
	Lignes          []LigneFacture  `json:"lignes"`
}

// LigneFacture représente une ligne de facture (produit, quantité, prix
// unitaire négocié au moment de la vente).
type LigneFacture struct {
	ID                  int64           `json:"id"`
	ProduitDetail       Produit         `json:"produit_detail"`
	Quantite            int64           `json:"quantite"`
	PrixUnitaireNegocie decimal.Decimal `json:"prix_unitaire_negocie"`
	TotalLigne          decimal.Decimal `json:"total_ligne"`
}

// NouvelleFacture est le corps de la requête de création d'une facture.
// Les lignes sont créées séparément, une requête par ligne.
type NouvelleFacture struct {
	ClientID int64 `json:"client"`
}

// NouvelleLigneFacture est le corps de la requête de création d'une ligne.
type NouvelleLigneFacture struct {
	FactureID           int64           `json:"facture"`
	ProduitID           int64           `json:"produit"`
	Quantite            int64           `json:"quantite"`
	PrixUnitaireNegocie decimal.Decimal `json:"prix_unitaire_negocie"`
}
