// Package gateway définit les ports de sortie vers l'API REST distante,
// seule source de vérité des données. L'implémentation concrète est HTTP
// (internal/infrastructure/restapi); pour les tests on injecte un mock.
package gateway

import (
	"context"

	"github.com/eisf/gestion-web/internal/domain/entity"
)

// Reference expose les quatre collections de référence chargées à
// l'activation des vues (et rechargées en bloc après chaque transfert).
type Reference interface {
	ListProduits(ctx context.Context) ([]entity.Produit, error)
	ListLieuxStockage(ctx context.Context) ([]entity.LieuStockage, error)
	ListStocks(ctx context.Context) ([]entity.Stock, error)
	ListTransferts(ctx context.Context) ([]entity.Transfert, error)
}

// Transferts regroupe la lecture de référence et l'écriture d'un transfert.
type Transferts interface {
	Reference
	CreateTransfert(ctx context.Context, in entity.NouveauTransfert) (*entity.Transfert, error)
}

// Clients expose la collection des clients.
type Clients interface {
	ListClients(ctx context.Context) ([]entity.Client, error)
	CreateClient(ctx context.Context, in entity.NouveauClient) (*entity.Client, error)
}

// Factures expose les factures et leurs lignes. La création d'une vente
// poste d'abord la facture puis chaque ligne, comme l'interface de vente
// d'origine.
type Factures interface {
	ListFactures(ctx context.Context) ([]entity.Facture, error)
	GetFacture(ctx context.Context, id int64) (*entity.Facture, error)
	CreateFacture(ctx context.Context, in entity.NouvelleFacture) (*entity.Facture, error)
	CreateLigneFacture(ctx context.Context, in entity.NouvelleLigneFacture) (*entity.LigneFacture, error)
}
