package usecase

import (
	"context"
	"fmt"

	"github.com/eisf/gestion-web/internal/application/dto"
	"github.com/eisf/gestion-web/internal/domain"
	"github.com/eisf/gestion-web/internal/domain/entity"
	"github.com/eisf/gestion-web/internal/domain/gateway"
)

// Messages utilisateur du formulaire de vente.
const (
	MsgClientRequis    = "Veuillez sélectionner un client."
	MsgLignesInvalides = "Données de produit invalides. Veuillez vérifier les quantités et les prix."
)

// FactureUseCase prépare la page des factures et enregistre les ventes.
type FactureUseCase struct {
	gw gateway.Factures
}

// NewFactureUseCase construit le cas d'usage.
func NewFactureUseCase(gw gateway.Factures) *FactureUseCase {
	return &FactureUseCase{gw: gw}
}

// List renvoie les factures avec leurs lignes.
func (uc *FactureUseCase) List(ctx context.Context) ([]entity.Facture, error) {
	return uc.gw.ListFactures(ctx)
}

// Get renvoie une facture par identifiant.
func (uc *FactureUseCase) Get(ctx context.Context, id int64) (*entity.Facture, error) {
	return uc.gw.GetFacture(ctx, id)
}

// CreerVente enregistre une vente: création de la facture puis de chaque
// ligne, une requête par ligne comme le fait l'API. Les montants sont
// recalculés côté serveur; la facture est relue en fin de course pour
// l'affichage. Pas de garantie transactionnelle multi-requêtes: en cas
// d'échec au milieu, la facture partielle reste visible côté serveur.
func (uc *FactureUseCase) CreerVente(ctx context.Context, in dto.VenteRequest) (*entity.Facture, error) {
	if in.ClientID == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEntreeInvalide, MsgClientRequis)
	}
	if len(in.Lignes) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEntreeInvalide, MsgLignesInvalides)
	}
	for _, l := range in.Lignes {
		if l.ProduitID == 0 || l.Quantite <= 0 || l.PrixUnitaire.IsNegative() {
			return nil, fmt.Errorf("%w: %s", domain.ErrEntreeInvalide, MsgLignesInvalides)
		}
	}

	facture, err := uc.gw.CreateFacture(ctx, entity.NouvelleFacture{ClientID: in.ClientID})
	if err != nil {
		return nil, err
	}
	for _, l := range in.Lignes {
		_, err := uc.gw.CreateLigneFacture(ctx, entity.NouvelleLigneFacture{
			FactureID:           facture.ID,
			ProduitID:           l.ProduitID,
			Quantite:            l.Quantite,
			PrixUnitaireNegocie: l.PrixUnitaire,
		})
		if err != nil {
			return nil, fmt.Errorf("facture %d créée mais ligne refusée: %w", facture.ID, err)
		}
	}
	return uc.gw.GetFacture(ctx, facture.ID)
}
