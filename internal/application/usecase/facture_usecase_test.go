package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eisf/gestion-web/internal/application/dto"
	"github.com/eisf/gestion-web/internal/application/usecase"
	"github.com/eisf/gestion-web/internal/domain"
	"github.com/eisf/gestion-web/internal/domain/entity"
)

// fauxFactures enregistre les appels pour vérifier la séquence de création.
type fauxFactures struct {
	prochainID     int64
	facturesCreees []entity.NouvelleFacture
	lignesCreees   []entity.NouvelleLigneFacture
	errLigne       error
	relectures     []int64
}

func (f *fauxFactures) ListFactures(context.Context) ([]entity.Facture, error) { return nil, nil }

func (f *fauxFactures) GetFacture(_ context.Context, id int64) (*entity.Facture, error) {
	f.relectures = append(f.relectures, id)
	return &entity.Facture{ID: id, MontantTotal: decimal.NewFromInt(100)}, nil
}

func (f *fauxFactures) CreateFacture(_ context.Context, in entity.NouvelleFacture) (*entity.Facture, error) {
	f.facturesCreees = append(f.facturesCreees, in)
	return &entity.Facture{ID: f.prochainID}, nil
}

func (f *fauxFactures) CreateLigneFacture(_ context.Context, in entity.NouvelleLigneFacture) (*entity.LigneFacture, error) {
	if f.errLigne != nil {
		return nil, f.errLigne
	}
	f.lignesCreees = append(f.lignesCreees, in)
	return &entity.LigneFacture{ID: int64(len(f.lignesCreees))}, nil
}

func venteValide() dto.VenteRequest {
	return dto.VenteRequest{
		ClientID: 9,
		Lignes: []dto.LigneVente{
			{ProduitID: 1, Quantite: 2, PrixUnitaire: decimal.NewFromFloat(12.50)},
			{ProduitID: 2, Quantite: 1, PrixUnitaire: decimal.NewFromInt(40)},
		},
	}
}

// Séquence nominale: facture d'abord, puis une requête par ligne rattachée
// à l'identifiant créé, puis relecture pour l'affichage.
func TestCreerVente_Sequence(t *testing.T) {
	gw := &fauxFactures{prochainID: 55}
	uc := usecase.NewFactureUseCase(gw)

	facture, err := uc.CreerVente(context.Background(), venteValide())
	require.NoError(t, err)

	require.Len(t, gw.facturesCreees, 1)
	assert.Equal(t, int64(9), gw.facturesCreees[0].ClientID)

	require.Len(t, gw.lignesCreees, 2)
	for _, l := range gw.lignesCreees {
		assert.Equal(t, int64(55), l.FactureID, "chaque ligne est rattachée à la facture créée")
	}
	assert.Equal(t, int64(1), gw.lignesCreees[0].ProduitID)
	assert.Equal(t, int64(2), gw.lignesCreees[0].Quantite)

	assert.Equal(t, []int64{55}, gw.relectures, "la facture est relue après création des lignes")
	assert.Equal(t, int64(55), facture.ID)
}

func TestCreerVente_ClientManquant(t *testing.T) {
	gw := &fauxFactures{}
	uc := usecase.NewFactureUseCase(gw)

	in := venteValide()
	in.ClientID = 0
	_, err := uc.CreerVente(context.Background(), in)

	require.ErrorIs(t, err, domain.ErrEntreeInvalide)
	assert.Contains(t, err.Error(), usecase.MsgClientRequis)
	assert.Empty(t, gw.facturesCreees, "aucune requête réseau sur une saisie invalide")
}

func TestCreerVente_LignesInvalides(t *testing.T) {
	cas := map[string]dto.VenteRequest{
		"aucune ligne": {ClientID: 9},
		"quantité nulle": {ClientID: 9, Lignes: []dto.LigneVente{
			{ProduitID: 1, Quantite: 0, PrixUnitaire: decimal.NewFromInt(10)},
		}},
		"produit manquant": {ClientID: 9, Lignes: []dto.LigneVente{
			{Quantite: 1, PrixUnitaire: decimal.NewFromInt(10)},
		}},
		"prix négatif": {ClientID: 9, Lignes: []dto.LigneVente{
			{ProduitID: 1, Quantite: 1, PrixUnitaire: decimal.NewFromInt(-5)},
		}},
	}

	for nom, in := range cas {
		t.Run(nom, func(t *testing.T) {
			gw := &fauxFactures{}
			uc := usecase.NewFactureUseCase(gw)

			_, err := uc.CreerVente(context.Background(), in)
			require.ErrorIs(t, err, domain.ErrEntreeInvalide)
			assert.Contains(t, err.Error(), usecase.MsgLignesInvalides)
			assert.Empty(t, gw.facturesCreees)
		})
	}
}

// Une ligne refusée après la création de la facture: l'erreur nomme la
// facture orpheline, pas de rollback multi-requêtes possible côté client.
func TestCreerVente_LigneRefusee(t *testing.T) {
	gw := &fauxFactures{prochainID: 55, errLigne: errors.New("refus serveur")}
	uc := usecase.NewFactureUseCase(gw)

	_, err := uc.CreerVente(context.Background(), venteValide())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "facture 55")
	assert.Empty(t, gw.relectures, "pas de relecture après un échec")
}
