package transfert

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eisf/gestion-web/internal/domain/entity"
	"github.com/eisf/gestion-web/internal/domain/gateway"
)

// ──────────────────────────────────────────────────────────────────────────────
// Gateway factice
// ──────────────────────────────────────────────────────────────────────────────

// fauxGateway implémente gateway.Transferts en mémoire, avec compteurs
// d'appels et erreurs injectables par collection.
type fauxGateway struct {
	mu sync.Mutex

	produits   []entity.Produit
	lieux      []entity.LieuStockage
	stocks     []entity.Stock
	transferts []entity.Transfert

	errProduits   error
	errLieux      error
	errStocks     error
	errTransferts error
	errCreate     error

	appelsProduits   int
	appelsLieux      int
	appelsStocks     int
	appelsTransferts int
	crees            []entity.NouveauTransfert

	// Canaux de blocage optionnels, à poser avant le premier appel: l'appel
	// visé signale son entrée puis attend la reprise. Sert aux tests des
	// gardes de concurrence.
	entreeProduits    chan struct{} // bloque le tout premier ListProduits
	reprendreProduits chan struct{}
	entreeCreate      chan struct{} // bloque chaque CreateTransfert
	reprendreCreate   chan struct{}
}

func (f *fauxGateway) ListProduits(context.Context) ([]entity.Produit, error) {
	f.mu.Lock()
	f.appelsProduits++
	premier := f.appelsProduits == 1
	produits, err := f.produits, f.errProduits
	f.mu.Unlock()
	if premier && f.entreeProduits != nil {
		f.entreeProduits <- struct{}{}
		<-f.reprendreProduits
	}
	return produits, err
}

func (f *fauxGateway) ListLieuxStockage(context.Context) ([]entity.LieuStockage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appelsLieux++
	return f.lieux, f.errLieux
}

func (f *fauxGateway) ListStocks(context.Context) ([]entity.Stock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appelsStocks++
	return f.stocks, f.errStocks
}

func (f *fauxGateway) ListTransferts(context.Context) ([]entity.Transfert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appelsTransferts++
	return f.transferts, f.errTransferts
}

func (f *fauxGateway) CreateTransfert(_ context.Context, in entity.NouveauTransfert) (*entity.Transfert, error) {
	if f.entreeCreate != nil {
		f.entreeCreate <- struct{}{}
		<-f.reprendreCreate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errCreate != nil {
		return nil, f.errCreate
	}
	f.crees = append(f.crees, in)
	return &entity.Transfert{ID: int64(len(f.crees)), Quantite: in.Quantite}, nil
}

// jeuDeDonnees: produit P1 avec un stock de 5 au dépôt et de 0 en boutique,
// produit P2 avec un stock de 3 au dépôt.
func jeuDeDonnees() *fauxGateway {
	p1 := entity.Produit{ID: 1, Nom: "Clavier", SKU: "CLV-01"}
	p2 := entity.Produit{ID: 2, Nom: "Souris", SKU: "SRS-01"}
	depot := entity.LieuStockage{ID: 10, Nom: "Dépôt"}
	boutique := entity.LieuStockage{ID: 11, Nom: "Boutique"}
	return &fauxGateway{
		produits: []entity.Produit{p1, p2},
		lieux:    []entity.LieuStockage{depot, boutique},
		stocks: []entity.Stock{
			{ID: 100, Produit: p1, LieuStockage: depot, Quantite: 5},
			{ID: 101, Produit: p1, LieuStockage: boutique, Quantite: 0},
			{ID: 102, Produit: p2, LieuStockage: depot, Quantite: 3},
		},
	}
}

func nouveauVM(gw gateway.Transferts) *ViewModel {
	return NewViewModel(gw, zerolog.Nop())
}

func vmCharge(t *testing.T, gw *fauxGateway) *ViewModel {
	t.Helper()
	vm := nouveauVM(gw)
	vm.Load(context.Background())
	require.True(t, vm.Pret(), "le chargement du jeu de données doit réussir")
	return vm
}

// ──────────────────────────────────────────────────────────────────────────────
// Chargement des données de référence
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_SuccesCompletRemplaceToutEtMarquePret(t *testing.T) {
	gw := jeuDeDonnees()
	vm := nouveauVM(gw)

	vm.Load(context.Background())

	etat := vm.Etat()
	assert.True(t, etat.Pret)
	assert.False(t, etat.Chargement, "le drapeau de chargement doit retomber")
	assert.Empty(t, etat.Erreur)
	assert.Len(t, etat.Produits, 2)
	assert.Len(t, etat.Lieux, 2)
	assert.Len(t, etat.Stocks, 3)
}

func TestLoad_EchecDUneSeuleCollectionAnnuleToutLeLot(t *testing.T) {
	gw := jeuDeDonnees()
	gw.errStocks = errors.New("stocks: restapi: appel HTTP: connexion refusée")
	vm := nouveauVM(gw)

	vm.Load(context.Background())

	etat := vm.Etat()
	assert.False(t, etat.Pret, "un échec partiel invalide le lot entier")
	assert.False(t, etat.Chargement, "le nettoyage du drapeau doit avoir lieu même en échec")
	assert.Contains(t, etat.Erreur, "Impossible de charger les données")
	assert.Contains(t, etat.Erreur, "stocks")
	// Rien n'est appliqué, même pour les collections qui avaient réussi.
	assert.Empty(t, etat.Produits)
	assert.Empty(t, etat.Stocks)
}

func TestLoad_EffaceLErreurPrecedente(t *testing.T) {
	gw := jeuDeDonnees()
	gw.errProduits = errors.New("produits: panne")
	vm := nouveauVM(gw)
	vm.Load(context.Background())
	require.NotEmpty(t, vm.Etat().Erreur)

	gw.mu.Lock()
	gw.errProduits = nil
	gw.mu.Unlock()
	vm.Load(context.Background())

	etat := vm.Etat()
	assert.True(t, etat.Pret)
	assert.Empty(t, etat.Erreur, "une nouvelle tentative repart d'une erreur vide")
}

func TestLoad_ApresCloseEstJete(t *testing.T) {
	gw := jeuDeDonnees()
	vm := nouveauVM(gw)
	vm.Close()

	vm.Load(context.Background())

	assert.False(t, vm.Pret(), "un view-model fermé n'applique plus rien")
}

// Un chargement dépassé par un plus récent jette son résultat: le catalogue
// capturé avant la mise à jour ne doit pas écraser celui du chargement qui
// a pris la main.
func TestLoad_DepasseParUnPlusRecentEstJete(t *testing.T) {
	gw := jeuDeDonnees()
	gw.entreeProduits = make(chan struct{})
	gw.reprendreProduits = make(chan struct{})
	vm := nouveauVM(gw)

	fini := make(chan struct{})
	go func() {
		vm.Load(context.Background())
		close(fini)
	}()
	// le premier chargement est parti avec l'ancien catalogue (2 produits)
	// et attend maintenant la réponse
	<-gw.entreeProduits

	gw.mu.Lock()
	gw.produits = append(gw.produits, entity.Produit{ID: 3, Nom: "Écran", SKU: "ECR-01"})
	gw.mu.Unlock()

	// chargement plus récent: il prend la main et se termine le premier
	vm.Load(context.Background())
	require.True(t, vm.Pret())
	require.Len(t, vm.Etat().Produits, 3)

	close(gw.reprendreProduits)
	<-fini

	etat := vm.Etat()
	assert.Len(t, etat.Produits, 3, "le résultat périmé ne doit pas écraser le plus récent")
	assert.True(t, etat.Pret)
	assert.False(t, etat.Chargement)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dérivation des candidats (propriétés 1 à 3)
// ──────────────────────────────────────────────────────────────────────────────

func TestSourceCandidates_FiltreParProduitEtConserveLOrdre(t *testing.T) {
	vm := vmCharge(t, jeuDeDonnees())

	vm.SelectProduit(1)
	sources := vm.SourceCandidates()

	require.Len(t, sources, 2)
	assert.Equal(t, int64(100), sources[0].ID, "l'ordre d'insertion de la collection est conservé")
	assert.Equal(t, int64(101), sources[1].ID)
	for _, s := range sources {
		assert.Equal(t, int64(1), s.Produit.ID)
	}
}

func TestSourceCandidates_VideSansProduitSelectionne(t *testing.T) {
	vm := vmCharge(t, jeuDeDonnees())
	assert.Empty(t, vm.SourceCandidates())
}

func TestDestinationCandidates_VideSansProduitMemeAvecSource(t *testing.T) {
	vm := vmCharge(t, jeuDeDonnees())

	// Une source orpheline ne suffit pas: sans produit, pas de destinations.
	vm.SelectSource(100)
	assert.Empty(t, vm.DestinationCandidates())
}

func TestDestinationCandidates_ExclutLaSourceChoisie(t *testing.T) {
	vm := vmCharge(t, jeuDeDonnees())

	vm.SelectProduit(1)
	vm.SelectSource(100)
	dests := vm.DestinationCandidates()

	require.Len(t, dests, 1)
	assert.Equal(t, int64(101), dests[0].ID)
	assert.Equal(t, int64(1), dests[0].Produit.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sélection en cascade (propriété 12)
// ──────────────────────────────────────────────────────────────────────────────

func TestSelectProduit_RemetToujoursSourceEtDestination(t *testing.T) {
	vm := vmCharge(t, jeuDeDonnees())
	vm.SelectProduit(1)
	vm.SelectSource(100)
	vm.SelectDestination(101)

	// Même identifiant de produit: la remise à zéro a quand même lieu.
	vm.SelectProduit(1)

	sel := vm.Etat().Selection
	assert.Equal(t, int64(1), sel.ProduitID)
	assert.Zero(t, sel.SourceID)
	assert.Zero(t, sel.DestinationID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validation locale (propriétés 4 à 7, 9)
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_ChampManquantRefuseSansAppelReseau(t *testing.T) {
	cas := []struct {
		nom     string
		prepare func(vm *ViewModel)
	}{
		{"sans produit", func(vm *ViewModel) {
			vm.SelectSource(100)
			vm.SelectDestination(101)
			vm.SetQuantite("2")
		}},
		{"sans source", func(vm *ViewModel) {
			vm.SelectProduit(1)
			vm.SelectDestination(101)
			vm.SetQuantite("2")
		}},
		{"sans destination", func(vm *ViewModel) {
			vm.SelectProduit(1)
			vm.SelectSource(100)
			vm.SetQuantite("2")
		}},
		{"sans quantité", func(vm *ViewModel) {
			vm.SelectProduit(1)
			vm.SelectSource(100)
			vm.SelectDestination(101)
		}},
	}
	for _, c := range cas {
		t.Run(c.nom, func(t *testing.T) {
			gw := jeuDeDonnees()
			vm := vmCharge(t, gw)
			c.prepare(vm)

			vm.Submit(context.Background())

			assert.Equal(t, MsgChampsObligatoires, vm.Etat().Erreur)
			assert.Empty(t, gw.crees, "aucun appel réseau ne doit partir")
		})
	}
}

func TestSubmit_SourceEgaleDestinationRefusee(t *testing.T) {
	gw := jeuDeDonnees()
	vm := vmCharge(t, gw)
	vm.SelectProduit(1)
	vm.SelectSource(100)
	vm.SelectDestination(100)
	vm.SetQuantite("2")

	vm.Submit(context.Background())

	assert.Equal(t, MsgMemeStock, vm.Etat().Erreur)
	assert.Empty(t, gw.crees)
}

func TestSubmit_QuantiteNulleOuNegativeRefusee(t *testing.T) {
	for _, q := range []string{"0", "-3"} {
		t.Run("quantite "+q, func(t *testing.T) {
			gw := jeuDeDonnees()
			vm := vmCharge(t, gw)
			vm.SelectProduit(1)
			vm.SelectSource(100)
			vm.SelectDestination(101)
			vm.SetQuantite(q)

			vm.Submit(context.Background())

			assert.Equal(t, MsgQuantiteNulle, vm.Etat().Erreur)
			assert.Empty(t, gw.crees)
		})
	}
}

func TestSubmit_QuantiteNonEntiereRefusee(t *testing.T) {
	gw := jeuDeDonnees()
	vm := vmCharge(t, gw)
	vm.SelectProduit(1)
	vm.SelectSource(100)
	vm.SelectDestination(101)
	vm.SetQuantite("deux")

	vm.Submit(context.Background())

	assert.Equal(t, MsgQuantiteInvalide, vm.Etat().Erreur)
	assert.Empty(t, gw.crees)
}

func TestSubmit_QuantiteSuperieureAuDisponibleRefusee(t *testing.T) {
	gw := jeuDeDonnees()
	vm := vmCharge(t, gw)
	vm.SelectProduit(1)
	vm.SelectSource(100) // 5 disponibles
	vm.SelectDestination(101)
	vm.SetQuantite("6")

	vm.Submit(context.Background())

	assert.Contains(t, vm.Etat().Erreur, "Quantité insuffisante")
	assert.Contains(t, vm.Etat().Erreur, "5", "le disponible doit figurer dans le message")
	assert.Empty(t, gw.crees)
}

func TestSubmit_SourceInconnueLocalementLaisseLeServeurTrancher(t *testing.T) {
	gw := jeuDeDonnees()
	vm := vmCharge(t, gw)
	vm.SelectProduit(1)
	vm.SelectSource(999) // absent de la copie locale
	vm.SelectDestination(101)
	vm.SetQuantite("50")

	vm.Submit(context.Background())

	// Le pré-contrôle est sauté, l'appel part et le serveur répond.
	require.Len(t, gw.crees, 1)
	assert.Equal(t, int64(999), gw.crees[0].StockSourceID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Envoi (propriétés 8, 10, 11)
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_CorpsDeRequeteExact(t *testing.T) {
	gw := jeuDeDonnees()
	vm := vmCharge(t, gw)
	vm.SelectProduit(1)
	vm.SelectSource(100) // quantité 5
	vm.SelectDestination(101)
	vm.SetQuantite("5")

	vm.Submit(context.Background())

	require.Len(t, gw.crees, 1)
	assert.Equal(t, entity.NouveauTransfert{
		ProduitID:          1,
		StockSourceID:      100,
		StockDestinationID: 101,
		Quantite:           5,
		Description:        "",
	}, gw.crees[0])
	assert.Equal(t, MsgSucces, vm.Etat().Succes)
}

func TestSubmit_SuccesVideLeFormulaireEtRecharge(t *testing.T) {
	gw := jeuDeDonnees()
	vm := vmCharge(t, gw)
	avant := gw.appelsProduits
	vm.SelectProduit(1)
	vm.SelectSource(100)
	vm.SelectDestination(101)
	vm.SetQuantite("2")
	vm.SetDescription("réassort boutique")

	vm.Submit(context.Background())

	etat := vm.Etat()
	assert.True(t, etat.Selection.Vide(), "tous les champs transitoires sont remis à vide")
	assert.Equal(t, MsgSucces, etat.Succes)
	// Les quatre collections sont rechargées en bloc.
	assert.Equal(t, avant+1, gw.appelsProduits)
	assert.Equal(t, gw.appelsProduits, gw.appelsLieux)
	assert.Equal(t, gw.appelsProduits, gw.appelsStocks)
	assert.Equal(t, gw.appelsProduits, gw.appelsTransferts)
}

// Au plus un envoi en vol: pendant que le premier attend la réponse du
// gateway, un second Submit est refusé avec son message et sans appel
// réseau supplémentaire.
func TestSubmit_RefuseUnEnvoiPendantQuUnAutreEstEnVol(t *testing.T) {
	gw := jeuDeDonnees()
	gw.entreeCreate = make(chan struct{})
	gw.reprendreCreate = make(chan struct{})
	vm := vmCharge(t, gw)
	vm.SelectProduit(1)
	vm.SelectSource(100)
	vm.SelectDestination(101)
	vm.SetQuantite("2")

	fini := make(chan struct{})
	go func() {
		vm.Submit(context.Background())
		close(fini)
	}()
	// le premier envoi a atteint le gateway et attend la réponse
	<-gw.entreeCreate

	vm.Submit(context.Background())
	assert.Equal(t, MsgEnvoiEnCours, vm.Etat().Erreur, "le second envoi est refusé avec son message")

	close(gw.reprendreCreate)
	<-fini

	gw.mu.Lock()
	crees := len(gw.crees)
	gw.mu.Unlock()
	require.Equal(t, 1, crees, "un seul POST doit atteindre le gateway")

	etat := vm.Etat()
	assert.Equal(t, MsgSucces, etat.Succes, "le premier envoi aboutit normalement")
	assert.Empty(t, etat.Erreur, "le refus transitoire est effacé par le succès")
}

func TestSubmit_ErreurDeValidationServeurAfficheeTelleQuelle(t *testing.T) {
	gw := jeuDeDonnees()
	gw.errCreate = &gateway.ErreurAPI{
		StatusCode: 400,
		Fields:     map[string][]string{"quantite": {"Ensure this value is greater than 0."}},
	}
	vm := vmCharge(t, gw)
	vm.SelectProduit(1)
	vm.SelectSource(100)
	vm.SelectDestination(101)
	vm.SetQuantite("2")

	vm.Submit(context.Background())

	etat := vm.Etat()
	assert.Equal(t, "Ensure this value is greater than 0.", etat.Erreur)
	// Les champs restent en place pour correction.
	assert.Equal(t, int64(1), etat.Selection.ProduitID)
	assert.Equal(t, "2", etat.Selection.Quantite)
}

func TestSubmit_CorpsDErreurVideDonneLeMessageGenerique(t *testing.T) {
	gw := jeuDeDonnees()
	gw.errCreate = &gateway.ErreurAPI{StatusCode: 500}
	vm := vmCharge(t, gw)
	vm.SelectProduit(1)
	vm.SelectSource(100)
	vm.SelectDestination(101)
	vm.SetQuantite("2")

	vm.Submit(context.Background())

	assert.Equal(t, MsgErreurEnregistrement, vm.Etat().Erreur)
}

func TestSubmit_PanneReseauDonneErreurInconnue(t *testing.T) {
	gw := jeuDeDonnees()
	gw.errCreate = fmt.Errorf("restapi: appel HTTP: %w", errors.New("connexion refusée"))
	vm := vmCharge(t, gw)
	vm.SelectProduit(1)
	vm.SelectSource(100)
	vm.SelectDestination(101)
	vm.SetQuantite("2")

	vm.Submit(context.Background())

	assert.Equal(t, MsgErreurInconnue, vm.Etat().Erreur)
	assert.Equal(t, "2", vm.Etat().Selection.Quantite, "les champs sont conservés en échec")
}
