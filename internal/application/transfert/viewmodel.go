// Package transfert porte le view-model du transfert de stock: chargement
// des données de référence, sélection en cascade produit → stock source →
// stock destination, validation locale puis envoi à l'API distante.
package transfert

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/eisf/gestion-web/internal/domain/entity"
	"github.com/eisf/gestion-web/internal/domain/gateway"
)

// Messages utilisateur. Le serveur reste l'autorité finale: la validation
// locale évite seulement un aller-retour réseau inutile.
const (
	MsgChampsObligatoires   = "Veuillez remplir tous les champs obligatoires (Produit, Source, Destination, Quantité)."
	MsgMemeStock            = "Le stock source et le stock de destination ne peuvent pas être les mêmes."
	MsgQuantiteNulle        = "La quantité de transfert doit être supérieure à zéro."
	MsgQuantiteInvalide     = "La quantité doit être un nombre entier valide."
	MsgEnvoiEnCours         = "Un transfert est déjà en cours d'envoi."
	MsgSucces               = "Transfert de stock enregistré avec succès !"
	MsgErreurEnregistrement = "Erreur lors de l'enregistrement du transfert."
	MsgErreurInconnue       = "Une erreur inconnue est survenue."
)

// Selection est l'état transitoire du formulaire. Zéro vaut « aucune
// sélection » pour les identifiants; la quantité reste la saisie brute et
// n'est interprétée qu'à l'envoi.
type Selection struct {
	ProduitID     int64
	SourceID      int64
	DestinationID int64
	Quantite      string
	Description   string
}

// Vide répond vrai si aucun champ n'est renseigné.
func (s Selection) Vide() bool {
	return s == Selection{}
}

// Etat est un instantané de l'état du view-model destiné au rendu. Les
// tranches sont partagées en lecture seule: le rendu ne les modifie pas.
type Etat struct {
	Produits     []entity.Produit
	Lieux        []entity.LieuStockage
	Stocks       []entity.Stock
	Transferts   []entity.Transfert
	Sources      []entity.Stock
	Destinations []entity.Stock
	Selection    Selection
	Pret         bool
	Chargement   bool
	Erreur       string
	Succes       string
}

// ViewModel orchestre la page des transferts de stock. Un seul écrivain
// logique (l'opérateur), mais les handlers Fiber sont concurrents: tout
// l'état est protégé par le mutex. Au plus un envoi en vol à la fois.
type ViewModel struct {
	gw  gateway.Transferts
	log zerolog.Logger

	mu         sync.Mutex
	produits   []entity.Produit
	lieux      []entity.LieuStockage
	stocks     []entity.Stock
	transferts []entity.Transfert
	selection  Selection
	pret       bool
	chargement bool
	erreur     string
	succes     string
	chargeSeq  uint64
	envoi      bool
	ferme      bool
}

// NewViewModel construit le view-model.
func NewViewModel(gw gateway.Transferts, log zerolog.Logger) *ViewModel {
	return &ViewModel{
		gw:  gw,
		log: log.With().Str("composant", "transfert").Logger(),
	}
}

// Load charge les quatre collections de référence. Les requêtes partent en
// parallèle mais le lot est un tout: si l'une échoue, rien n'est appliqué
// et l'état reste « non prêt ». En plein succès les quatre collections sont
// remplacées d'un bloc sous le verrou. Un chargement dépassé par un plus
// récent, ou terminé après Close, jette son résultat (garde anti-péremption).
func (vm *ViewModel) Load(ctx context.Context) {
	vm.mu.Lock()
	if vm.ferme {
		vm.mu.Unlock()
		return
	}
	vm.chargeSeq++
	seq := vm.chargeSeq
	vm.chargement = true
	vm.erreur = ""
	vm.mu.Unlock()

	var (
		produits   []entity.Produit
		lieux      []entity.LieuStockage
		stocks     []entity.Stock
		transferts []entity.Transfert
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		produits, err = vm.gw.ListProduits(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		lieux, err = vm.gw.ListLieuxStockage(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stocks, err = vm.gw.ListStocks(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		transferts, err = vm.gw.ListTransferts(gctx)
		return err
	})
	err := g.Wait()

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.ferme || seq != vm.chargeSeq {
		// résultat périmé: un chargement plus récent pilote l'état
		return
	}
	vm.chargement = false
	if err != nil {
		vm.pret = false
		vm.erreur = fmt.Sprintf("Impossible de charger les données : %v", err)
		vm.log.Error().Err(err).Msg("échec du chargement des données de référence")
		return
	}
	vm.produits = produits
	vm.lieux = lieux
	vm.stocks = stocks
	vm.transferts = transferts
	vm.pret = true
}

// SelectProduit fixe le produit sélectionné et remet systématiquement la
// source et la destination à zéro, même si l'identifiant ne change pas: les
// candidats sont délimités par produit, la sélection précédente n'a plus de
// sens.
func (vm *ViewModel) SelectProduit(id int64) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.selection.ProduitID = id
	vm.selection.SourceID = 0
	vm.selection.DestinationID = 0
}

// SelectSource fixe le stock source sélectionné.
func (vm *ViewModel) SelectSource(id int64) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.selection.SourceID = id
}

// SelectDestination fixe le stock destination sélectionné.
func (vm *ViewModel) SelectDestination(id int64) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.selection.DestinationID = id
}

// SetQuantite conserve la saisie brute de quantité.
func (vm *ViewModel) SetQuantite(q string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.selection.Quantite = q
}

// SetDescription conserve la description optionnelle.
func (vm *ViewModel) SetDescription(d string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.selection.Description = d
}

// SourceCandidates renvoie les stocks du produit sélectionné, dans l'ordre
// de la collection chargée. Vide si aucun produit n'est sélectionné.
func (vm *ViewModel) SourceCandidates() []entity.Stock {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return deriveSources(vm.stocks, vm.selection.ProduitID)
}

// DestinationCandidates renvoie les stocks du produit sélectionné autres
// que la source. Sans produit sélectionné la liste est vide, même si une
// source traîne dans l'état: politique volontairement défensive.
func (vm *ViewModel) DestinationCandidates() []entity.Stock {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return deriveDestinations(vm.stocks, vm.selection.ProduitID, vm.selection.SourceID)
}

func deriveSources(stocks []entity.Stock, produitID int64) []entity.Stock {
	if produitID == 0 {
		return nil
	}
	var out []entity.Stock
	for _, s := range stocks {
		if s.Produit.ID == produitID {
			out = append(out, s)
		}
	}
	return out
}

func deriveDestinations(stocks []entity.Stock, produitID, sourceID int64) []entity.Stock {
	if produitID == 0 {
		return nil
	}
	var out []entity.Stock
	for _, s := range stocks {
		if s.Produit.ID == produitID && s.ID != sourceID {
			out = append(out, s)
		}
	}
	return out
}

// Submit valide la sélection courante puis poste le transfert. Les
// contrôles se font dans l'ordre, le premier échec arrête tout sans appel
// réseau. En cas de succès le formulaire est vidé et les données de
// référence rechargées; en cas d'échec les champs restent en place pour
// correction.
func (vm *ViewModel) Submit(ctx context.Context) {
	vm.mu.Lock()
	if vm.envoi {
		// au plus un envoi en vol: le double-clic est refusé sans appel réseau
		vm.erreur = MsgEnvoiEnCours
		vm.mu.Unlock()
		return
	}
	vm.erreur = ""
	vm.succes = ""
	sel := vm.selection

	if sel.ProduitID == 0 || sel.SourceID == 0 || sel.DestinationID == 0 || sel.Quantite == "" {
		vm.erreur = MsgChampsObligatoires
		vm.mu.Unlock()
		return
	}
	if sel.SourceID == sel.DestinationID {
		vm.erreur = MsgMemeStock
		vm.mu.Unlock()
		return
	}
	quantite, err := strconv.ParseInt(strings.TrimSpace(sel.Quantite), 10, 64)
	if err != nil {
		vm.erreur = MsgQuantiteInvalide
		vm.mu.Unlock()
		return
	}
	if quantite <= 0 {
		vm.erreur = MsgQuantiteNulle
		vm.mu.Unlock()
		return
	}
	// Pré-contrôle de disponibilité sur la copie locale; si le stock source
	// n'est pas connu localement, on laisse le serveur trancher.
	if source, ok := trouverStock(vm.stocks, sel.SourceID); ok && quantite > source.Quantite {
		vm.erreur = fmt.Sprintf("Quantité insuffisante dans le stock source. Disponible: %d.", source.Quantite)
		vm.mu.Unlock()
		return
	}
	vm.envoi = true
	vm.mu.Unlock()

	_, err = vm.gw.CreateTransfert(ctx, entity.NouveauTransfert{
		ProduitID:          sel.ProduitID,
		StockSourceID:      sel.SourceID,
		StockDestinationID: sel.DestinationID,
		Quantite:           quantite,
		Description:        sel.Description,
	})

	vm.mu.Lock()
	vm.envoi = false
	if err != nil {
		var apiErr *gateway.ErreurAPI
		switch {
		case errors.As(err, &apiErr):
			if msg := apiErr.Message(); msg != "" {
				vm.erreur = msg
			} else {
				vm.erreur = MsgErreurEnregistrement
			}
		default:
			vm.erreur = MsgErreurInconnue
		}
		vm.log.Warn().Err(err).Msg("échec de l'enregistrement du transfert")
		vm.mu.Unlock()
		return
	}
	vm.succes = MsgSucces
	vm.erreur = "" // efface un éventuel refus d'envoi concurrent
	vm.selection = Selection{}
	vm.mu.Unlock()

	// Resynchronise quantités et historique avec l'état serveur.
	vm.Load(ctx)
}

// Etat renvoie un instantané cohérent pour le rendu.
func (vm *ViewModel) Etat() Etat {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return Etat{
		Produits:     vm.produits,
		Lieux:        vm.lieux,
		Stocks:       vm.stocks,
		Transferts:   vm.transferts,
		Sources:      deriveSources(vm.stocks, vm.selection.ProduitID),
		Destinations: deriveDestinations(vm.stocks, vm.selection.ProduitID, vm.selection.SourceID),
		Selection:    vm.selection,
		Pret:         vm.pret,
		Chargement:   vm.chargement,
		Erreur:       vm.erreur,
		Succes:       vm.succes,
	}
}

// Pret répond vrai quand les quatre collections sont chargées.
func (vm *ViewModel) Pret() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.pret
}

// Chargement répond vrai pendant un chargement.
func (vm *ViewModel) Chargement() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.chargement
}

// Close marque le view-model détruit: les chargements encore en vol seront
// jetés au lieu d'être appliqués.
func (vm *ViewModel) Close() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.ferme = true
}

func trouverStock(stocks []entity.Stock, id int64) (entity.Stock, bool) {
	for _, s := range stocks {
		if s.ID == id {
			return s, true
		}
	}
	return entity.Stock{}, false
}
