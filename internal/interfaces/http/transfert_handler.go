package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/eisf/gestion-web/internal/application/transfert"
)

// TransfertHandler porte la page des transferts de stock: rendu de l'état
// du view-model, mise à jour de la sélection en cascade et envoi.
type TransfertHandler struct {
	vm *transfert.ViewModel
}

// NewTransfertHandler construit le handler.
func NewTransfertHandler(vm *transfert.ViewModel) *TransfertHandler {
	return &TransfertHandler{vm: vm}
}

// Page affiche le formulaire de transfert et l'historique. Au premier
// passage (données pas encore prêtes et aucun chargement en vol), les
// collections de référence sont chargées avant le rendu.
func (h *TransfertHandler) Page(c *fiber.Ctx) error {
	if !h.vm.Pret() && !h.vm.Chargement() {
		h.vm.Load(c.UserContext())
	}
	return h.rendre(c)
}

// Recharger force un rechargement des données de référence.
func (h *TransfertHandler) Recharger(c *fiber.Ctx) error {
	h.vm.Load(c.UserContext())
	return c.Redirect("/transferts", fiber.StatusSeeOther)
}

// Selection applique les champs postés à la sélection puis réaffiche la
// page: c'est le POST déclenché au changement d'un des menus déroulants.
func (h *TransfertHandler) Selection(c *fiber.Ctx) error {
	h.appliquerFormulaire(c)
	return c.Redirect("/transferts", fiber.StatusSeeOther)
}

// Envoi applique les champs postés puis soumet le transfert. Le résultat
// (succès ou erreur de validation) est porté par l'état du view-model et
// rendu au retour sur la page.
func (h *TransfertHandler) Envoi(c *fiber.Ctx) error {
	h.appliquerFormulaire(c)
	h.vm.Submit(c.UserContext())
	return c.Redirect("/transferts", fiber.StatusSeeOther)
}

// appliquerFormulaire reporte les champs du formulaire dans le view-model.
// Un changement de produit repasse par SelectProduit, qui remet source et
// destination à zéro; sinon les trois sélections sont reportées telles
// quelles.
func (h *TransfertHandler) appliquerFormulaire(c *fiber.Ctx) {
	produitID := formInt64(c, "produit")
	if produitID != h.vm.Etat().Selection.ProduitID {
		h.vm.SelectProduit(produitID)
	} else {
		h.vm.SelectSource(formInt64(c, "source"))
		h.vm.SelectDestination(formInt64(c, "destination"))
	}
	h.vm.SetQuantite(c.FormValue("quantite"))
	h.vm.SetDescription(c.FormValue("description"))
}

func (h *TransfertHandler) rendre(c *fiber.Ctx) error {
	etat := h.vm.Etat()
	return c.Render("transferts", fiber.Map{
		"Titre":       "Transferts de stock",
		"Utilisateur": GetUtilisateur(c),
		"Etat":        etat,
	}, "layouts/main")
}

// formInt64 lit un champ de formulaire en entier; vide ou illisible vaut
// zéro, soit « aucune sélection ».
func formInt64(c *fiber.Ctx, nom string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(c.FormValue(nom)), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
