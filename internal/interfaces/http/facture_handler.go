package http

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/eisf/gestion-web/internal/application/dto"
	"github.com/eisf/gestion-web/internal/application/usecase"
	"github.com/eisf/gestion-web/internal/domain/gateway"
)

// FactureHandler porte les pages de facturation: liste des factures,
// formulaire de vente et téléchargement du PDF.
type FactureHandler struct {
	factureUC *usecase.FactureUseCase
	pdfUC     *usecase.FacturePDFUseCase
	clientUC  *usecase.ClientUseCase
	produitUC *usecase.ProduitUseCase
}

// NewFactureHandler construit le handler.
func NewFactureHandler(
	factureUC *usecase.FactureUseCase,
	pdfUC *usecase.FacturePDFUseCase,
	clientUC *usecase.ClientUseCase,
	produitUC *usecase.ProduitUseCase,
) *FactureHandler {
	return &FactureHandler{
		factureUC: factureUC,
		pdfUC:     pdfUC,
		clientUC:  clientUC,
		produitUC: produitUC,
	}
}

// Page affiche la liste des factures avec leurs lignes.
func (h *FactureHandler) Page(c *fiber.Ctx) error {
	data := fiber.Map{
		"Titre":       "Factures",
		"Utilisateur": GetUtilisateur(c),
	}
	if id := c.Query("succes"); id != "" {
		data["Succes"] = fmt.Sprintf("Vente enregistrée : facture n°%s créée.", id)
	}
	factures, err := h.factureUC.List(c.UserContext())
	if err != nil {
		data["Erreur"] = "Impossible de charger les factures."
		return c.Status(fiber.StatusBadGateway).Render("factures", data, "layouts/main")
	}
	data["Factures"] = factures
	return c.Render("factures", data, "layouts/main")
}

// VentePage affiche le formulaire de vente: choix du client puis lignes
// produit / quantité / prix unitaire négocié.
func (h *FactureHandler) VentePage(c *fiber.Ctx) error {
	return h.rendreVente(c, fiber.StatusOK, "")
}

// CreerVente enregistre la vente postée: facture puis lignes, via le cas
// d'usage. Succès → liste des factures avec le numéro créé; échec → le
// formulaire est réaffiché avec le message d'erreur.
func (h *FactureHandler) CreerVente(c *fiber.Ctx) error {
	in, err := lireVente(c)
	if err != nil {
		return h.rendreVente(c, fiber.StatusBadRequest, usecase.MsgLignesInvalides)
	}

	facture, err := h.factureUC.CreerVente(c.UserContext(), in)
	if err != nil {
		return h.rendreVente(c, statutErreur(err),
			messageErreur(err, "Erreur lors de l'enregistrement de la vente."))
	}
	return c.Redirect(fmt.Sprintf("/factures?succes=%d", facture.ID), fiber.StatusSeeOther)
}

// PDF renvoie le document imprimable d'une facture.
func (h *FactureHandler) PDF(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).SendString("Identifiant de facture invalide.")
	}

	octets, nom, err := h.pdfUC.PDF(c.UserContext(), id)
	if err != nil {
		var apiErr *gateway.ErreurAPI
		if errors.As(err, &apiErr) && apiErr.StatusCode == fiber.StatusNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Facture introuvable.")
		}
		return c.Status(fiber.StatusBadGateway).SendString("Erreur lors de la génération du PDF.")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, nom))
	return c.Send(octets)
}

func (h *FactureHandler) rendreVente(c *fiber.Ctx, statut int, erreur string) error {
	data := fiber.Map{
		"Titre":       "Nouvelle vente",
		"Utilisateur": GetUtilisateur(c),
	}
	if erreur != "" {
		data["Erreur"] = erreur
	}
	clients, err := h.clientUC.List(c.UserContext())
	if err != nil {
		data["Erreur"] = "Impossible de charger les clients."
		return c.Status(fiber.StatusBadGateway).Render("vente", data, "layouts/main")
	}
	produits, err := h.produitUC.List(c.UserContext())
	if err != nil {
		data["Erreur"] = "Impossible de charger les produits."
		return c.Status(fiber.StatusBadGateway).Render("vente", data, "layouts/main")
	}
	data["Clients"] = clients
	data["Produits"] = produits
	return c.Status(statut).Render("vente", data, "layouts/main")
}

// lireVente décode le formulaire de vente. Les lignes sont des champs
// répétés (produit, quantite, prix) alignés par position; une ligne dont le
// produit est vide est ignorée, c'est une rangée non remplie du tableau.
func lireVente(c *fiber.Ctx) (dto.VenteRequest, error) {
	in := dto.VenteRequest{
		ClientID: formInt64(c, "client"),
	}

	produits := formValeurs(c, "produit")
	quantites := formValeurs(c, "quantite")
	prix := formValeurs(c, "prix")
	if len(quantites) != len(produits) || len(prix) != len(produits) {
		return in, fmt.Errorf("formulaire de vente mal aligné")
	}

	for i, p := range produits {
		if strings.TrimSpace(p) == "" {
			continue
		}
		produitID, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return in, fmt.Errorf("produit de la ligne %d: %w", i+1, err)
		}
		quantite, err := strconv.ParseInt(strings.TrimSpace(quantites[i]), 10, 64)
		if err != nil {
			return in, fmt.Errorf("quantité de la ligne %d: %w", i+1, err)
		}
		// la virgule décimale française est acceptée
		pu, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(prix[i]), ",", "."))
		if err != nil {
			return in, fmt.Errorf("prix de la ligne %d: %w", i+1, err)
		}
		in.Lignes = append(in.Lignes, dto.LigneVente{
			ProduitID:    produitID,
			Quantite:     quantite,
			PrixUnitaire: pu,
		})
	}
	return in, nil
}

// formValeurs lit toutes les occurrences d'un champ répété du formulaire.
func formValeurs(c *fiber.Ctx, nom string) []string {
	brutes := c.Request().PostArgs().PeekMulti(nom)
	out := make([]string, 0, len(brutes))
	for _, b := range brutes {
		out = append(out, string(b))
	}
	return out
}
