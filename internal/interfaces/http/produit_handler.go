package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eisf/gestion-web/internal/application/usecase"
)

// ProduitHandler porte la page du catalogue de produits.
type ProduitHandler struct {
	uc *usecase.ProduitUseCase
}

// NewProduitHandler construit le handler.
func NewProduitHandler(uc *usecase.ProduitUseCase) *ProduitHandler {
	return &ProduitHandler{uc: uc}
}

// Page affiche les produits avec leur stock total et l'alerte de seuil.
func (h *ProduitHandler) Page(c *fiber.Ctx) error {
	data := fiber.Map{
		"Titre":       "Catalogue des produits",
		"Utilisateur": GetUtilisateur(c),
	}
	vues, err := h.uc.List(c.UserContext())
	if err != nil {
		data["Erreur"] = "Impossible de charger les produits. L'API distante est-elle démarrée ?"
		return c.Status(fiber.StatusBadGateway).Render("produits", data, "layouts/main")
	}
	data["Produits"] = vues
	return c.Render("produits", data, "layouts/main")
}
