package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/eisf/gestion-web/internal/application/usecase"
	"github.com/eisf/gestion-web/internal/domain"
	"github.com/eisf/gestion-web/internal/domain/entity"
	"github.com/eisf/gestion-web/internal/domain/gateway"
)

// ClientHandler porte la page des clients: liste et formulaire de création.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construit le handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Page affiche la liste des clients et le formulaire de création.
func (h *ClientHandler) Page(c *fiber.Ctx) error {
	data := fiber.Map{
		"Titre":       "Clients",
		"Utilisateur": GetUtilisateur(c),
	}
	if c.Query("succes") != "" {
		data["Succes"] = "Client enregistré avec succès."
	}
	clients, err := h.uc.List(c.UserContext())
	if err != nil {
		data["Erreur"] = "Impossible de charger les clients."
		return c.Status(fiber.StatusBadGateway).Render("clients", data, "layouts/main")
	}
	data["Clients"] = clients
	return c.Render("clients", data, "layouts/main")
}

// Create enregistre le client posté puis revient à la liste. En cas de
// refus (local ou serveur), la page est réaffichée avec le message et la
// saisie conservée.
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	in := entity.NouveauClient{
		NomComplet: c.FormValue("nom_complet"),
		Email:      c.FormValue("email"),
		Telephone:  c.FormValue("telephone"),
		Adresse:    c.FormValue("adresse"),
		NumFiscal:  c.FormValue("num_fiscal"),
	}

	_, err := h.uc.Create(c.UserContext(), in)
	if err == nil {
		return c.Redirect("/clients?succes=1", fiber.StatusSeeOther)
	}

	data := fiber.Map{
		"Titre":       "Clients",
		"Utilisateur": GetUtilisateur(c),
		"Saisie":      in,
		"Erreur":      messageErreur(err, "Erreur lors de l'enregistrement du client."),
	}
	if clients, errListe := h.uc.List(c.UserContext()); errListe == nil {
		data["Clients"] = clients
	}
	return c.Status(statutErreur(err)).Render("clients", data, "layouts/main")
}

// messageErreur extrait un libellé affichable: le détail de la validation
// serveur s'il existe, le message local pour une entrée invalide, sinon le
// libellé générique fourni.
func messageErreur(err error, generique string) string {
	var apiErr *gateway.ErreurAPI
	if errors.As(err, &apiErr) {
		if msg := apiErr.Message(); msg != "" {
			return msg
		}
		return generique
	}
	if errors.Is(err, domain.ErrEntreeInvalide) {
		return messageApresSentinelle(err, domain.ErrEntreeInvalide)
	}
	return generique
}

// messageApresSentinelle renvoie la partie du message après la sentinelle,
// pour afficher « Veuillez ... » plutôt que « entrée invalide: Veuillez ... ».
func messageApresSentinelle(err, sentinelle error) string {
	complet := err.Error()
	prefixe := sentinelle.Error() + ": "
	if len(complet) > len(prefixe) && complet[:len(prefixe)] == prefixe {
		return complet[len(prefixe):]
	}
	return complet
}

// statutErreur choisit le statut HTTP de la page réaffichée.
func statutErreur(err error) int {
	var apiErr *gateway.ErreurAPI
	switch {
	case errors.Is(err, domain.ErrEntreeInvalide):
		return fiber.StatusBadRequest
	case errors.As(err, &apiErr):
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return fiber.StatusBadRequest
		}
		return fiber.StatusBadGateway
	default:
		return fiber.StatusBadGateway
	}
}
