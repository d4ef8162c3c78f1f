package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/eisf/gestion-web/internal/application/auth"
	"github.com/eisf/gestion-web/internal/domain"
)

// AuthHandler porte la connexion et la déconnexion de l'opérateur.
type AuthHandler struct {
	uc             *auth.UseCase
	sessionMinutes int
}

// NewAuthHandler construit le handler.
func NewAuthHandler(uc *auth.UseCase, sessionMinutes int) *AuthHandler {
	return &AuthHandler{uc: uc, sessionMinutes: sessionMinutes}
}

// Page affiche le formulaire de connexion.
func (h *AuthHandler) Page(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Titre": "Connexion",
	}, "layouts/main")
}

// Login vérifie les identifiants postés. En cas de succès, pose le cookie
// de session et redirige vers la page des transferts; sinon réaffiche le
// formulaire avec le message d'erreur, sans révéler quel champ est fautif.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	utilisateur := c.FormValue("utilisateur")
	motDePasse := c.FormValue("mot_de_passe")

	token, err := h.uc.Login(utilisateur, motDePasse)
	if err != nil {
		statut := fiber.StatusInternalServerError
		message := "Une erreur inconnue est survenue."
		if errors.Is(err, domain.ErrIdentifiantsInvalides) {
			statut = fiber.StatusUnauthorized
			message = "Nom d'utilisateur ou mot de passe incorrect."
		}
		// Saisie et non Utilisateur: cette clé-là pilote la barre de
		// navigation de la session dans le layout.
		return c.Status(statut).Render("login", fiber.Map{
			"Titre":  "Connexion",
			"Erreur": message,
			"Saisie": utilisateur,
		}, "layouts/main")
	}

	PoserSession(c, token, h.sessionMinutes)
	return c.Redirect("/transferts", fiber.StatusSeeOther)
}

// Logout efface la session et renvoie à la page de connexion.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	EffacerSession(c)
	return c.Redirect("/login", fiber.StatusSeeOther)
}
