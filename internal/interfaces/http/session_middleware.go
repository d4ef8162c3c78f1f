// Package http porte l'interface web servie par Fiber: pages HTML rendues
// côté serveur au-dessus des cas d'usage, session opérateur par cookie JWT.
package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	pkgjwt "github.com/eisf/gestion-web/pkg/jwt"
)

// Nom du cookie de session et clé Locals de l'opérateur connecté.
const (
	CookieSession    = "session"
	LocalUtilisateur = "utilisateur"
)

// SessionMiddleware valide le cookie de session JWT et place le nom de
// l'opérateur dans c.Locals. Sans session valide, redirection vers la page
// de connexion (c'est une interface web, pas une API: pas de 401 JSON).
func SessionMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(CookieSession)
		if token == "" {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		utilisateur, err := pkgjwt.Parse(jwtSecret, token)
		if err != nil {
			// cookie expiré ou altéré: on le purge avant de rediriger
			EffacerSession(c)
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		c.Locals(LocalUtilisateur, utilisateur)
		return c.Next()
	}
}

// GetUtilisateur renvoie le nom de l'opérateur connecté (après le
// middleware de session).
func GetUtilisateur(c *fiber.Ctx) string {
	v := c.Locals(LocalUtilisateur)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// PoserSession écrit le cookie de session avec le jeton signé.
func PoserSession(c *fiber.Ctx, token string, dureeMinutes int) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieSession,
		Value:    token,
		Expires:  time.Now().Add(time.Duration(dureeMinutes) * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// EffacerSession invalide le cookie de session.
func EffacerSession(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieSession,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
