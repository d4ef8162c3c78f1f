package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eisf/gestion-web/internal/application/auth"
	"github.com/eisf/gestion-web/internal/application/transfert"
	"github.com/eisf/gestion-web/internal/application/usecase"
)

// RouterDeps dépendances du routeur.
type RouterDeps struct {
	TransfertVM    *transfert.ViewModel
	ProduitUC      *usecase.ProduitUseCase
	ClientUC       *usecase.ClientUseCase
	FactureUC      *usecase.FactureUseCase
	FacturePDFUC   *usecase.FacturePDFUseCase
	AuthUC         *auth.UseCase
	JWTSecret      string
	SessionMinutes int
}

// Router enregistre les routes de l'interface web.
func Router(app *fiber.App, deps RouterDeps) {
	// Connexion (public)
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionMinutes)
	app.Get("/login", authHandler.Page)
	app.Post("/login", authHandler.Login)

	// Pages protégées par la session opérateur
	protected := app.Group("/", SessionMiddleware(deps.JWTSecret))
	protected.Get("/logout", authHandler.Logout)

	protected.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/transferts", fiber.StatusSeeOther)
	})

	// Transferts de stock
	transfertHandler := NewTransfertHandler(deps.TransfertVM)
	protected.Get("/transferts", transfertHandler.Page)
	protected.Post("/transferts/selection", transfertHandler.Selection)
	protected.Post("/transferts/envoi", transfertHandler.Envoi)
	protected.Post("/transferts/recharger", transfertHandler.Recharger)

	// Catalogue
	produitHandler := NewProduitHandler(deps.ProduitUC)
	protected.Get("/produits", produitHandler.Page)

	// Clients
	clientHandler := NewClientHandler(deps.ClientUC)
	protected.Get("/clients", clientHandler.Page)
	protected.Post("/clients", clientHandler.Create)

	// Facturation
	factureHandler := NewFactureHandler(deps.FactureUC, deps.FacturePDFUC, deps.ClientUC, deps.ProduitUC)
	protected.Get("/factures", factureHandler.Page)
	protected.Get("/factures/:id/pdf", factureHandler.PDF)
	protected.Get("/ventes/nouvelle", factureHandler.VentePage)
	protected.Post("/ventes", factureHandler.CreerVente)
}
