package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/eisf/gestion-web/internal/application/auth"
	"github.com/eisf/gestion-web/internal/application/transfert"
	"github.com/eisf/gestion-web/internal/application/usecase"
	infrapdf "github.com/eisf/gestion-web/internal/infrastructure/pdf"
	"github.com/eisf/gestion-web/internal/infrastructure/restapi"
	httpRouter "github.com/eisf/gestion-web/internal/interfaces/http"
	"github.com/eisf/gestion-web/pkg/config"
	"github.com/eisf/gestion-web/pkg/logger"
	"github.com/eisf/gestion-web/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("démarrage de l'application")

	// Client de l'API distante, seule source de vérité des données
	api := restapi.New(cfg.API.BaseURL, cfg.API.Timeout(), log.Zerolog())

	transfertVM := transfert.NewViewModel(api, log.Zerolog())
	defer transfertVM.Close()

	produitUC := usecase.NewProduitUseCase(api)
	clientUC := usecase.NewClientUseCase(api)
	factureUC := usecase.NewFactureUseCase(api)
	pdfGenerator := infrapdf.NewMarotoFactureGenerator(cfg.App.Name)
	facturePDFUC := usecase.NewFacturePDFUseCase(api, pdfGenerator)
	authUC := auth.NewUseCase(cfg.Auth.User, cfg.Auth.PasswordHash, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	engine, err := web.NewEngine()
	if err != nil {
		log.Fatal().Err(err).Msg("moteur de templates")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        engine,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(web.Files),
		PathPrefix: "static",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TransfertVM:    transfertVM,
		ProduitUC:      produitUC,
		ClientUC:       clientUC,
		FactureUC:      factureUC,
		FacturePDFUC:   facturePDFUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
		SessionMinutes: cfg.JWT.Expiration,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
