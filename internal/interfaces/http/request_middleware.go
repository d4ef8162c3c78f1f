package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HeaderRequestID en-tête portant l'identifiant de requête.
const HeaderRequestID = "X-Request-ID"

// RequestLogger attribue un identifiant à chaque requête (ou reprend celui
// du client) et journalise méthode, chemin, statut et durée.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)

		start := time.Now()
		err := c.Next()

		evt := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			evt = log.Error().Err(err)
		}
		evt.
			Str("requete_id", id).
			Str("methode", c.Method()).
			Str("chemin", c.Path()).
			Int("statut", c.Response().StatusCode()).
			Dur("duree", time.Since(start)).
			Msg("requête HTTP")
		return err
	}
}
