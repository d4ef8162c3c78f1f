// Package restapi implémente les ports gateway au-dessus de l'API REST
// distante (JSON). Utilise net/http de la stdlib; aucun état local n'est
// conservé, chaque appel part de l'URL de base configurée.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eisf/gestion-web/internal/domain/gateway"
)

const maxBodyBytes = 1 << 20 // 1 Mo, les collections restent petites

// Client est le client HTTP de l'API distante. Implémente
// gateway.Transferts, gateway.Clients et gateway.Factures.
type Client struct {
	baseURL string
	hc      *http.Client
	log     zerolog.Logger
}

// New construit le client avec l'URL de base (ex: http://localhost:8000)
// et le timeout réseau configurés.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     log.With().Str("composant", "restapi").Logger(),
	}
}

// getJSON exécute un GET et décode la réponse JSON dans out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("restapi: créer la requête: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

// postJSON exécute un POST avec un corps JSON et décode la réponse dans out.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("restapi: sérialiser le corps: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path,
		bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("restapi: créer la requête: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		if req.Context().Err() != nil {
			return fmt.Errorf("restapi: timeout ou annulation: %w", req.Context().Err())
		}
		return fmt.Errorf("restapi: appel HTTP: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("restapi: lire la réponse: %w", err)
	}

	c.log.Debug().
		Str("methode", req.Method).
		Str("chemin", req.URL.Path).
		Int("statut", resp.StatusCode).
		Dur("duree", time.Since(start)).
		Msg("appel API distante")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeErreur(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("restapi: décoder la réponse: %w", err)
	}
	return nil
}

// decodeErreur construit l'ErreurAPI à partir du corps d'une réponse
// non-2xx. Le corps peut être un objet champ→message(s), une valeur JSON
// simple, ou absent; on ne rejette jamais un corps illisible, on le porte
// tel quel.
func decodeErreur(status int, raw []byte) *gateway.ErreurAPI {
	e := &gateway.ErreurAPI{StatusCode: status}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return e
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		fields := make(map[string][]string, len(obj))
		for k, v := range obj {
			var un string
			if json.Unmarshal(v, &un) == nil {
				fields[k] = []string{un}
				continue
			}
			var plusieurs []string
			if json.Unmarshal(v, &plusieurs) == nil {
				fields[k] = plusieurs
				continue
			}
			// valeur imbriquée ou numérique: portée en texte brut
			fields[k] = []string{string(v)}
		}
		e.Fields = fields
		return e
	}

	var val any
	if err := json.Unmarshal(raw, &val); err == nil {
		e.Detail = fmt.Sprintf("%v", val)
		return e
	}
	e.Detail = string(raw)
	return e
}
