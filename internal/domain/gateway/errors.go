package gateway

import (
	"fmt"
	"sort"
	"strings"
)

// ErreurAPI représente une réponse non-2xx de l'API distante. Le corps
// d'erreur peut être un objet champ→message(s) (validation DRF), une valeur
// JSON simple, ou absent; les trois formes sont portées par Fields/Detail.
type ErreurAPI struct {
	StatusCode int
	Fields     map[string][]string // corps objet: champ → messages
	Detail     string              // corps non-objet, sérialisé en texte
}

// Error implémente error.
func (e *ErreurAPI) Error() string {
	msg := e.Message()
	if msg == "" {
		return fmt.Sprintf("api: statut HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("api: statut HTTP %d: %s", e.StatusCode, msg)
}

// Message aplatit le corps d'erreur en une chaîne lisible: tous les messages
// de champs joints par "; " (clés triées pour un rendu stable), sinon la
// valeur simple, sinon chaîne vide (à l'appelant de fournir un libellé
// générique).
func (e *ErreurAPI) Message() string {
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var msgs []string
		for _, k := range keys {
			msgs = append(msgs, e.Fields[k]...)
		}
		return strings.Join(msgs, "; ")
	}
	return e.Detail
}
