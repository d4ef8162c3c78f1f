package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/eisf/gestion-web/internal/domain"
	"github.com/eisf/gestion-web/internal/domain/entity"
	"github.com/eisf/gestion-web/internal/domain/gateway"
)

// ClientUseCase liste et crée des clients via l'API distante.
type ClientUseCase struct {
	gw gateway.Clients
}

// NewClientUseCase construit le cas d'usage.
func NewClientUseCase(gw gateway.Clients) *ClientUseCase {
	return &ClientUseCase{gw: gw}
}

// List renvoie les clients.
func (uc *ClientUseCase) List(ctx context.Context) ([]entity.Client, error) {
	return uc.gw.ListClients(ctx)
}

// Create crée un client. Seul le nom complet est obligatoire, le reste est
// validé par le serveur.
func (uc *ClientUseCase) Create(ctx context.Context, in entity.NouveauClient) (*entity.Client, error) {
	if strings.TrimSpace(in.NomComplet) == "" {
		return nil, fmt.Errorf("%w: le nom du client est requis", domain.ErrEntreeInvalide)
	}
	return uc.gw.CreateClient(ctx, in)
}
