package restapi

import (
	"context"

	"github.com/eisf/gestion-web/internal/domain/entity"
)

// CreateTransfert enregistre un transfert de stock. L'erreur renvoyée sur
// réponse non-2xx est une *gateway.ErreurAPI, à aplatir par l'appelant;
// elle n'est volontairement pas ré-emballée ici pour préserver errors.As.
func (c *Client) CreateTransfert(ctx context.Context, in entity.NouveauTransfert) (*entity.Transfert, error) {
	var out entity.Transfert
	if err := c.postJSON(ctx, "/api/transferts/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
