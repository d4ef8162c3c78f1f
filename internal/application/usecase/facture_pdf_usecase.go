package usecase

import (
	"context"
	"fmt"

	"github.com/eisf/gestion-web/internal/domain/entity"
	"github.com/eisf/gestion-web/internal/domain/gateway"
)

// FacturePDFGenerator définit le port de sortie pour la génération du PDF
// d'une facture. L'implémentation concrète utilise Maroto; pour les tests
// on peut injecter un mock.
type FacturePDFGenerator interface {
	GenerateFacturePDF(ctx context.Context, facture *entity.Facture) ([]byte, error)
}

// FacturePDFUseCase télécharge le PDF d'une facture: relecture de la
// facture complète puis rendu.
type FacturePDFUseCase struct {
	gw  gateway.Factures
	gen FacturePDFGenerator
}

// NewFacturePDFUseCase construit le cas d'usage.
func NewFacturePDFUseCase(gw gateway.Factures, gen FacturePDFGenerator) *FacturePDFUseCase {
	return &FacturePDFUseCase{gw: gw, gen: gen}
}

// PDF renvoie les octets du document et le nom de fichier proposé.
func (uc *FacturePDFUseCase) PDF(ctx context.Context, id int64) ([]byte, string, error) {
	facture, err := uc.gw.GetFacture(ctx, id)
	if err != nil {
		return nil, "", err
	}
	octets, err := uc.gen.GenerateFacturePDF(ctx, facture)
	if err != nil {
		return nil, "", err
	}
	return octets, fmt.Sprintf("facture-%d.pdf", facture.ID), nil
}
