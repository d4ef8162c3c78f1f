// Package pdf rend la représentation imprimable d'une facture.
//
// Mise en page A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  EN-TÊTE: Nom de l'entreprise   │  N° Facture + Dates       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENT: nom + coordonnées + n° fiscal                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qté | Désignation | P.U. négocié | Total ligne      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAUX: MONTANT TOTAL + état du paiement                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/eisf/gestion-web/internal/domain/entity"
)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var frPrinter = message.NewPrinter(language.French)

// ── Générateur ────────────────────────────────────────────────────────────────

// MarotoFactureGenerator implémente usecase.FacturePDFGenerator avec
// Maroto v2.
type MarotoFactureGenerator struct {
	entreprise string // raison sociale affichée en en-tête
}

// NewMarotoFactureGenerator construit le générateur.
func NewMarotoFactureGenerator(entreprise string) *MarotoFactureGenerator {
	return &MarotoFactureGenerator{entreprise: entreprise}
}

// GenerateFacturePDF génère le PDF et renvoie ses octets.
func (g *MarotoFactureGenerator) GenerateFacturePDF(_ context.Context, facture *entity.Facture) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Facture n°%d", facture.ID), true).
		WithAuthor(g.entreprise, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.enteteRow(facture))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(facture.ClientDetail))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableEnteteRow())
	for _, r := range tableLigneRows(facture.Lignes) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totauxRow(facture))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer le document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// enteteRow: raison sociale (gauche), numéro et dates (droite).
func (g *MarotoFactureGenerator) enteteRow(facture *entity.Facture) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.entreprise, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Logiciel de Gestion Intégrée", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %d", facture.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(
				fmt.Sprintf("Émise le %s   Échéance: %s",
					facture.DateFacturation.Format("02/01/2006"),
					dateOuTiret(facture.DateEcheance)),
				props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray},
			),
		),
	)
}

// clientRow: coordonnées du client facturé.
func clientRow(client entity.Client) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.NomComplet, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Adresse: %s   |   Tél: %s   |   Email: %s   |   N° fiscal: %s",
				ouTiret(client.Adresse),
				ouTiret(client.Telephone),
				ouTiret(client.Email),
				ouTiret(client.NumFiscal),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableEnteteRow: en-tête de la table des lignes.
func tableEnteteRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qté", 1, align.Center),
		h("Désignation", 6, align.Left),
		h("P.U. négocié", 2, align.Right),
		h("Total ligne", 3, align.Right),
	)
}

// tableLigneRows: une rangée par ligne de facture.
func tableLigneRows(lignes []entity.LigneFacture) []core.Row {
	result := make([]core.Row, 0, len(lignes))
	for _, l := range lignes {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantite),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				fmt.Sprintf("%s (SKU: %s)", l.ProduitDetail.Nom, l.ProduitDetail.SKU),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				montant(l.PrixUnitaireNegocie),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				montant(l.TotalLigne),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totauxRow: montant total et état du paiement.
func totauxRow(facture *entity.Facture) core.Row {
	paiement := "En attente de paiement"
	if facture.EstPayee {
		paiement = "Facture payée"
	}
	return row.New(16).Add(
		col.New(6).Add(
			text.New(paiement, props.Text{
				Size: 9, Top: 4, Color: colorGray,
			}),
		),
		col.New(3).Add(
			text.New("MONTANT TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 4, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New(montant(facture.MontantTotal), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 4, Right: 1,
			}),
		),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// montant formate une valeur monétaire à la française: "1 234,56 €".
func montant(d decimal.Decimal) string {
	return frPrinter.Sprintf("%.2f €", d.InexactFloat64())
}

func ouTiret(s string) string {
	if s != "" {
		return s
	}
	return "—"
}

func dateOuTiret(d entity.Date) string {
	if d.IsZero() {
		return "—"
	}
	return d.Format("02/01/2006")
}
