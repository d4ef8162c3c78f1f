package web

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/eisf/gestion-web/internal/domain/entity"
)

var frPrinter = message.NewPrinter(language.French)

// NewEngine construit le moteur de templates sur les fichiers embarqués et
// enregistre les fonctions de formatage à la française.
func NewEngine() (*html.Engine, error) {
	sub, err := fs.Sub(Files, "templates")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("montant", Montant)
	engine.AddFunc("dateHeure", DateHeure)
	engine.AddFunc("date", DateCourte)
	engine.AddFunc("iterer", Iterer)
	return engine, nil
}

// Iterer renvoie [0, n): sert aux templates pour répéter une rangée vide.
func Iterer(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Montant formate une valeur monétaire: "1 234,56 €".
func Montant(d decimal.Decimal) string {
	return frPrinter.Sprintf("%.2f €", d.InexactFloat64())
}

// DateHeure formate un horodatage: "02/01/2006 15:04".
func DateHeure(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02/01/2006 15:04")
}

// DateCourte formate une date sans heure; tiret si absente.
func DateCourte(d entity.Date) string {
	if d.IsZero() {
		return "—"
	}
	return d.Format("02/01/2006")
}
