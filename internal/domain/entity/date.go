package entity

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date est une date sans heure, sérialisée "AAAA-MM-JJ" comme les DateField
// de l'API distante (les DateTimeField, eux, sont du RFC 3339 standard).
type Date struct {
	time.Time
}

// UnmarshalJSON accepte "AAAA-MM-JJ", null ou chaîne vide.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("date invalide %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// MarshalJSON sérialise au format "AAAA-MM-JJ".
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}
