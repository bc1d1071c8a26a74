package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// fingerprintNamespace es el namespace fijo de las huellas (UUID v5).
var fingerprintNamespace = uuid.MustParse("6f1c3b8e-2d4a-5e7f-9a10-4b2c8d6e0f13")

// Fingerprint devuelve un UUID v5 determinista de las columnas usadas por los productos.
// Misma entrada → misma huella; columnas ajenas a los productos no la alteran.
func Fingerprint(table Table, products []string, cols Columns) uuid.UUID {
	var sb strings.Builder
	for _, p := range products {
		sb.WriteString(p)
		sb.WriteByte('|')
	}
	for _, row := range table {
		sb.WriteByte('\n')
		if !row.Time.IsZero() {
			sb.WriteString(row.Time.UTC().Format(time.RFC3339Nano))
		}
		for _, p := range products {
			price, _ := row.Value(cols.PriceColumn(p))
			qty, _ := row.Value(cols.QuantityColumn(p))
			sb.WriteByte(';')
			sb.WriteString(price.String())
			sb.WriteByte(',')
			sb.WriteString(qty.String())
		}
	}
	return uuid.NewSHA1(fingerprintNamespace, []byte(sb.String()))
}
