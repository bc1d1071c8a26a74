package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultPricePrefix    = "price_"
	DefaultQuantityPrefix = "quantity_"
)

// Row es un paso de la serie temporal: un valor por columna (price_X, quantity_X...).
type Row struct {
	Time   time.Time
	Values map[string]decimal.Decimal
}

// Value devuelve el valor de la columna y si existe.
func (r Row) Value(column string) (decimal.Decimal, bool) {
	v, ok := r.Values[column]
	return v, ok
}

// Table es la tabla de entrada ordenada por tiempo.
// El orden importa: cada fila se compara con la inmediatamente anterior.
type Table []Row

// Columns define cómo se nombran las columnas de cada producto.
type Columns struct {
	Price    string
	Quantity string
}

// DefaultColumns devuelve los prefijos price_ / quantity_.
func DefaultColumns() Columns {
	return Columns{Price: DefaultPricePrefix, Quantity: DefaultQuantityPrefix}
}

// PriceColumn devuelve el nombre de la columna de precio del producto.
func (c Columns) PriceColumn(product string) string {
	return c.Price + product
}

// QuantityColumn devuelve el nombre de la columna de cantidad del producto.
func (c Columns) QuantityColumn(product string) string {
	return c.Quantity + product
}

// Revenue calcula Σ price × quantity de los productos en una fila.
// Las columnas ausentes cuentan como cero; la validación vive en el decomposer.
func (c Columns) Revenue(row Row, products []string) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		price, _ := row.Value(c.PriceColumn(p))
		qty, _ := row.Value(c.QuantityColumn(p))
		total = total.Add(price.Mul(qty))
	}
	return total
}

// UniqueProducts elimina duplicados conservando el orden de entrada.
func UniqueProducts(products []string) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
