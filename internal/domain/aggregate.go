package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Nombres de las columnas de salida del aggregate.
const (
	ColumnVolumeEffect  = "volume_effect"
	ColumnPriceEffect   = "price_effect"
	ColumnEntryRevenue  = "entry_revenue"
	ColumnExitCost      = "exit_cost"
	ColumnTotalEffect   = "total_effect"
	ColumnRevenue       = "revenue"
	ColumnRevenueChange = "revenue_change"
)

// EffectColumns son las cuatro series de contribución, en el orden del reporte.
var EffectColumns = []string{ColumnVolumeEffect, ColumnPriceEffect, ColumnEntryRevenue, ColumnExitCost}

// AggregateRow es la suma de los efectos de todos los productos en un paso.
type AggregateRow struct {
	Time          time.Time
	VolumeEffect  decimal.Decimal
	PriceEffect   decimal.Decimal
	EntryRevenue  decimal.Decimal
	ExitCost      decimal.Decimal
	Revenue       decimal.Decimal // Σ p_t × q_t
	RevenueChange decimal.Decimal // revenue_t − revenue_{t−1}
}

// Add acumula el efecto de un producto en la fila.
func (r *AggregateRow) Add(e Effect) {
	r.VolumeEffect = r.VolumeEffect.Add(e.VolumeEffect)
	r.PriceEffect = r.PriceEffect.Add(e.PriceEffect)
	r.EntryRevenue = r.EntryRevenue.Add(e.EntryRevenue)
	r.ExitCost = r.ExitCost.Add(e.ExitCost)
}

// Total devuelve la suma de los cuatro efectos. Siempre coincide con RevenueChange.
func (r AggregateRow) Total() decimal.Decimal {
	return r.VolumeEffect.Add(r.PriceEffect).Add(r.EntryRevenue).Add(r.ExitCost)
}

// Value devuelve el valor de una columna de salida por nombre.
func (r AggregateRow) Value(column string) (decimal.Decimal, bool) {
	switch column {
	case ColumnVolumeEffect:
		return r.VolumeEffect, true
	case ColumnPriceEffect:
		return r.PriceEffect, true
	case ColumnEntryRevenue:
		return r.EntryRevenue, true
	case ColumnExitCost:
		return r.ExitCost, true
	case ColumnTotalEffect:
		return r.Total(), true
	case ColumnRevenue:
		return r.Revenue, true
	case ColumnRevenueChange:
		return r.RevenueChange, true
	}
	return decimal.Zero, false
}

// Aggregate es la tabla de salida: un AggregateRow por paso 1..N-1.
type Aggregate struct {
	Source      uuid.UUID // huella determinista de la entrada
	Products    []string
	BaseRevenue decimal.Decimal // revenue del paso 0, que no tiene fila propia
	Rows        []AggregateRow
}

// Len devuelve el número de pasos (len(table) - 1).
func (a Aggregate) Len() int {
	return len(a.Rows)
}

// Columns lista las columnas disponibles vía Column.
func (a Aggregate) Columns() []string {
	return []string{
		ColumnVolumeEffect, ColumnPriceEffect, ColumnEntryRevenue, ColumnExitCost,
		ColumnTotalEffect, ColumnRevenue, ColumnRevenueChange,
	}
}

// Column devuelve la serie completa de una columna.
func (a Aggregate) Column(name string) ([]decimal.Decimal, error) {
	if _, ok := (AggregateRow{}).Value(name); !ok {
		return nil, &SchemaError{Row: -1, Column: name, Reason: "unknown aggregate column " + name}
	}
	out := make([]decimal.Decimal, len(a.Rows))
	for i, r := range a.Rows {
		out[i], _ = r.Value(name)
	}
	return out, nil
}

// Labels devuelve una etiqueta por paso: la fecha si hay índice temporal, o el número de paso.
func (a Aggregate) Labels() []string {
	out := make([]string, len(a.Rows))
	for i, r := range a.Rows {
		out[i] = StepLabel(r.Time, i+1)
	}
	return out
}

// Totals suma cada columna de efectos sobre todo el periodo.
func (a Aggregate) Totals() AggregateRow {
	var t AggregateRow
	for _, r := range a.Rows {
		t.VolumeEffect = t.VolumeEffect.Add(r.VolumeEffect)
		t.PriceEffect = t.PriceEffect.Add(r.PriceEffect)
		t.EntryRevenue = t.EntryRevenue.Add(r.EntryRevenue)
		t.ExitCost = t.ExitCost.Add(r.ExitCost)
		t.RevenueChange = t.RevenueChange.Add(r.RevenueChange)
	}
	if n := len(a.Rows); n > 0 {
		t.Time = a.Rows[n-1].Time
		t.Revenue = a.Rows[n-1].Revenue
	}
	return t
}

// RevenueRates devuelve las tasas periodo a periodo del revenue agregado,
// partiendo de BaseRevenue. Sirve de entrada para AverageRate.
func (a Aggregate) RevenueRates() ([]float64, error) {
	series := make([]decimal.Decimal, 0, len(a.Rows)+1)
	series = append(series, a.BaseRevenue)
	for _, r := range a.Rows {
		series = append(series, r.Revenue)
	}
	return PeriodRates(series)
}

// StepLabel formatea la etiqueta de un paso.
func StepLabel(t time.Time, step int) string {
	if t.IsZero() {
		return "t" + strconv.Itoa(step)
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}
