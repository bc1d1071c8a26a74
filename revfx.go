// Package revfx descompone el cambio de revenue de un catálogo de productos en
// efecto precio, efecto volumen, revenue de entradas y coste de salidas, y ofrece
// helpers de tasas compuestas y datos de gráficos de contribución.
//
// Todas las operaciones son funciones puras sobre tablas en memoria.
package revfx

import (
	"io"
	"log/slog"

	"github.com/alejandrodnm/revfx/config"
	"github.com/alejandrodnm/revfx/internal/adapters/notify"
	"github.com/alejandrodnm/revfx/internal/chart"
	"github.com/alejandrodnm/revfx/internal/decompose"
	"github.com/alejandrodnm/revfx/internal/domain"
	"github.com/alejandrodnm/revfx/internal/ports"
	"github.com/shopspring/decimal"
)

type (
	Table        = domain.Table
	Row          = domain.Row
	Columns      = domain.Columns
	Effect       = domain.Effect
	StepKind     = domain.StepKind
	Aggregate    = domain.Aggregate
	AggregateRow = domain.AggregateRow
	Breakdown    = decompose.Breakdown
	Decomposer   = decompose.Decomposer
	Job          = decompose.Job
	Result       = decompose.Result
	Chart        = chart.Chart
	Presenter    = ports.Presenter

	SchemaError           = domain.SchemaError
	InsufficientDataError = domain.InsufficientDataError
	DomainError           = domain.DomainError
)

const (
	StepNormal = domain.StepNormal
	StepEntry  = domain.StepEntry
	StepExit   = domain.StepExit
)

var (
	ErrSchema           = domain.ErrSchema
	ErrInsufficientData = domain.ErrInsufficientData
	ErrDomain           = domain.ErrDomain
)

// Decompose atribuye el cambio de revenue de cada paso con columnas price_/quantity_.
func Decompose(table Table, products []string) (Aggregate, error) {
	return decompose.Decompose(table, products)
}

// Detail devuelve además la serie de efectos de cada producto.
func Detail(table Table, products []string) (Breakdown, error) {
	return decompose.New(decompose.DefaultConfig(), nil).Detail(table, products)
}

// NewDecomposer crea un Decomposer con las columnas de cfg. Con logger nil usa slog.Default().
func NewDecomposer(cfg *config.Config, logger *slog.Logger) *Decomposer {
	if cfg == nil {
		cfg = config.Default()
	}
	return decompose.New(decompose.Config{
		Columns: domain.Columns{
			Price:    cfg.Columns.PricePrefix,
			Quantity: cfg.Columns.QuantityPrefix,
		},
	}, logger)
}

// NewConsole crea el presenter de texto sobre w con el formato de cfg.
func NewConsole(w io.Writer, cfg *config.Config) Presenter {
	if cfg == nil {
		cfg = config.Default()
	}
	return notify.NewConsoleWriter(w, notify.ConsoleConfig{
		Decimals:   cfg.ReportDecimals(),
		TimeLayout: cfg.Report.TimeLayout,
	})
}

// ContributionChart arma los datos de un gráfico de barras apiladas + línea.
func ContributionChart(agg Aggregate, evolution string, contributions []string) (Chart, error) {
	return chart.Build(agg, evolution, contributions)
}

// EffectsChart es el gráfico estándar: cambio de revenue y los cuatro efectos.
func EffectsChart(agg Aggregate) (Chart, error) {
	return chart.Effects(agg)
}

// AverageRate devuelve la tasa constante equivalente a componer rates en secuencia.
func AverageRate(rates []float64) (float64, error) {
	return domain.AverageRate(rates)
}

// PeriodRates devuelve la tasa de cada periodo respecto al anterior.
func PeriodRates(values []decimal.Decimal) ([]float64, error) {
	return domain.PeriodRates(values)
}

// CumulativeRate devuelve ∏(1 + rate_i) − 1.
func CumulativeRate(rates []float64) float64 {
	return domain.CumulativeRate(rates)
}
