package decompose

import (
	"log/slog"

	"github.com/alejandrodnm/revfx/internal/domain"
)

const minRows = 2

// Config contiene la configuración del decomposer.
type Config struct {
	Columns domain.Columns
}

// DefaultConfig devuelve columnas price_<producto> / quantity_<producto>.
func DefaultConfig() Config {
	return Config{Columns: domain.DefaultColumns()}
}

// Breakdown es el resultado detallado: el aggregate más la serie de efectos de cada producto.
type Breakdown struct {
	Aggregate domain.Aggregate
	Effects   map[string][]domain.Effect // producto → un Effect por paso 1..N-1
}

// Decomposer atribuye el cambio de revenue a efecto precio, volumen, entrada y salida.
// No guarda estado entre llamadas; es seguro usarlo desde varias goroutines.
type Decomposer struct {
	cols   domain.Columns
	logger *slog.Logger
}

// New crea un Decomposer. Con logger nil usa slog.Default().
func New(cfg Config, logger *slog.Logger) *Decomposer {
	def := domain.DefaultColumns()
	if cfg.Columns.Price == "" {
		cfg.Columns.Price = def.Price
	}
	if cfg.Columns.Quantity == "" {
		cfg.Columns.Quantity = def.Quantity
	}
	return &Decomposer{cols: cfg.Columns, logger: logger}
}

// Decompose devuelve la suma por paso de los cuatro efectos de todos los productos.
// Requiere al menos 2 filas y las columnas de precio y cantidad de cada producto en todas ellas.
func (d *Decomposer) Decompose(table domain.Table, products []string) (domain.Aggregate, error) {
	agg, _, err := d.run(table, products, false)
	return agg, err
}

// Detail es como Decompose pero además devuelve los efectos de cada producto.
func (d *Decomposer) Detail(table domain.Table, products []string) (Breakdown, error) {
	agg, effects, err := d.run(table, products, true)
	if err != nil {
		return Breakdown{}, err
	}
	return Breakdown{Aggregate: agg, Effects: effects}, nil
}

// Columns devuelve la convención de nombres en uso.
func (d *Decomposer) Columns() domain.Columns {
	return d.cols
}

func (d *Decomposer) log() *slog.Logger {
	if d.logger != nil {
		return d.logger
	}
	return slog.Default()
}

func (d *Decomposer) run(table domain.Table, products []string, detail bool) (domain.Aggregate, map[string][]domain.Effect, error) {
	products, err := d.validate(table, products)
	if err != nil {
		return domain.Aggregate{}, nil, err
	}

	log := d.log()
	log.Debug("decompose starting", "rows", len(table), "products", len(products))

	var effects map[string][]domain.Effect
	if detail {
		effects = make(map[string][]domain.Effect, len(products))
		for _, p := range products {
			effects[p] = make([]domain.Effect, 0, len(table)-1)
		}
	}

	agg := domain.Aggregate{
		Source:      domain.Fingerprint(table, products, d.cols),
		Products:    products,
		BaseRevenue: d.cols.Revenue(table[0], products),
		Rows:        make([]domain.AggregateRow, 0, len(table)-1),
	}

	prevRevenue := agg.BaseRevenue
	entries, exits := 0, 0
	for t := 1; t < len(table); t++ {
		prev, cur := table[t-1], table[t]
		row := domain.AggregateRow{Time: cur.Time}

		for _, p := range products {
			pc, qc := d.cols.PriceColumn(p), d.cols.QuantityColumn(p)
			e := domain.ComputeEffect(prev.Values[pc], prev.Values[qc], cur.Values[pc], cur.Values[qc])
			row.Add(e)

			switch e.Kind {
			case domain.StepEntry:
				entries++
				log.Debug("product entered", "product", p, "step", t, "revenue", e.EntryRevenue.String())
			case domain.StepExit:
				exits++
				log.Debug("product exited", "product", p, "step", t, "cost", e.ExitCost.String())
			}
			if detail {
				effects[p] = append(effects[p], e)
			}
		}

		row.Revenue = d.cols.Revenue(cur, products)
		row.RevenueChange = row.Revenue.Sub(prevRevenue)
		prevRevenue = row.Revenue
		agg.Rows = append(agg.Rows, row)
	}

	log.Debug("decompose done",
		"steps", len(agg.Rows),
		"entries", entries,
		"exits", exits,
		"source", agg.Source.String(),
	)
	return agg, effects, nil
}

// validate comprueba las precondiciones antes de calcular nada: o sale el aggregate completo o nada.
// Devuelve los productos sin duplicados, en el orden de entrada.
func (d *Decomposer) validate(table domain.Table, products []string) ([]string, error) {
	products = domain.UniqueProducts(products)
	if len(products) == 0 {
		return nil, &domain.SchemaError{Row: -1, Reason: "no products"}
	}
	if len(table) < minRows {
		return nil, &domain.InsufficientDataError{Rows: len(table), Min: minRows}
	}
	for i, row := range table {
		for _, p := range products {
			for _, col := range [2]string{d.cols.PriceColumn(p), d.cols.QuantityColumn(p)} {
				if _, ok := row.Value(col); !ok {
					return nil, &domain.SchemaError{Row: i, Product: p, Column: col}
				}
			}
		}
	}
	return products, nil
}

// Decompose usa un Decomposer con la configuración por defecto.
func Decompose(table domain.Table, products []string) (domain.Aggregate, error) {
	return New(DefaultConfig(), nil).Decompose(table, products)
}
