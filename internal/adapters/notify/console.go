package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alejandrodnm/revfx/internal/chart"
	"github.com/alejandrodnm/revfx/internal/domain"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

const defaultDecimals = 2

// ConsoleConfig controla el formato de los números y las fechas.
type ConsoleConfig struct {
	Decimals   int    // decimales de cada importe
	TimeLayout string // layout de time.Format; vacío = fecha o número de paso
}

// Console implementa ports.Presenter escribiendo tablas de texto.
type Console struct {
	out        io.Writer
	decimals   int32
	timeLayout string
}

// NewConsole crea un presenter que escribe a stdout.
func NewConsole(cfg ConsoleConfig) *Console {
	return NewConsoleWriter(os.Stdout, cfg)
}

// NewConsoleWriter crea un presenter sobre cualquier writer (tests, archivos, buffers).
func NewConsoleWriter(w io.Writer, cfg ConsoleConfig) *Console {
	decimals := cfg.Decimals
	if decimals < 0 {
		decimals = defaultDecimals
	}
	return &Console{out: w, decimals: int32(decimals), timeLayout: cfg.TimeLayout}
}

// PresentAggregate imprime una fila por paso, los totales y la leyenda.
func (c *Console) PresentAggregate(_ context.Context, agg domain.Aggregate) error {
	if agg.Len() == 0 {
		fmt.Fprintln(c.out, "no steps to report")
		return nil
	}

	fmt.Fprintf(c.out, "\nrevenue effects: %d steps, products: %s\n",
		agg.Len(), strings.Join(agg.Products, ", "))

	table := tablewriter.NewWriter(c.out)
	table.Header("Step", "Volume", "Price", "Entry", "Exit", "Total", "Revenue", "Δ Revenue")

	for i, r := range agg.Rows {
		if err := table.Append(c.aggregateRow(c.label(r, i+1), r)...); err != nil {
			return fmt.Errorf("notify.PresentAggregate: append row %d: %w", i+1, err)
		}
	}
	if err := table.Append(c.aggregateRow("TOTAL", agg.Totals())...); err != nil {
		return fmt.Errorf("notify.PresentAggregate: append totals: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("notify.PresentAggregate: render: %w", err)
	}

	fmt.Fprintln(c.out, "  Volume = p_prev × Δq | Price = q_cur × Δp")
	fmt.Fprintln(c.out, "  Entry = revenue of products that appear | Exit = −revenue of products that disappear")
	return nil
}

// PresentChart imprime los datos del gráfico: la línea y cada tramo como base→tope.
func (c *Console) PresentChart(_ context.Context, ch chart.Chart) error {
	if len(ch.Labels) == 0 {
		fmt.Fprintln(c.out, "no chart data")
		return nil
	}

	header := make([]any, 0, len(ch.Bars)+2)
	header = append(header, "Step", ch.Line.Name)
	for _, b := range ch.Bars {
		header = append(header, b.Name)
	}

	table := tablewriter.NewWriter(c.out)
	table.Header(header...)

	for i, label := range ch.Labels {
		row := make([]any, 0, len(header))
		row = append(row, label, c.float(ch.Line.Values[i]))
		for _, b := range ch.Bars {
			s := b.Segments[i]
			row = append(row, c.float(s.Value)+" ["+c.float(s.Base)+"→"+c.float(s.Base+s.Value)+"]")
		}
		if err := table.Append(row...); err != nil {
			return fmt.Errorf("notify.PresentChart: append %s: %w", label, err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("notify.PresentChart: render: %w", err)
	}

	lo, hi := ch.Extent()
	fmt.Fprintf(c.out, "  extent: [%s, %s]\n", c.float(lo), c.float(hi))
	return nil
}

func (c *Console) aggregateRow(label string, r domain.AggregateRow) []any {
	return []any{
		label,
		c.money(r.VolumeEffect),
		c.money(r.PriceEffect),
		c.money(r.EntryRevenue),
		c.money(r.ExitCost),
		c.money(r.Total()),
		c.money(r.Revenue),
		c.money(r.RevenueChange),
	}
}

func (c *Console) label(r domain.AggregateRow, step int) string {
	if c.timeLayout != "" && !r.Time.IsZero() {
		return r.Time.Format(c.timeLayout)
	}
	return domain.StepLabel(r.Time, step)
}

func (c *Console) money(v decimal.Decimal) string {
	return v.StringFixed(c.decimals)
}

func (c *Console) float(v float64) string {
	return strconv.FormatFloat(v, 'f', int(c.decimals), 64)
}
