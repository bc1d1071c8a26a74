package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAggregate() Aggregate {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return Aggregate{
		Products:    []string{"a"},
		BaseRevenue: d(100),
		Rows: []AggregateRow{
			{Time: day, VolumeEffect: d(5), PriceEffect: d(5), Revenue: d(110), RevenueChange: d(10)},
			{Time: day.AddDate(0, 0, 1), EntryRevenue: d(4), ExitCost: d(-15), Revenue: d(99), RevenueChange: d(-11)},
		},
	}
}

func TestAggregateRow_Add(t *testing.T) {
	var row AggregateRow
	row.Add(Effect{Kind: StepNormal, VolumeEffect: d(2), PriceEffect: d(-1)})
	row.Add(Effect{Kind: StepEntry, EntryRevenue: d(7)})
	row.Add(Effect{Kind: StepExit, ExitCost: d(-3)})

	assertDec(t, 2, row.VolumeEffect)
	assertDec(t, -1, row.PriceEffect)
	assertDec(t, 7, row.EntryRevenue)
	assertDec(t, -3, row.ExitCost)
	assertDec(t, 5, row.Total())
}

func TestAggregate_Column(t *testing.T) {
	agg := sampleAggregate()

	vol, err := agg.Column(ColumnVolumeEffect)
	require.NoError(t, err)
	require.Len(t, vol, 2)
	assertDec(t, 5, vol[0])
	assertDec(t, 0, vol[1])

	total, err := agg.Column(ColumnTotalEffect)
	require.NoError(t, err)
	assertDec(t, 10, total[0])
	assertDec(t, -11, total[1])
}

func TestAggregate_Column_Unknown(t *testing.T) {
	_, err := sampleAggregate().Column("margin")
	assert.ErrorIs(t, err, ErrSchema)

	_, err = Aggregate{}.Column("margin")
	assert.ErrorIs(t, err, ErrSchema, "unknown column fails even without rows")
}

func TestAggregate_ColumnsAreAllReadable(t *testing.T) {
	agg := sampleAggregate()
	for _, c := range agg.Columns() {
		_, err := agg.Column(c)
		assert.NoError(t, err, c)
	}
}

func TestAggregate_Labels(t *testing.T) {
	assert.Equal(t, []string{"2024-03-01", "2024-03-02"}, sampleAggregate().Labels())

	noTime := Aggregate{Rows: make([]AggregateRow, 3)}
	assert.Equal(t, []string{"t1", "t2", "t3"}, noTime.Labels())
}

func TestAggregate_Totals(t *testing.T) {
	tot := sampleAggregate().Totals()
	assertDec(t, 5, tot.VolumeEffect)
	assertDec(t, 5, tot.PriceEffect)
	assertDec(t, 4, tot.EntryRevenue)
	assertDec(t, -15, tot.ExitCost)
	assertDec(t, -1, tot.RevenueChange)
	assertDec(t, 99, tot.Revenue)
	assert.True(t, tot.Total().Equal(tot.RevenueChange))
}

func TestAggregate_RevenueRates(t *testing.T) {
	rates, err := sampleAggregate().RevenueRates()
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.InDelta(t, 0.10, rates[0], 1e-12)
	assert.InDelta(t, -0.10, rates[1], 1e-12)

	avg, err := AverageRate(rates)
	require.NoError(t, err)
	assert.InDelta(t, -0.0050126, avg, 1e-6)
}

func TestStepLabel_WithClock(t *testing.T) {
	ts := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-01T14:30:00Z", StepLabel(ts, 1))
}

// --- Table helpers ---

func TestColumns_Revenue(t *testing.T) {
	cols := DefaultColumns()
	row := Row{Values: map[string]decimal.Decimal{
		"price_a": d(2), "quantity_a": d(3),
		"price_b": d(1.5), "quantity_b": d(4),
	}}
	assertDec(t, 12, cols.Revenue(row, []string{"a", "b"}))
	assert.Equal(t, "price_a", cols.PriceColumn("a"))
	assert.Equal(t, "quantity_a", cols.QuantityColumn("a"))
}

func TestUniqueProducts(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, UniqueProducts([]string{"b", "a", "b", "c", "a"}))
	assert.Empty(t, UniqueProducts(nil))
}

// --- Fingerprint ---

func TestFingerprint_Deterministic(t *testing.T) {
	cols := DefaultColumns()
	table := Table{
		{Values: map[string]decimal.Decimal{"price_a": d(10), "quantity_a": d(5), "noise": d(1)}},
		{Values: map[string]decimal.Decimal{"price_a": d(12), "quantity_a": d(5)}},
	}
	first := Fingerprint(table, []string{"a"}, cols)
	assert.Equal(t, first, Fingerprint(table, []string{"a"}, cols))

	// columnas ajenas no cambian la huella
	table[0].Values["noise"] = d(999)
	assert.Equal(t, first, Fingerprint(table, []string{"a"}, cols))

	// un valor usado sí
	table[1].Values["price_a"] = d(13)
	assert.NotEqual(t, first, Fingerprint(table, []string{"a"}, cols))
}

func TestSchemaError_Messages(t *testing.T) {
	err := &SchemaError{Row: 2, Product: "a", Column: "price_a"}
	assert.Equal(t, `schema error: row 2: product "a": missing column "price_a"`, err.Error())
	assert.Equal(t, "schema error: no products", (&SchemaError{Row: -1, Reason: "no products"}).Error())
	assert.Equal(t, "insufficient data: got 1 rows, need at least 2", (&InsufficientDataError{Rows: 1, Min: 2}).Error())
}
