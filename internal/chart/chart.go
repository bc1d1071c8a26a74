// Package chart arma los datos de un gráfico de contribución (barras apiladas + línea)
// sin dibujar nada. El dibujo queda para un presenter invocado aparte.
package chart

import (
	"fmt"

	"github.com/alejandrodnm/revfx/internal/domain"
	"github.com/shopspring/decimal"
)

// Source es una tabla con etiquetas por paso y columnas numéricas por nombre.
// domain.Aggregate la implementa.
type Source interface {
	Labels() []string
	Column(name string) ([]decimal.Decimal, error)
}

// Series es una serie simple (la línea de evolución).
type Series struct {
	Name   string
	Values []float64
}

// Segment es un tramo de barra apilada: va de Base a Base+Value.
type Segment struct {
	Base  float64
	Value float64
}

// StackedSeries es una contribución: un tramo por etiqueta.
type StackedSeries struct {
	Name     string
	Segments []Segment
}

// Chart son los datos listos para dibujar.
type Chart struct {
	Labels []string
	Line   Series
	Bars   []StackedSeries
}

// Build arma el gráfico: evolution es la línea, contributions las barras apiladas.
// Las contribuciones positivas se apilan hacia arriba desde 0 y las negativas hacia abajo.
func Build(src Source, evolution string, contributions []string) (Chart, error) {
	if len(contributions) == 0 {
		return Chart{}, &domain.SchemaError{Row: -1, Reason: "no contribution columns"}
	}

	labels := src.Labels()
	line, err := column(src, evolution, len(labels))
	if err != nil {
		return Chart{}, fmt.Errorf("chart.Build: evolution: %w", err)
	}

	ch := Chart{
		Labels: labels,
		Line:   Series{Name: evolution, Values: line},
		Bars:   make([]StackedSeries, 0, len(contributions)),
	}

	top := make([]float64, len(labels))
	bottom := make([]float64, len(labels))
	for _, name := range contributions {
		values, err := column(src, name, len(labels))
		if err != nil {
			return Chart{}, fmt.Errorf("chart.Build: contribution: %w", err)
		}
		s := StackedSeries{Name: name, Segments: make([]Segment, len(values))}
		for i, v := range values {
			if v >= 0 {
				s.Segments[i] = Segment{Base: top[i], Value: v}
				top[i] += v
			} else {
				s.Segments[i] = Segment{Base: bottom[i], Value: v}
				bottom[i] += v
			}
		}
		ch.Bars = append(ch.Bars, s)
	}
	return ch, nil
}

// Effects arma el gráfico estándar de un aggregate: cambio de revenue como línea
// y los cuatro efectos como barras.
func Effects(agg domain.Aggregate) (Chart, error) {
	return Build(agg, domain.ColumnRevenueChange, domain.EffectColumns)
}

// Extent devuelve el mínimo y el máximo que ocupa el gráfico (barras y línea), incluido el 0.
func (c Chart) Extent() (lo, hi float64) {
	for _, v := range c.Line.Values {
		lo, hi = min(lo, v), max(hi, v)
	}
	for _, b := range c.Bars {
		for _, s := range b.Segments {
			end := s.Base + s.Value
			lo, hi = min(lo, s.Base, end), max(hi, s.Base, end)
		}
	}
	return lo, hi
}

func column(src Source, name string, n int) ([]float64, error) {
	values, err := src.Column(name)
	if err != nil {
		return nil, err
	}
	if len(values) != n {
		return nil, &domain.SchemaError{
			Row:    -1,
			Column: name,
			Reason: fmt.Sprintf("column %q has %d values for %d labels", name, len(values), n),
		}
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.InexactFloat64()
	}
	return out, nil
}
