package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// AverageRate devuelve la tasa constante r que, compuesta n veces, reproduce el
// mismo crecimiento acumulado que las tasas dadas en secuencia.
//
// Fórmula: r = (∏(1 + rate_i))^(1/n) − 1
//
// Con producto negativo solo existe raíz real si n es impar.
func AverageRate(rates []float64) (float64, error) {
	n := len(rates)
	if n == 0 {
		return 0, &DomainError{Reason: "average rate of an empty sequence"}
	}

	growth := 1.0
	for i, r := range rates {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return 0, &DomainError{Reason: fmt.Sprintf("rate %d is not finite", i)}
		}
		growth *= 1 + r
	}

	if growth < 0 {
		if n%2 == 0 {
			return 0, &DomainError{Reason: fmt.Sprintf("even root (n=%d) of negative growth %g", n, growth)}
		}
		return -math.Pow(-growth, 1/float64(n)) - 1, nil
	}
	return math.Pow(growth, 1/float64(n)) - 1, nil
}

// CumulativeRate devuelve el crecimiento compuesto total: ∏(1 + rate_i) − 1.
func CumulativeRate(rates []float64) float64 {
	growth := 1.0
	for _, r := range rates {
		growth *= 1 + r
	}
	return growth - 1
}

// PeriodRates devuelve la tasa de cada periodo respecto al anterior:
// (v_i − v_{i−1}) / v_{i−1}. Una base cero no tiene tasa definida.
func PeriodRates(values []decimal.Decimal) ([]float64, error) {
	if len(values) < 2 {
		return nil, &InsufficientDataError{Rows: len(values), Min: 2}
	}
	rates := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		prev := values[i-1]
		if prev.IsZero() {
			return nil, &DomainError{Reason: fmt.Sprintf("period %d: rate over a zero base", i)}
		}
		rates = append(rates, values[i].Sub(prev).Div(prev).InexactFloat64())
	}
	return rates, nil
}
