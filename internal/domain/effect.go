package domain

import "github.com/shopspring/decimal"

// StepKind clasifica un paso de un producto.
type StepKind int

const (
	StepNormal StepKind = iota
	StepEntry
	StepExit
)

// String devuelve el nombre legible del tipo de paso.
func (k StepKind) String() string {
	switch k {
	case StepEntry:
		return "entry"
	case StepExit:
		return "exit"
	default:
		return "normal"
	}
}

// Effect es la atribución del cambio de revenue de un producto entre dos pasos.
// Solo los campos de su Kind son distintos de cero.
type Effect struct {
	Kind         StepKind
	VolumeEffect decimal.Decimal
	PriceEffect  decimal.Decimal
	EntryRevenue decimal.Decimal
	ExitCost     decimal.Decimal
}

// Total devuelve la suma de los cuatro componentes.
func (e Effect) Total() decimal.Decimal {
	return e.VolumeEffect.Add(e.PriceEffect).Add(e.EntryRevenue).Add(e.ExitCost)
}

// ComputeEffect atribuye el cambio de revenue entre el paso anterior y el actual.
//
// Fórmulas:
//
//	entry  = q_prev == 0 && q_cur > 0   → entry_revenue = p_cur × q_cur
//	exit   = q_cur == 0 && q_prev > 0   → exit_cost     = −(p_prev × q_prev)
//	normal                              → volume = p_prev × (q_cur − q_prev)
//	                                      price  = q_cur × (p_cur − p_prev)
//
// Se asume que un producto no entra y sale dentro del mismo paso de muestreo:
// esa transición intermedia no es visible y se atribuye como paso normal.
func ComputeEffect(prevPrice, prevQty, curPrice, curQty decimal.Decimal) Effect {
	switch {
	case prevQty.IsZero() && curQty.IsPositive():
		return Effect{
			Kind:         StepEntry,
			EntryRevenue: curPrice.Mul(curQty),
		}
	case curQty.IsZero() && prevQty.IsPositive():
		return Effect{
			Kind:     StepExit,
			ExitCost: prevPrice.Mul(prevQty).Neg(),
		}
	default:
		return Effect{
			Kind:         StepNormal,
			VolumeEffect: prevPrice.Mul(curQty.Sub(prevQty)),
			PriceEffect:  curQty.Mul(curPrice.Sub(prevPrice)),
		}
	}
}
