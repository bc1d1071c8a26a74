package domain

import (
	"errors"
	"fmt"
)

// Sentinels para errors.Is. Cada error tipado se reporta como su sentinel.
var (
	ErrSchema           = errors.New("schema error")
	ErrInsufficientData = errors.New("insufficient data")
	ErrDomain           = errors.New("domain error")
)

// SchemaError indica que falta una columna requerida (o que la entrada no tiene forma válida).
type SchemaError struct {
	Row     int    // índice de la fila, -1 si no aplica
	Product string // producto afectado, vacío si no aplica
	Column  string // columna ausente, vacía si no aplica
	Reason  string
}

func (e *SchemaError) Error() string {
	switch {
	case e.Reason != "":
		return "schema error: " + e.Reason
	case e.Column != "":
		return fmt.Sprintf("schema error: row %d: product %q: missing column %q", e.Row, e.Product, e.Column)
	default:
		return "schema error"
	}
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// InsufficientDataError indica que la tabla no tiene al menos 2 filas.
type InsufficientDataError struct {
	Rows int
	Min  int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: got %d rows, need at least %d", e.Rows, e.Min)
}

func (e *InsufficientDataError) Unwrap() error { return ErrInsufficientData }

// DomainError indica una operación matemática sin resultado real.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return "domain error: " + e.Reason
}

func (e *DomainError) Unwrap() error { return ErrDomain }
