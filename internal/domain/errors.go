package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrPartNotFound     = errors.New("repuesto no encontrado")
	ErrCategoryNotFound = errors.New("categoría no encontrada")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
)

// InsufficientStockError indica que una salida (OUT) pide más unidades de las
// disponibles. Lleva ambas cantidades para que el cliente pueda mostrarlas.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d, solicitado %d", e.Available, e.Requested)
}

// IsInsufficientStock extrae un InsufficientStockError de la cadena de errores.
func IsInsufficientStock(err error) (*InsufficientStockError, bool) {
	var ise *InsufficientStockError
	if errors.As(err, &ise) {
		return ise, true
	}
	return nil, false
}
