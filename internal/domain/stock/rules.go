// Package stock contiene la tabla de reglas de validación de movimientos
// (servicio de dominio puro, sin dependencias de almacenamiento).
package stock

import (
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ValidateRequest valida la forma de la petición (cantidad y tipo) sin mirar
// estado alguno. Es el filtro barato que corre antes de tomar el lock de fila.
func ValidateRequest(transType string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, quantity)
	}
	switch transType {
	case entity.TransTypeIN, entity.TransTypeOUT, entity.TransTypeANOMALY:
		return nil
	}
	return fmt.Errorf("%w: %q", domain.ErrInvalidTransactionType, transType)
}

// Apply aplica la tabla de reglas a un estado de stock leído bajo lock y
// devuelve el nuevo nivel, o un rechazo tipado con el detalle del estado.
//
//	IN:      stock + qty; si hay techo y lo supera → ErrStockCeilingExceeded.
//	OUT:     stock - qty; si stock < qty → ErrInsufficientStock.
//	ANOMALY: misma guarda y cálculo que OUT, pero queda registrado como merma
//	         para que reporting distinga salida deliberada de pérdida.
//
// stockMin es informativo (clasificación de stock bajo en reportes) y nunca
// bloquea un movimiento. Función pura: mismos argumentos, mismo resultado.
func Apply(transType string, quantity, current, stockMin int, stockMax *int) (int, error) {
	_ = stockMin // solo reporting

	if err := ValidateRequest(transType, quantity); err != nil {
		return 0, err
	}

	switch transType {
	case entity.TransTypeIN:
		next := current + quantity
		if stockMax != nil && next > *stockMax {
			return 0, fmt.Errorf("%w: entrada de %d dejaría el stock en %d, por encima del máximo %d",
				domain.ErrStockCeilingExceeded, quantity, next, *stockMax)
		}
		return next, nil
	case entity.TransTypeOUT:
		if current < quantity {
			return 0, fmt.Errorf("%w: stock actual %d, salida solicitada %d",
				domain.ErrInsufficientStock, current, quantity)
		}
		return current - quantity, nil
	case entity.TransTypeANOMALY:
		if current < quantity {
			return 0, fmt.Errorf("%w: stock actual %d, merma reportada %d",
				domain.ErrInsufficientStock, current, quantity)
		}
		return current - quantity, nil
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTransactionType, transType)
}

// Status clasifica el nivel de stock respecto a sus límites (solo reporting).
// El sobre-stock solo aplica si hay techo configurado.
func Status(current, stockMin int, stockMax *int) string {
	switch {
	case current == 0:
		return entity.StockStatusOut
	case current < stockMin:
		return entity.StockStatusLow
	case stockMax != nil && current > *stockMax:
		return entity.StockStatusOver
	}
	return entity.StockStatusNormal
}
