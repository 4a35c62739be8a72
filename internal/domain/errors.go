package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Taxonomía:
//   - Validación: entrada mal formada, se rechaza antes de tomar ningún lock.
//   - Negocio: la operación es válida en forma pero el estado actual la prohíbe;
//     se rechaza después de inspeccionar el estado, nunca después de escribir.
//   - Infraestructura: cualquier otro error (DB caída, deadlock, constraint al
//     commit); se propaga envuelto y el caller lo mapea a 500.
var (
	// Validación
	ErrInvalidQuantity        = errors.New("la cantidad debe ser un entero positivo")
	ErrInvalidTransactionType = errors.New("tipo de operación inválido")

	// Negocio
	ErrPartNotFound         = errors.New("repuesto no encontrado")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrStockCeilingExceeded = errors.New("stock máximo excedido")

	// Genéricos CRUD / auth
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrUserReferenced    = errors.New("el usuario tiene movimientos en el libro y no puede eliminarse")
	ErrUserAlreadyExists = errors.New("el nombre de usuario ya está registrado")
)

// IsBusinessRejection indica si err es un rechazo de validación o de regla de
// negocio (se mapea a 400); todo lo demás se trata como fallo de infraestructura.
func IsBusinessRejection(err error) bool {
	return errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidTransactionType) ||
		errors.Is(err, ErrPartNotFound) ||
		errors.Is(err, ErrInsufficientStock) ||
		errors.Is(err, ErrStockCeilingExceeded)
}
