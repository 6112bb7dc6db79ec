package domain

import "errors"

// Errores de dominio (sin dependencias externas). El handler HTTP los mapea
// a códigos de estado; los adaptadores los envuelven con %w cuando agregan contexto.
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrCustomerNotFound = errors.New("cliente no encontrado")

	// ErrTypeMismatch el tipo de cliente no corresponde con el tipo de producto.
	ErrTypeMismatch = errors.New("el tipo de cliente no coincide con el tipo de producto")
	// ErrOverdueDebt el cliente tiene deuda vencida y no puede adquirir nuevos productos.
	ErrOverdueDebt = errors.New("el cliente tiene deuda vencida y no puede crear un nuevo crédito")
	// ErrOnlyOneCredit un cliente personal solo puede tener un crédito activo a la vez.
	ErrOnlyOneCredit = errors.New("un cliente personal solo puede tener un crédito activo")

	// ErrCustomerServiceUnavailable el servicio Customer no responde o el breaker está abierto.
	ErrCustomerServiceUnavailable = errors.New("el servicio de clientes no está disponible, no se puede continuar con la operación")
	// ErrAccountServiceUnavailable el servicio Account no responde o el breaker está abierto.
	ErrAccountServiceUnavailable = errors.New("el servicio de cuentas no está disponible, no se puede continuar con la operación")
)
