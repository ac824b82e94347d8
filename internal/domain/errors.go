package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidState       = errors.New("transición de estado inválida")
	ErrDuplicatePending   = errors.New("ya existe una solicitud pendiente para este artículo")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	// ErrInvariantViolation lo devuelve el libro de stock cuando una operación
	// dejaría el stock en negativo. Si llega a ocurrir, el caller no validó antes.
	ErrInvariantViolation = errors.New("violación de invariante de stock")
)
