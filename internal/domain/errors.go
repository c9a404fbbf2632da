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
	ErrNotProduced        = errors.New("el producto no es de producción propia")
	ErrEmptyOrder         = errors.New("el pedido no tiene productos")
	ErrMinDeliveryAmount  = errors.New("el pedido no alcanza el monto mínimo de domicilio")
)
