package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrBeerNotFound          = errors.New("cerveza no encontrada")
	ErrBeerAlreadyRegistered = errors.New("cerveza ya registrada")
	ErrStockExceeded         = errors.New("ajuste fuera de los límites de stock")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
)
