package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los resolvers exponen el
// mensaje tal cual en la respuesta GraphQL, así que el texto es parte del contrato.
var (
	ErrNotFound          = errors.New("producto no encontrado")
	ErrInvalidState      = errors.New("el producto no está en la bodega de origen")
	ErrInsufficientStock = errors.New("stock insuficiente para la transferencia")
)
