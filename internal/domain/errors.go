package domain

import "errors"

// Clases de error de dominio (sin dependencias externas). La capa HTTP decide
// el status con errors.Is; ningún handler inspecciona tipos concretos.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// Error error de dominio con mensaje para el cliente. Envuelve una de las
// clases de arriba, de modo que errors.Is(err, ErrNotFound) funcione y el
// mensaje llegue tal cual al campo "mensaje" de la respuesta.
type Error struct {
	kind    error
	mensaje string
}

// NewError construye un error de dominio de la clase kind con el mensaje dado.
func NewError(kind error, mensaje string) *Error {
	return &Error{kind: kind, mensaje: mensaje}
}

func (e *Error) Error() string { return e.mensaje }

func (e *Error) Unwrap() error { return e.kind }
