package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrUsernameAlreadyExists = errors.New("el username ya está registrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrInsufficientStock     = errors.New("stock insuficiente")
	ErrNegativeStock         = errors.New("el ajuste dejaría el stock negativo")
	ErrCEOAlreadyExists      = errors.New("ya existe un usuario con rol CEO")
)

// StockError identifica el producto que impidió una venta o un ajuste.
// Envuelve ErrInsufficientStock o ErrNegativeStock, así los handlers pueden
// clasificar con errors.Is y a la vez reportar qué producto falló.
type StockError struct {
	ProductID   string
	ProductName string
	Requested   int64
	Available   int64
	Err         error
}

func (e *StockError) Error() string {
	return fmt.Sprintf("producto %q: %v (solicitado %d, disponible %d)",
		e.ProductName, e.Err, e.Requested, e.Available)
}

func (e *StockError) Unwrap() error { return e.Err }

// ProductNotFoundError señala qué producto de la solicitud no existe.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("producto %s: %v", e.ProductID, ErrNotFound)
}

func (e *ProductNotFoundError) Unwrap() error { return ErrNotFound }
