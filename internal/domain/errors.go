package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// ErrStoreUnavailable y ErrCorruptData se propagan siempre al caller: el
// módulo de acceso a datos nunca devuelve colecciones vacías para ocultar
// un fallo del almacén.
var (
	ErrStoreUnavailable = errors.New("almacén local no disponible")
	ErrCorruptData      = errors.New("datos almacenados corruptos")
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
)
