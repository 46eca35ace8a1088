package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los casos de uso traducen
// cualquier fallo del store a uno de estos antes de cruzar su frontera.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrValidation         = errors.New("entrada inválida")
	ErrInvalidRole        = errors.New("rol inválido")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUserInactive       = errors.New("la cuenta está desactivada")
	ErrInvalidTransition  = errors.New("transición de estado inválida")
	ErrAccessDenied       = errors.New("acceso denegado al contenido")
	ErrConflict           = errors.New("conflicto con el estado actual")
	// ErrStore es opaco a propósito: el detalle del fallo de persistencia se
	// loguea, nunca se expone al caller.
	ErrStore = errors.New("error de persistencia")
)
