package authenticating

import "errors"

// Errores específicos del contexto de autenticación
var (
	ErrClaveInvalida      = errors.New("clave de acceso inválida")
	ErrClaveNoConfigurada = errors.New("no hay clave de administrador configurada")
	ErrTokenInvalido      = errors.New("token inválido o expirado")
)
