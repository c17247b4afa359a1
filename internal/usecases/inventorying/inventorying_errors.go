package inventorying

import "errors"

// Errores específicos del contexto de inventario
var (
	// ErrProductoNoEncontrado: el nombre no corresponde a ningún producto.
	// Es un error de usuario (404), no una falla del sistema.
	ErrProductoNoEncontrado = errors.New("producto no encontrado")

	// ErrProductoYaExiste: ya hay un producto con ese nombre exacto
	ErrProductoYaExiste = errors.New("este producto ya existe")

	// ErrNombreObligatorio: el nombre del producto vino vacío
	ErrNombreObligatorio = errors.New("el nombre del producto es obligatorio")
)
