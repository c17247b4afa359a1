package domain

import "time"

// Tipos de movimiento conocidos. El campo es abierto: el caller puede enviar
// otras etiquetas y el ledger las acepta tal cual.
const (
	TipoProduccion   = "PRODUCCION"
	TipoVenta        = "VENTA"
	TipoAjusteManual = "AJUSTE_MANUAL"
)

// Movimiento es un evento inmutable de cantidad con signo sobre un producto.
// Cantidad positiva = entrada (producción), negativa = salida (venta).
type Movimiento struct {
	ID         int       `json:"id"`
	ProductoID int       `json:"producto_id"`
	Cantidad   int       `json:"cantidad"`
	Tipo       string    `json:"tipo"`
	CreatedAt  time.Time `json:"created_at"`
}

// MovimientoConProducto es la fila del join movimientos + productos usada por
// el reporte mensual. ProductoNombre queda en nil cuando el producto fue
// eliminado y el movimiento quedó huérfano.
type MovimientoConProducto struct {
	Movimiento
	ProductoNombre *string `json:"producto_nombre"`
}

// RegistrarMovimientoRequest es el cuerpo de POST /registrar-movimiento
type RegistrarMovimientoRequest struct {
	ProductoNombre string `json:"producto_nombre"`
	Cantidad       int    `json:"cantidad"`
	Tipo           string `json:"tipo"`
}

// RegistrarMovimientoResponse confirma el movimiento con el stock resultante
type RegistrarMovimientoResponse struct {
	Mensaje    string `json:"mensaje"`
	NuevoStock int    `json:"nuevo_stock"`
}
