package domain

import "time"

// Producto representa un ítem del inventario identificado por nombre único.
// El stock puede expresarse en unidades sueltas o compuestas según los
// factores de empaque configurados (solo informativos para el frontend).
type Producto struct {
	ID                 int       `json:"id"`
	Nombre             string    `json:"nombre"`
	StockActual        int       `json:"stock_actual"`
	StockMinimo        int       `json:"stock_minimo"`
	UnidadesPorBandeja int       `json:"unidades_por_bandeja"`
	UnidadesPorBolsa   int       `json:"unidades_por_bolsa"`
	CreatedAt          time.Time `json:"created_at"`
}

// NuevoProductoRequest es el cuerpo de POST /admin/productos
type NuevoProductoRequest struct {
	Nombre             string `json:"nombre"`
	StockMinimo        int    `json:"stock_minimo"`
	StockInicial       int    `json:"stock_inicial"`
	UnidadesPorBandeja int    `json:"unidades_por_bandeja"`
	UnidadesPorBolsa   int    `json:"unidades_por_bolsa"`
}

// EditarProductoRequest es el cuerpo de PUT /admin/productos/:id
type EditarProductoRequest struct {
	StockMinimo        int  `json:"stock_minimo"`
	UnidadesPorBandeja *int `json:"unidades_por_bandeja,omitempty"`
	UnidadesPorBolsa   *int `json:"unidades_por_bolsa,omitempty"`
}
