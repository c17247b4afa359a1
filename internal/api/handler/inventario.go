package handler

import (
	"errors"
	"net/http"

	"github.com/rcondori/saltenas-erp-api/internal/domain"
	"github.com/rcondori/saltenas-erp-api/internal/usecases/inventorying"
	"github.com/rcondori/saltenas-erp-api/pkg/apiErrors"
	"github.com/rcondori/saltenas-erp-api/pkg/log"
)

// VerInventario devuelve todos los productos ordenados por id, para que el
// listado no salte de lugar al editar
func VerInventario(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		productos, err := service.ListarInventario()
		if err != nil {
			logger.WithError(err).Error("inventario: error listando productos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error consultando el inventario", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(productos); err != nil {
			logger.WithError(err).Error("inventario: error codificando respuesta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error enviando respuesta", nil)
		}
	}
}

// RegistrarMovimiento aplica un movimiento de stock (producción, venta o
// ajuste) sobre un producto identificado por nombre
func RegistrarMovimiento(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.RegistrarMovimientoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Error("movimiento: error decodificando requisición")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decodificando la requisición", nil)
			return
		}

		if req.ProductoNombre == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "producto_nombre es obligatorio", nil)
			return
		}

		nuevoStock, err := service.RegistrarMovimiento(req.ProductoNombre, req.Cantidad, req.Tipo)
		if err != nil {
			if errors.Is(err, inventorying.ErrProductoNoEncontrado) {
				apiErrors.WriteError(w, apiErrors.ErrProductoNotFound,
					"Producto '"+req.ProductoNombre+"' no encontrado.", nil)
				return
			}

			logger.WithError(err).Error("movimiento: error registrando movimiento")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error registrando el movimiento", nil)
			return
		}

		resp := domain.RegistrarMovimientoResponse{
			Mensaje:    "Ok",
			NuevoStock: nuevoStock,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.WithError(err).Error("movimiento: error codificando respuesta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error enviando respuesta", nil)
		}
	}
}
