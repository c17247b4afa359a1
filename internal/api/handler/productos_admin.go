package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/rcondori/saltenas-erp-api/internal/domain"
	"github.com/rcondori/saltenas-erp-api/internal/usecases/inventorying"
	"github.com/rcondori/saltenas-erp-api/pkg/apiErrors"
	"github.com/rcondori/saltenas-erp-api/pkg/log"
)

// CrearProducto da de alta un sabor nuevo en el catálogo
func CrearProducto(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.NuevoProductoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Error("productos: error decodificando requisición")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decodificando la requisición", nil)
			return
		}

		producto, err := service.CrearProducto(&req)
		if err != nil {
			if errors.Is(err, inventorying.ErrProductoYaExiste) {
				apiErrors.WriteError(w, apiErrors.ErrProductoAlreadyExists, "Este producto ya existe", nil)
				return
			}
			if errors.Is(err, inventorying.ErrNombreObligatorio) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "nombre es obligatorio", nil)
				return
			}

			logger.WithError(err).Error("productos: error creando producto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error creando el producto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(map[string]any{
			"mensaje":  "Producto creado exitosamente",
			"producto": producto,
		})
		if err != nil {
			logger.WithError(err).Error("productos: error codificando respuesta")
		}
	}
}

// BorrarProducto elimina un producto junto con todo su historial. No es un
// error que el id no exista.
func BorrarProducto(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := productoID(w, r)
		if !ok {
			return
		}

		if err := service.EliminarProducto(id); err != nil {
			logger.WithError(err).Error("productos: error eliminando producto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error eliminando el producto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{"mensaje": "Producto eliminado"}); err != nil {
			logger.WithError(err).Error("productos: error codificando respuesta")
		}
	}
}

// EditarProducto actualiza el mínimo de alerta y los factores de empaque
func EditarProducto(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := productoID(w, r)
		if !ok {
			return
		}

		var req domain.EditarProductoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Error("productos: error decodificando requisición")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decodificando la requisición", nil)
			return
		}

		if err := service.EditarProducto(id, &req); err != nil {
			logger.WithError(err).Error("productos: error editando producto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error editando el producto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{"mensaje": "Configuración actualizada"}); err != nil {
			logger.WithError(err).Error("productos: error codificando respuesta")
		}
	}
}

// AlertasStockBajo lista los productos en o debajo de su stock mínimo
func AlertasStockBajo(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		productos, err := service.ProductosBajoMinimo()
		if err != nil {
			logger.WithError(err).Error("alertas: error consultando stock bajo")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error consultando alertas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(productos); err != nil {
			logger.WithError(err).Error("alertas: error codificando respuesta")
		}
	}
}

// productoID extrae y valida el parámetro :id de la URL
func productoID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID del producto no proporcionado", nil)
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID del producto inválido", nil)
		return 0, false
	}

	return id, true
}
