package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/rcondori/saltenas-erp-api/internal/api/handler/router"
	"github.com/rcondori/saltenas-erp-api/internal/usecases/authenticating"
	"github.com/rcondori/saltenas-erp-api/internal/usecases/inventorying"
	"github.com/rcondori/saltenas-erp-api/internal/usecases/reporting"
	"github.com/rcondori/saltenas-erp-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(),
		},
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Inventario(service inventorying.InventoryService) []router.Route {
	return []router.Route{
		{
			Path:    "/inventario",
			Method:  http.MethodGet,
			Handler: VerInventario(service),
		},
		{
			Path:    "/registrar-movimiento",
			Method:  http.MethodPost,
			Handler: RegistrarMovimiento(service),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/admin/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func ProductosAdmin(service inventorying.InventoryService, auth authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/admin/productos",
			Method:      http.MethodPost,
			Handler:     CrearProducto(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(auth)},
		},
		{
			Path:        "/admin/productos/:id",
			Method:      http.MethodDelete,
			Handler:     BorrarProducto(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(auth)},
		},
		{
			Path:        "/admin/productos/:id",
			Method:      http.MethodPut,
			Handler:     EditarProducto(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(auth)},
		},
		{
			Path:        "/admin/alertas/stock-bajo",
			Method:      http.MethodGet,
			Handler:     AlertasStockBajo(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(auth)},
		},
	}
}

func Reportes(service reporting.ReportingService, auth authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/admin/reportes/mensual",
			Method:      http.MethodGet,
			Handler:     ReporteMensual(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(auth)},
		},
		{
			Path:        "/admin/reportes/mensual/resumen",
			Method:      http.MethodGet,
			Handler:     ResumenMensual(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(auth)},
		},
	}
}
