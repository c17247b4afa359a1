// Package router arma el httprouter a partir de grupos de rutas declarativos
package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Route declara una ruta con sus middlewares propios. Los middlewares
// globales (logging, CORS, panic) se aplican fuera, sobre el Router entero.
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type Router struct {
	mux *httprouter.Router
}

type Option func(*Router)

// WithRoutes registra un grupo de rutas al construir el Router
func WithRoutes(routes ...Route) Option {
	return func(r *Router) {
		r.AddRoutes(routes...)
	}
}

func New(opts ...Option) Router {
	r := &Router{mux: httprouter.New()}

	for _, opt := range opts {
		opt(r)
	}

	return *r
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// AddRoutes registra cada ruta envolviendo su handler con los middlewares
// declarados. Se aplican del último al primero: el primero de la lista queda
// más afuera.
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler

		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.mux.Handler(route.Method, route.Path, handler)
	}
}
