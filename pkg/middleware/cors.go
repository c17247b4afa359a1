package middleware

import "net/http"

// Orígenes del frontend: entornos locales de desarrollo y el deploy de Vercel
var allowedOrigins = map[string]bool{
	"http://localhost:3000":               true,
	"http://localhost:5173":               true,
	"https://saltenas-erp-web.vercel.app": true,
}

// Cors responde los preflight y marca las respuestas para los orígenes
// permitidos. Un origen desconocido no recibe cabeceras CORS.
func Cors() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); allowedOrigins[origin] {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Requested-With")
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Max-Age", "86400")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
