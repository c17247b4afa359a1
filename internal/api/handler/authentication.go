package handler

import (
	"errors"
	"net/http"

	"github.com/rcondori/saltenas-erp-api/internal/domain"
	"github.com/rcondori/saltenas-erp-api/internal/usecases/authenticating"
	"github.com/rcondori/saltenas-erp-api/pkg/apiErrors"
	"github.com/rcondori/saltenas-erp-api/pkg/log"
)

// Login intercambia la clave de supervisor por un token Bearer para los
// endpoints /admin
func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Error("login: error decodificando requisición")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decodificando la requisición", nil)
			return
		}

		if req.Clave == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "clave es obligatoria", nil)
			return
		}

		token, err := service.Login(req.Clave)
		if err != nil {
			if errors.Is(err, authenticating.ErrClaveInvalida) ||
				errors.Is(err, authenticating.ErrClaveNoConfigurada) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Clave de acceso inválida", nil)
				return
			}

			logger.WithError(err).Error("login: error emitiendo token")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error emitiendo el token", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(domain.LoginResponse{Token: token}); err != nil {
			logger.WithError(err).Error("login: error codificando respuesta")
		}
	}
}
