package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// RootHandler responde el mensaje de vida del sistema
func RootHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(map[string]string{
			"mensaje": "Sistema ERP Salteñas v2.0 Activo 🚀",
		})
		if err != nil {
			logrus.WithError(err).Warn("error respondiendo al liveness")
		}
	})
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			logrus.WithError(err).Warn("error respondiendo al healthcheck")
		}
	})
}
