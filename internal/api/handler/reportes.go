package handler

import (
	"net/http"
	"regexp"

	"github.com/rcondori/saltenas-erp-api/internal/usecases/reporting"
	"github.com/rcondori/saltenas-erp-api/pkg/apiErrors"
	"github.com/rcondori/saltenas-erp-api/pkg/log"
)

var mesPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// mesFiltro valida el parámetro opcional ?mes=YYYY-MM
func mesFiltro(w http.ResponseWriter, r *http.Request) (string, bool) {
	mes := r.URL.Query().Get("mes")
	if mes != "" && !mesPattern.MatchString(mes) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mes inválido. Use el formato YYYY-MM", nil)
		return "", false
	}
	return mes, true
}

// ReporteMensual devuelve el reporte por producto: entradas y salidas
// etiquetadas por sabor, agrupadas por mes
func ReporteMensual(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		mes, ok := mesFiltro(w, r)
		if !ok {
			return
		}

		reporte, err := service.ReporteMensual(mes)
		if err != nil {
			logger.WithError(err).Error("reportes: error generando reporte mensual")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error generando el reporte", nil)
			return
		}

		logger.WithFields(log.Fields{
			"meses": len(reporte),
			"mes":   mes,
		}).Info("reportes: reporte mensual generado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reporte); err != nil {
			logger.WithError(err).Error("reportes: error codificando respuesta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error enviando respuesta", nil)
		}
	}
}

// ResumenMensual devuelve la forma agregada del reporte: entradas, salidas y
// neto por mes, sin desglose por producto
func ResumenMensual(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		mes, ok := mesFiltro(w, r)
		if !ok {
			return
		}

		resumen, err := service.ResumenMensual(mes)
		if err != nil {
			logger.WithError(err).Error("reportes: error generando resumen mensual")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error generando el resumen", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resumen); err != nil {
			logger.WithError(err).Error("reportes: error codificando respuesta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error enviando respuesta", nil)
		}
	}
}
