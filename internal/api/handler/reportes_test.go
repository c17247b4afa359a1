package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rcondori/saltenas-erp-api/internal/domain"
	"github.com/rcondori/saltenas-erp-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
)

type stubReportingService struct {
	reporte domain.ReporteMensual
	resumen domain.ResumenMensual

	mesRecibido string
}

func (s *stubReportingService) ReporteMensual(mesFiltro string) (domain.ReporteMensual, error) {
	s.mesRecibido = mesFiltro
	return s.reporte, nil
}

func (s *stubReportingService) ResumenMensual(mesFiltro string) (domain.ResumenMensual, error) {
	s.mesRecibido = mesFiltro
	return s.resumen, nil
}

func TestReporteMensualHandler(t *testing.T) {
	t.Run("devuelve el reporte etiquetado por producto", func(t *testing.T) {
		service := &stubReportingService{
			reporte: domain.ReporteMensual{
				"2024-01": {"Entrada: Harina": 50, "Salida: Harina": 20},
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/admin/reportes/mensual", nil)
		rec := httptest.NewRecorder()

		ReporteMensual(service)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var reporte domain.ReporteMensual
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&reporte))
		assert.Equal(t, service.reporte, reporte)
	})

	t.Run("pasa el filtro de mes al servicio", func(t *testing.T) {
		service := &stubReportingService{reporte: domain.ReporteMensual{}}

		req := httptest.NewRequest(http.MethodGet, "/admin/reportes/mensual?mes=2024-02", nil)
		rec := httptest.NewRecorder()

		ReporteMensual(service)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2024-02", service.mesRecibido)
	})

	t.Run("mes con formato inválido responde 400", func(t *testing.T) {
		service := &stubReportingService{}

		req := httptest.NewRequest(http.MethodGet, "/admin/reportes/mensual?mes=enero", nil)
		rec := httptest.NewRecorder()

		ReporteMensual(service)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr apiErrors.APIError
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
		assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
	})
}

func TestResumenMensualHandler(t *testing.T) {
	service := &stubReportingService{
		resumen: domain.ResumenMensual{
			"2024-01": {Entradas: 50, Salidas: 20, Neto: 30},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/reportes/mensual/resumen", nil)
	rec := httptest.NewRecorder()

	ResumenMensual(service)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resumen domain.ResumenMensual
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resumen))
	assert.Equal(t, service.resumen, resumen)
}
