package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/rcondori/saltenas-erp-api/infrastructure/repository/mocks"
	"github.com/rcondori/saltenas-erp-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func nombre(s string) *string {
	return &s
}

func movimiento(id int, productoNombre *string, cantidad int, createdAt time.Time) *domain.MovimientoConProducto {
	return &domain.MovimientoConProducto{
		Movimiento: domain.Movimiento{
			ID:        id,
			Cantidad:  cantidad,
			CreatedAt: createdAt,
		},
		ProductoNombre: productoNombre,
	}
}

func TestService_ReporteMensual(t *testing.T) {
	enero := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	febrero := time.Date(2024, time.February, 3, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		mesFiltro   string
		movimientos []*domain.MovimientoConProducto
		want        domain.ReporteMensual
	}{
		{
			name: "agrupa por mes y etiqueta entradas y salidas",
			movimientos: []*domain.MovimientoConProducto{
				movimiento(1, nombre("Harina"), 50, enero),
				movimiento(2, nombre("Harina"), -20, enero),
				movimiento(3, nombre("Carne"), 10, febrero),
			},
			want: domain.ReporteMensual{
				"2024-01": {"Entrada: Harina": 50, "Salida: Harina": 20},
				"2024-02": {"Entrada: Carne": 10},
			},
		},
		{
			name: "acumula varios movimientos bajo la misma etiqueta",
			movimientos: []*domain.MovimientoConProducto{
				movimiento(1, nombre("Harina"), 30, enero),
				movimiento(2, nombre("Harina"), 20, enero.Add(48*time.Hour)),
				movimiento(3, nombre("Harina"), -5, enero.Add(72*time.Hour)),
			},
			want: domain.ReporteMensual{
				"2024-01": {"Entrada: Harina": 50, "Salida: Harina": 5},
			},
		},
		{
			name: "movimientos huérfanos no aparecen en el reporte",
			movimientos: []*domain.MovimientoConProducto{
				movimiento(1, nombre("Harina"), 50, enero),
				movimiento(2, nil, -99, enero), // producto borrado
			},
			want: domain.ReporteMensual{
				"2024-01": {"Entrada: Harina": 50},
			},
		},
		{
			name: "cantidad cero cuenta como salida de magnitud cero",
			movimientos: []*domain.MovimientoConProducto{
				movimiento(1, nombre("Harina"), 0, enero),
			},
			want: domain.ReporteMensual{
				"2024-01": {"Salida: Harina": 0},
			},
		},
		{
			name:      "el filtro de mes descarta los demás meses",
			mesFiltro: "2024-02",
			movimientos: []*domain.MovimientoConProducto{
				movimiento(1, nombre("Harina"), 50, enero),
				movimiento(2, nombre("Carne"), 10, febrero),
			},
			want: domain.ReporteMensual{
				"2024-02": {"Entrada: Carne": 10},
			},
		},
		{
			name:        "sin movimientos devuelve un reporte vacío",
			movimientos: []*domain.MovimientoConProducto{},
			want:        domain.ReporteMensual{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			movimientoRepo := mocks.NewMockMovimientoRepository(ctrl)
			movimientoRepo.EXPECT().ListWithProducto().Return(tt.movimientos, nil)

			service := NewService(movimientoRepo)

			reporte, err := service.ReporteMensual(tt.mesFiltro)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, reporte)
		})
	}
}

// El reporte se recalcula desde el historial completo: dos lecturas sobre
// los mismos movimientos producen el mismo resultado.
func TestService_ReporteMensual_Idempotente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enero := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	movimientos := []*domain.MovimientoConProducto{
		movimiento(1, nombre("Harina"), 50, enero),
		movimiento(2, nombre("Harina"), -20, enero),
	}

	movimientoRepo := mocks.NewMockMovimientoRepository(ctrl)
	movimientoRepo.EXPECT().ListWithProducto().Return(movimientos, nil).Times(2)

	service := NewService(movimientoRepo)

	primero, err := service.ReporteMensual("")
	assert.NoError(t, err)
	segundo, err := service.ReporteMensual("")
	assert.NoError(t, err)
	assert.Equal(t, primero, segundo)
}

func TestService_ResumenMensual(t *testing.T) {
	enero := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	febrero := time.Date(2024, time.February, 3, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		mesFiltro   string
		movimientos []*domain.MovimientoConProducto
		want        domain.ResumenMensual
	}{
		{
			name: "suma entradas y salidas por mes",
			movimientos: []*domain.MovimientoConProducto{
				movimiento(1, nombre("Harina"), 50, enero),
				movimiento(2, nombre("Harina"), -20, enero),
				movimiento(3, nombre("Carne"), 10, febrero),
				movimiento(4, nombre("Carne"), -4, febrero),
			},
			want: domain.ResumenMensual{
				"2024-01": {Entradas: 50, Salidas: 20, Neto: 30},
				"2024-02": {Entradas: 10, Salidas: 4, Neto: 6},
			},
		},
		{
			name: "ignora huérfanos igual que el reporte detallado",
			movimientos: []*domain.MovimientoConProducto{
				movimiento(1, nil, 100, enero),
				movimiento(2, nombre("Harina"), -20, enero),
			},
			want: domain.ResumenMensual{
				"2024-01": {Entradas: 0, Salidas: 20, Neto: -20},
			},
		},
		{
			name:      "respeta el filtro de mes",
			mesFiltro: "2024-01",
			movimientos: []*domain.MovimientoConProducto{
				movimiento(1, nombre("Harina"), 50, enero),
				movimiento(2, nombre("Carne"), 10, febrero),
			},
			want: domain.ResumenMensual{
				"2024-01": {Entradas: 50, Salidas: 0, Neto: 50},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			movimientoRepo := mocks.NewMockMovimientoRepository(ctrl)
			movimientoRepo.EXPECT().ListWithProducto().Return(tt.movimientos, nil)

			service := NewService(movimientoRepo)

			resumen, err := service.ResumenMensual(tt.mesFiltro)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, resumen)
		})
	}
}

func TestService_ReporteMensual_ErrorDelRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movimientoRepo := mocks.NewMockMovimientoRepository(ctrl)
	movimientoRepo.EXPECT().
		ListWithProducto().
		Return(nil, errors.New("conexión perdida"))

	service := NewService(movimientoRepo)

	reporte, err := service.ReporteMensual("")
	assert.Error(t, err)
	assert.Nil(t, reporte)
}
