package scheduler

import (
	"errors"
	"testing"

	"github.com/rcondori/saltenas-erp-api/infrastructure/repository/mocks"
	"github.com/rcondori/saltenas-erp-api/internal/config"
	"github.com/rcondori/saltenas-erp-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testLowStockConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LowStockCheck.CronSchedule = "0 7 * * *"
	cfg.LowStockCheck.Enabled = true
	return cfg
}

func TestLowStockCheckService_RunCheck(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(productoRepo *mocks.MockProductoRepository)
		wantErr bool
	}{
		{
			name: "sin productos bajo mínimo",
			setup: func(productoRepo *mocks.MockProductoRepository) {
				productoRepo.EXPECT().ListLowStock().Return([]*domain.Producto{}, nil)
			},
		},
		{
			name: "con productos bajo mínimo",
			setup: func(productoRepo *mocks.MockProductoRepository) {
				productoRepo.EXPECT().ListLowStock().Return([]*domain.Producto{
					{ID: 1, Nombre: "Salteña de Carne", StockActual: 3, StockMinimo: 20},
					{ID: 2, Nombre: "Salteña de Pollo", StockActual: -2, StockMinimo: 10},
				}, nil)
			},
		},
		{
			name: "error del repositorio se propaga",
			setup: func(productoRepo *mocks.MockProductoRepository) {
				productoRepo.EXPECT().ListLowStock().Return(nil, errors.New("conexión perdida"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			productoRepo := mocks.NewMockProductoRepository(ctrl)
			tt.setup(productoRepo)

			service := NewLowStockCheckService(productoRepo, testLowStockConfig())

			err := service.RunCheck()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.False(t, service.lastRunAt.IsZero())
		})
	}
}

func TestLowStockCheckService_RunCheck_YaEnEjecucion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Sin expectativas: el guard debe cortar antes de tocar el repositorio
	productoRepo := mocks.NewMockProductoRepository(ctrl)

	service := NewLowStockCheckService(productoRepo, testLowStockConfig())
	service.checkRunning = true

	assert.NoError(t, service.RunCheck())
}
