// Package scheduler contiene los servicios agendados de la aplicación
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rcondori/saltenas-erp-api/infrastructure/repository"
	"github.com/rcondori/saltenas-erp-api/internal/config"
	"github.com/rcondori/saltenas-erp-api/internal/domain"
	"github.com/sirupsen/logrus"
)

type LowStockCheckConfig struct {
	CronSchedule string
	Enabled      bool
}

// LowStockCheckService recorre el inventario una vez al día y deja en el log
// los productos que quedaron en o debajo de su mínimo de alerta.
type LowStockCheckService struct {
	scheduler    *gocron.Scheduler
	productoRepo repository.ProductoRepository
	config       LowStockCheckConfig
	checkRunning bool
	checkMutex   sync.Mutex
	lastRunAt    time.Time
}

func NewLowStockCheckService(
	productoRepo repository.ProductoRepository,
	cfg *config.Config,
) *LowStockCheckService {
	checkConfig := LowStockCheckConfig{
		CronSchedule: cfg.LowStockCheck.CronSchedule, // Default: 7h todos los días
		Enabled:      cfg.LowStockCheck.Enabled,      // Default: deshabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": checkConfig.CronSchedule,
	}).Info("Configuración del chequeo de stock bajo cargada")

	return &LowStockCheckService{
		scheduler:    scheduler,
		productoRepo: productoRepo,
		config:       checkConfig,
	}
}

func (s *LowStockCheckService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de chequeo de stock bajo deshabilitado por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de chequeo de stock bajo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunCheck(); err != nil {
			logrus.WithError(err).Error("Error en el chequeo de stock bajo")
		}
	})
	if err != nil {
		return fmt.Errorf("error agendando el chequeo de stock bajo: %w", err)
	}

	s.scheduler.StartAsync()

	// Detener el cron cuando se cancele el contexto de la aplicación
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de chequeo de stock bajo")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *LowStockCheckService) RunCheck() error {
	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	if s.checkRunning {
		logrus.Warn("El chequeo de stock bajo ya está en ejecución")
		return nil
	}

	s.checkRunning = true
	defer func() {
		s.checkRunning = false
		s.lastRunAt = time.Now()
	}()

	productos, err := s.productoRepo.ListLowStock()
	if err != nil {
		return fmt.Errorf("error consultando productos bajo mínimo: %w", err)
	}

	s.reportLowStock(productos)

	return nil
}

// reportLowStock deja constancia en el log de cada producto bajo mínimo
func (s *LowStockCheckService) reportLowStock(productos []*domain.Producto) {
	if len(productos) == 0 {
		logrus.Info("Chequeo de stock bajo: sin productos bajo mínimo")
		return
	}

	for _, producto := range productos {
		logrus.WithFields(logrus.Fields{
			"producto":     producto.Nombre,
			"stock_actual": producto.StockActual,
			"stock_minimo": producto.StockMinimo,
		}).Warn("Producto en o debajo del stock mínimo")
	}

	logrus.WithField("total", len(productos)).Warn("Chequeo de stock bajo completado con alertas")
}
