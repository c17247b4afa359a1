package reporting

import (
	"github.com/pkg/errors"
	"github.com/rcondori/saltenas-erp-api/infrastructure/repository"
	"github.com/rcondori/saltenas-erp-api/internal/domain"
)

// ReportingService produce los reportes mensuales derivados del historial de
// movimientos. No persiste nada: cada llamada recalcula desde cero.
type ReportingService interface {
	ReporteMensual(mesFiltro string) (domain.ReporteMensual, error)
	ResumenMensual(mesFiltro string) (domain.ResumenMensual, error)
}

type Service struct {
	movimientoRepo repository.MovimientoRepository
}

func NewService(movimientoRepo repository.MovimientoRepository) ReportingService {
	return &Service{
		movimientoRepo: movimientoRepo,
	}
}

// ReporteMensual agrupa el historial por mes y por producto, separando
// entradas y salidas en contadores etiquetados. mesFiltro ("YYYY-MM") es
// opcional; vacío devuelve todos los meses.
func (s *Service) ReporteMensual(mesFiltro string) (domain.ReporteMensual, error) {
	movimientos, err := s.movimientoRepo.ListWithProducto()
	if err != nil {
		return nil, errors.Wrap(err, "error consultando historial de movimientos")
	}

	reporte := domain.ReporteMensual{}

	for _, mov := range movimientos {
		// Movimiento huérfano de un borrado parcialmente fallido: se omite
		if mov.ProductoNombre == nil {
			continue
		}

		mes := mov.CreatedAt.Format("2006-01")
		if mesFiltro != "" && mes != mesFiltro {
			continue
		}

		contadores, ok := reporte[mes]
		if !ok {
			contadores = map[string]int{}
			reporte[mes] = contadores
		}

		if mov.Cantidad > 0 {
			contadores["Entrada: "+*mov.ProductoNombre] += mov.Cantidad
		} else {
			// Cantidad cero cuenta como salida de magnitud cero
			contadores["Salida: "+*mov.ProductoNombre] += -mov.Cantidad
		}
	}

	return reporte, nil
}

// ResumenMensual es la forma agregada histórica del reporte: entradas,
// salidas y neto por mes, sin desglose por producto.
func (s *Service) ResumenMensual(mesFiltro string) (domain.ResumenMensual, error) {
	movimientos, err := s.movimientoRepo.ListWithProducto()
	if err != nil {
		return nil, errors.Wrap(err, "error consultando historial de movimientos")
	}

	resumen := domain.ResumenMensual{}

	for _, mov := range movimientos {
		if mov.ProductoNombre == nil {
			continue
		}

		mes := mov.CreatedAt.Format("2006-01")
		if mesFiltro != "" && mes != mesFiltro {
			continue
		}

		totales, ok := resumen[mes]
		if !ok {
			totales = &domain.TotalesMes{}
			resumen[mes] = totales
		}

		if mov.Cantidad > 0 {
			totales.Entradas += mov.Cantidad
		} else {
			// En positivo, para medir volumen
			totales.Salidas += -mov.Cantidad
		}

		totales.Neto += mov.Cantidad
	}

	return resumen, nil
}
