package inventorying

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rcondori/saltenas-erp-api/infrastructure/repository"
	"github.com/rcondori/saltenas-erp-api/internal/domain"
	"github.com/rcondori/saltenas-erp-api/pkg/log"
)

// InventoryService es el ledger del inventario: aplica movimientos y
// mantiene el stock actual consistente con el historial.
type InventoryService interface {
	RegistrarMovimiento(productoNombre string, cantidad int, tipo string) (int, error)
	CrearProducto(req *domain.NuevoProductoRequest) (*domain.Producto, error)
	EliminarProducto(id int) error
	EditarProducto(id int, req *domain.EditarProductoRequest) error
	ListarInventario() ([]*domain.Producto, error)
	ProductosBajoMinimo() ([]*domain.Producto, error)
}

type Service struct {
	productoRepo   repository.ProductoRepository
	movimientoRepo repository.MovimientoRepository
}

func NewService(
	productoRepo repository.ProductoRepository,
	movimientoRepo repository.MovimientoRepository,
) InventoryService {
	return &Service{
		productoRepo:   productoRepo,
		movimientoRepo: movimientoRepo,
	}
}

// RegistrarMovimiento aplica una cantidad con signo al stock del producto y
// deja el registro en el historial. Devuelve el nuevo stock.
//
// Las dos escrituras van en orden fijo: primero el movimiento, después el
// stock. No hay transacción que las envuelva; ver la nota de consistencia en
// DESIGN.md antes de cambiar ese orden.
func (s *Service) RegistrarMovimiento(productoNombre string, cantidad int, tipo string) (int, error) {
	producto, err := s.productoRepo.GetByNombre(productoNombre)
	if err != nil {
		return 0, errors.Wrap(err, "error consultando producto")
	}
	if producto == nil {
		return 0, ErrProductoNoEncontrado
	}

	// El stock puede quedar negativo; es un estado legal que el supervisor
	// corrige con un AJUSTE_MANUAL.
	nuevoStock := producto.StockActual + cantidad

	movimiento := &domain.Movimiento{
		ProductoID: producto.ID,
		Cantidad:   cantidad,
		Tipo:       tipo,
		CreatedAt:  time.Now(),
	}

	if err := s.movimientoRepo.Insert(movimiento); err != nil {
		return 0, errors.Wrap(err, "error registrando movimiento")
	}

	if err := s.productoRepo.UpdateStock(producto.ID, nuevoStock); err != nil {
		return 0, errors.Wrap(err, "error actualizando stock")
	}

	log.L.WithFields(log.Fields{
		"producto":    producto.Nombre,
		"cantidad":    cantidad,
		"tipo":        tipo,
		"nuevo_stock": nuevoStock,
	}).Info("Movimiento registrado")

	return nuevoStock, nil
}

// CrearProducto da de alta un sabor nuevo. El stock inicial se asigna como
// campo directo, sin movimiento sintético en el historial.
func (s *Service) CrearProducto(req *domain.NuevoProductoRequest) (*domain.Producto, error) {
	if req.Nombre == "" {
		return nil, ErrNombreObligatorio
	}

	existente, err := s.productoRepo.GetByNombre(req.Nombre)
	if err != nil {
		return nil, errors.Wrap(err, "error consultando producto")
	}
	if existente != nil {
		return nil, ErrProductoYaExiste
	}

	producto := &domain.Producto{
		Nombre:             req.Nombre,
		StockActual:        req.StockInicial,
		StockMinimo:        req.StockMinimo,
		UnidadesPorBandeja: req.UnidadesPorBandeja,
		UnidadesPorBolsa:   req.UnidadesPorBolsa,
	}

	if err := s.productoRepo.Insert(producto); err != nil {
		// Respaldo ante la carrera entre el chequeo y el insert: el unique
		// de la base de datos manda.
		if errors.Is(err, repository.ErrNombreDuplicado) {
			return nil, ErrProductoYaExiste
		}
		return nil, errors.Wrap(err, "error creando producto")
	}

	log.L.WithFields(log.Fields{
		"producto":      producto.Nombre,
		"stock_inicial": producto.StockActual,
	}).Info("Producto creado")

	return producto, nil
}

// EliminarProducto borra primero el historial de movimientos y después el
// producto: el esquema no tiene cascada y el orden evita dejar historial
// huérfano salvo falla entre ambos borrados (el agregador lo tolera).
func (s *Service) EliminarProducto(id int) error {
	if err := s.movimientoRepo.DeleteByProductoID(id); err != nil {
		return errors.Wrap(err, "error eliminando historial del producto")
	}

	if err := s.productoRepo.Delete(id); err != nil {
		return errors.Wrap(err, "error eliminando producto")
	}

	log.L.WithField("producto_id", id).Info("Producto eliminado")

	return nil
}

// EditarProducto actualiza el mínimo de alerta y los factores de empaque.
// Un id inexistente no es error: el update simplemente no afecta filas.
func (s *Service) EditarProducto(id int, req *domain.EditarProductoRequest) error {
	err := s.productoRepo.UpdateSettings(id, req.StockMinimo, req.UnidadesPorBandeja, req.UnidadesPorBolsa)
	if err != nil {
		return errors.Wrap(err, "error editando producto")
	}

	return nil
}

// ListarInventario devuelve todos los productos ordenados por id ascendente
func (s *Service) ListarInventario() ([]*domain.Producto, error) {
	productos, err := s.productoRepo.List()
	if err != nil {
		return nil, errors.Wrap(err, "error listando inventario")
	}

	return productos, nil
}

// ProductosBajoMinimo devuelve los productos con stock en o debajo del
// mínimo de alerta configurado
func (s *Service) ProductosBajoMinimo() ([]*domain.Producto, error) {
	productos, err := s.productoRepo.ListLowStock()
	if err != nil {
		return nil, errors.Wrap(err, "error consultando productos bajo mínimo")
	}

	return productos, nil
}
