package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/rcondori/saltenas-erp-api/infrastructure/database/postgres"
	"github.com/rcondori/saltenas-erp-api/internal/domain"
)

const (
	productosTable   = "productos"
	productosColumns = "id, nombre, stock_actual, stock_minimo, unidades_por_bandeja, unidades_por_bolsa, created_at"
)

// ErrNombreDuplicado se devuelve cuando la base de datos rechaza un nombre
// de producto ya existente (unique_violation).
var ErrNombreDuplicado = errors.New("nombre de producto duplicado")

type ProductoRepository interface {
	GetByNombre(nombre string) (*domain.Producto, error)
	GetByID(id int) (*domain.Producto, error)
	List() ([]*domain.Producto, error)
	ListLowStock() ([]*domain.Producto, error)
	Insert(producto *domain.Producto) error
	UpdateStock(id int, nuevoStock int) error
	UpdateSettings(id int, stockMinimo int, unidadesPorBandeja, unidadesPorBolsa *int) error
	Delete(id int) error
}

type productoRepository struct {
	conn *postgres.Connection
}

func NewProductoRepository(conn *postgres.Connection) ProductoRepository {
	return &productoRepository{
		conn: conn,
	}
}

// GetByNombre busca un producto por nombre exacto (sensible a mayúsculas).
// Devuelve (nil, nil) cuando no existe.
func (r *productoRepository) GetByNombre(nombre string) (*domain.Producto, error) {
	query, args, err := squirrel.
		Select(productosColumns).
		From(productosTable).
		Where(squirrel.Eq{"nombre": nombre}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error construyendo la query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	producto, err := r.scanProducto(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error escaneando producto: %w", err)
	}

	return producto, nil
}

// GetByID devuelve (nil, nil) cuando el id no existe
func (r *productoRepository) GetByID(id int) (*domain.Producto, error) {
	query, args, err := squirrel.
		Select(productosColumns).
		From(productosTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error construyendo la query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	producto, err := r.scanProducto(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error escaneando producto: %w", err)
	}

	return producto, nil
}

// List devuelve todos los productos ordenados por id ascendente, para que el
// listado no salte de lugar al editar.
func (r *productoRepository) List() ([]*domain.Producto, error) {
	query, args, err := squirrel.
		Select(productosColumns).
		From(productosTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error construyendo la query: %w", err)
	}

	return r.queryProductos(query, args...)
}

// ListLowStock devuelve los productos con stock igual o debajo del mínimo
func (r *productoRepository) ListLowStock() ([]*domain.Producto, error) {
	query, args, err := squirrel.
		Select(productosColumns).
		From(productosTable).
		Where(squirrel.Expr("stock_actual <= stock_minimo")).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error construyendo la query: %w", err)
	}

	return r.queryProductos(query, args...)
}

func (r *productoRepository) Insert(producto *domain.Producto) error {
	query, args, err := squirrel.
		Insert(productosTable).
		Columns("nombre", "stock_actual", "stock_minimo", "unidades_por_bandeja", "unidades_por_bolsa").
		Values(
			producto.Nombre,
			producto.StockActual,
			producto.StockMinimo,
			producto.UnidadesPorBandeja,
			producto.UnidadesPorBolsa,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error construyendo la query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&producto.ID, &producto.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return ErrNombreDuplicado
		}
		return fmt.Errorf("error insertando producto: %w", err)
	}

	return nil
}

func (r *productoRepository) UpdateStock(id int, nuevoStock int) error {
	query, args, err := squirrel.
		Update(productosTable).
		Set("stock_actual", nuevoStock).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error construyendo la query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("error actualizando stock: %w", err)
	}

	return nil
}

// UpdateSettings actualiza el mínimo de alerta y los factores de empaque.
// No es un error que el id no exista: el UPDATE simplemente no afecta filas.
func (r *productoRepository) UpdateSettings(id int, stockMinimo int, unidadesPorBandeja, unidadesPorBolsa *int) error {
	builder := squirrel.
		Update(productosTable).
		Set("stock_minimo", stockMinimo).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if unidadesPorBandeja != nil {
		builder = builder.Set("unidades_por_bandeja", *unidadesPorBandeja)
	}
	if unidadesPorBolsa != nil {
		builder = builder.Set("unidades_por_bolsa", *unidadesPorBolsa)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("error construyendo la query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("error actualizando producto: %w", err)
	}

	return nil
}

func (r *productoRepository) Delete(id int) error {
	query, args, err := squirrel.
		Delete(productosTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error construyendo la query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("error eliminando producto: %w", err)
	}

	return nil
}

func (r *productoRepository) queryProductos(query string, args ...interface{}) ([]*domain.Producto, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error ejecutando la query: %w", err)
	}
	defer rows.Close()

	productos := make([]*domain.Producto, 0)
	for rows.Next() {
		producto, err := r.scanProductoRows(rows)
		if err != nil {
			return nil, fmt.Errorf("error escaneando productos: %w", err)
		}
		productos = append(productos, producto)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return productos, nil
}

func (r *productoRepository) scanProducto(row *sql.Row) (*domain.Producto, error) {
	producto := &domain.Producto{}

	err := row.Scan(
		&producto.ID,
		&producto.Nombre,
		&producto.StockActual,
		&producto.StockMinimo,
		&producto.UnidadesPorBandeja,
		&producto.UnidadesPorBolsa,
		&producto.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return producto, nil
}

func (r *productoRepository) scanProductoRows(rows *sql.Rows) (*domain.Producto, error) {
	producto := &domain.Producto{}

	err := rows.Scan(
		&producto.ID,
		&producto.Nombre,
		&producto.StockActual,
		&producto.StockMinimo,
		&producto.UnidadesPorBandeja,
		&producto.UnidadesPorBolsa,
		&producto.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return producto, nil
}
