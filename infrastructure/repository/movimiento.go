package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/rcondori/saltenas-erp-api/infrastructure/database/postgres"
	"github.com/rcondori/saltenas-erp-api/internal/domain"
)

const (
	movimientosTable = "movimientos m"
)

type MovimientoRepository interface {
	Insert(movimiento *domain.Movimiento) error
	ListWithProducto() ([]*domain.MovimientoConProducto, error)
	DeleteByProductoID(productoID int) error
}

type movimientoRepository struct {
	conn *postgres.Connection
}

func NewMovimientoRepository(conn *postgres.Connection) MovimientoRepository {
	return &movimientoRepository{
		conn: conn,
	}
}

// Insert persiste el movimiento con el timestamp asignado por el ledger y
// completa el id generado por la base de datos.
func (r *movimientoRepository) Insert(movimiento *domain.Movimiento) error {
	query, args, err := squirrel.
		Insert("movimientos").
		Columns("producto_id", "cantidad", "tipo", "created_at").
		Values(
			movimiento.ProductoID,
			movimiento.Cantidad,
			movimiento.Tipo,
			movimiento.CreatedAt,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error construyendo la query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&movimiento.ID); err != nil {
		return fmt.Errorf("error insertando movimiento: %w", err)
	}

	return nil
}

// ListWithProducto devuelve todo el historial con el nombre del producto
// resuelto por LEFT JOIN. El nombre queda en NULL para movimientos huérfanos
// de un borrado parcialmente fallido; el agregador los descarta.
func (r *movimientoRepository) ListWithProducto() ([]*domain.MovimientoConProducto, error) {
	query, args, err := squirrel.
		Select("m.id, m.producto_id, m.cantidad, m.tipo, m.created_at, p.nombre").
		From(movimientosTable).
		LeftJoin("productos p ON p.id = m.producto_id").
		OrderBy("m.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error construyendo la query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error ejecutando la query: %w", err)
	}
	defer rows.Close()

	movimientos := make([]*domain.MovimientoConProducto, 0)
	for rows.Next() {
		movimiento := &domain.MovimientoConProducto{}
		err := rows.Scan(
			&movimiento.ID,
			&movimiento.ProductoID,
			&movimiento.Cantidad,
			&movimiento.Tipo,
			&movimiento.CreatedAt,
			&movimiento.ProductoNombre,
		)
		if err != nil {
			return nil, fmt.Errorf("error escaneando movimientos: %w", err)
		}
		movimientos = append(movimientos, movimiento)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return movimientos, nil
}

// DeleteByProductoID borra el historial completo de un producto. Se invoca
// antes de borrar el producto porque el esquema no tiene borrado en cascada.
func (r *movimientoRepository) DeleteByProductoID(productoID int) error {
	query, args, err := squirrel.
		Delete("movimientos").
		Where(squirrel.Eq{"producto_id": productoID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error construyendo la query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("error eliminando movimientos: %w", err)
	}

	return nil
}
