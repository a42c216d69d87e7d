package postgres

import (
	"context"
	"fmt"

	"github.com/invorya/almacen-api/internal/domain/entity"
	"github.com/invorya/almacen-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del puerto StockMovementRepository sobre
// PostgreSQL (usable con pool o tx). El libro es append-only: este adaptador
// solo inserta y lee; no existe UPDATE ni DELETE sobre stock_movements en todo
// el repositorio.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create anota una entrada en el libro y asigna el ID (monótono por inserción).
func (r *StockMovementRepo) Create(mov *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (item_id, warehouse_id, user_id, movement_type, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		mov.ItemID, mov.WarehouseID, mov.UserID, mov.Type, mov.Quantity, mov.CreatedAt,
	).Scan(&mov.ID)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// List devuelve una página desnormalizada del libro en orden created_at DESC,
// id DESC. Los LEFT JOIN toleran referencias que ya no resuelven: los nombres
// quedan en NULL y la fila del libro nunca se descarta por eso.
func (r *StockMovementRepo) List(limit, offset int) ([]*entity.StockMovementRecord, error) {
	query := `
		SELECT
			sm.id,
			sm.movement_type,
			sm.quantity,
			sm.created_at,
			i.name  AS item_name,
			u.username AS user_name,
			w.name  AS warehouse_name,
			w.location AS warehouse_location
		FROM stock_movements sm
		LEFT JOIN items i ON sm.item_id = i.id
		LEFT JOIN users u ON sm.user_id = u.id
		LEFT JOIN warehouses w ON sm.warehouse_id = w.id
		ORDER BY sm.created_at DESC, sm.id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovementRecord
	for rows.Next() {
		var rec entity.StockMovementRecord
		if err := rows.Scan(&rec.ID, &rec.Type, &rec.Quantity, &rec.CreatedAt,
			&rec.ItemName, &rec.UserName, &rec.WarehouseName, &rec.WarehouseLocation); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Count cuenta todas las entradas del libro.
func (r *StockMovementRepo) Count() (int64, error) {
	var total int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM stock_movements`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count stock movements: %w", err)
	}
	return total, nil
}
