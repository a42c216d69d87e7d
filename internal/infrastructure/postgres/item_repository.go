package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/almacen-api/internal/domain/entity"
	"github.com/invorya/almacen-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo artículo y asigna el ID generado por el almacén.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (name, description, current_stock, warehouse_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.Name, item.Description, item.CurrentStock, item.WarehouseID,
		item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo vivo por ID. Devuelve nil, nil si no existe o está borrado.
func (r *ItemRepo) GetByID(id int64) (*entity.Item, error) {
	query := `
		SELECT id, name, description, current_stock, warehouse_id, deleted_at, created_at, updated_at
		FROM items WHERE id = $1 AND deleted_at IS NULL`
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.Name, &it.Description, &it.CurrentStock, &it.WarehouseID,
		&it.DeletedAt, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// Update actualiza un artículo vivo existente.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, description = $3, current_stock = $4, warehouse_id = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.CurrentStock, item.WarehouseID, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// SoftDelete marca el artículo como borrado. La fila no se destruye: sus
// movimientos históricos siguen resolviendo el nombre en el libro.
func (r *ItemRepo) SoftDelete(id int64, deletedAt time.Time) error {
	query := `
		UPDATE items SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query, id, deletedAt)
	if err != nil {
		return fmt.Errorf("soft delete item: %w", err)
	}
	return nil
}

// Search lista artículos vivos cuyo nombre contiene la subcadena (case-insensitive;
// vacía = todos), ordenados por updated_at descendente.
func (r *ItemRepo) Search(name string, limit, offset int) ([]*entity.Item, error) {
	query := `
		SELECT id, name, description, current_stock, warehouse_id, deleted_at, created_at, updated_at
		FROM items
		WHERE deleted_at IS NULL AND name ILIKE '%' || $1 || '%'
		ORDER BY updated_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, name, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.CurrentStock, &it.WarehouseID,
			&it.DeletedAt, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// CountSearch cuenta los artículos vivos que matchean la búsqueda.
func (r *ItemRepo) CountSearch(name string) (int64, error) {
	query := `
		SELECT COUNT(*) FROM items
		WHERE deleted_at IS NULL AND name ILIKE '%' || $1 || '%'`
	var total int64
	if err := r.q.QueryRow(context.Background(), query, name).Scan(&total); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return total, nil
}
