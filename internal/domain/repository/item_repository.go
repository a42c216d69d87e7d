package repository

import (
	"time"

	"github.com/invorya/almacen-api/internal/domain/entity"
)

// ItemRepository puerto de persistencia para artículos.
// Las lecturas resuelven solo filas vivas (deleted_at IS NULL) y devuelven
// nil, nil cuando el artículo no existe.
type ItemRepository interface {
	Create(item *entity.Item) error // asigna ID
	GetByID(id int64) (*entity.Item, error)
	Update(item *entity.Item) error
	SoftDelete(id int64, deletedAt time.Time) error
	Search(name string, limit, offset int) ([]*entity.Item, error)
	CountSearch(name string) (int64, error)
}
