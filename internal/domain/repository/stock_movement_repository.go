package repository

import "github.com/invorya/almacen-api/internal/domain/entity"

// StockMovementRepository puerto del libro de movimientos. El libro es
// append-only: solo Create y lecturas; ningún adaptador expone update ni delete.
// List devuelve filas desnormalizadas en orden created_at DESC, id DESC.
type StockMovementRepository interface {
	Create(mov *entity.StockMovement) error // asigna ID
	List(limit, offset int) ([]*entity.StockMovementRecord, error)
	Count() (int64, error)
}
