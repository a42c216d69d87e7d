package repository

import "github.com/invorya/almacen-api/internal/domain/entity"

// WarehouseRepository puerto de persistencia para bodegas.
type WarehouseRepository interface {
	GetByID(id int64) (*entity.Warehouse, error) // nil, nil si no existe o está borrada
	ListActive() ([]*entity.Warehouse, error)
}
