package dto

import "time"

// CreateItemRequest entrada para crear un artículo. El contrato vigente exige
// stock inicial > 0: no se puede crear un artículo vacío.
type CreateItemRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Description  string `json:"description"`
	CurrentStock int64  `json:"currentStock" validate:"required,gt=0"`
	WarehouseID  int64  `json:"warehouseId" validate:"required,gt=0"`
}

// UpdateItemRequest entrada para editar un artículo (solo admin).
// WarehouseID es opcional: sin bodega resoluble, un cambio de stock se aplica
// pero no se audita en el libro.
type UpdateItemRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description"`
	CurrentStock *int64  `json:"currentStock" validate:"omitempty,gte=0"`
	WarehouseID  *int64  `json:"warehouseId" validate:"omitempty,gt=0"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CurrentStock int64     `json:"current_stock"`
	WarehouseID  int64     `json:"warehouse_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ItemListResponse página de artículos.
type ItemListResponse struct {
	Items      []ItemResponse  `json:"items"`
	Pagination ItemsPagination `json:"pagination"`
}
