package dto

import "time"

// MovementResponse fila desnormalizada del libro de movimientos.
// Los campos de nombre van en null cuando la referencia ya no resuelve.
type MovementResponse struct {
	ID                int64     `json:"id"`
	Type              string    `json:"type"`
	Quantity          int64     `json:"quantity"`
	CreatedAt         time.Time `json:"created_at"`
	ItemName          *string   `json:"item_name"`
	UserName          *string   `json:"user_name"`
	WarehouseName     *string   `json:"warehouse_name"`
	WarehouseLocation *string   `json:"warehouse_location"`
}

// MovementListResponse página del libro: {data, pagination}.
type MovementListResponse struct {
	Data       []MovementResponse `json:"data"`
	Pagination LedgerPagination   `json:"pagination"`
}
