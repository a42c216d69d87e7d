package entity

import "time"

// Item representa un artículo de inventario almacenado en una bodega.
// CurrentStock es la cantidad "viva" autoritativa del almacén; el porqué de cada
// cambio queda anotado en el libro de movimientos (StockMovement).
// DeletedAt no nulo = borrado lógico: excluido de listados y búsquedas, pero sus
// movimientos históricos siguen visibles en el libro.
type Item struct {
	ID           int64
	Name         string
	Description  string
	CurrentStock int64
	WarehouseID  int64
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
