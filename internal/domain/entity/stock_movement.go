package entity

import "time"

// Tipos de movimiento del libro de stock (variante cerrada).
const (
	MovementTypeIN         = "IN"         // stock inicial al crear el artículo
	MovementTypeADJUSTMENT = "ADJUSTMENT" // edición que incrementa el stock
	MovementTypeOUT        = "OUT"        // edición que reduce el stock
	MovementTypeDELETE     = "DELETE"     // borrado lógico: anota el stock restante
)

// StockMovement es una entrada del libro de movimientos. Inmutable una vez
// creada: el libro es append-only y no existe operación de update ni delete
// sobre sus filas. Quantity siempre >= 0; la dirección la lleva Type, nunca el
// signo.
type StockMovement struct {
	ID          int64
	ItemID      int64
	WarehouseID int64
	UserID      int64
	Type        string
	Quantity    int64
	CreatedAt   time.Time
}

// StockMovementRecord fila desnormalizada del libro para listado y reporte.
// Los punteros quedan en nil cuando la referencia ya no resuelve; la fila del
// libro nunca se descarta por eso.
type StockMovementRecord struct {
	ID                int64
	Type              string
	Quantity          int64
	CreatedAt         time.Time
	ItemName          *string
	UserName          *string
	WarehouseName     *string
	WarehouseLocation *string
}
