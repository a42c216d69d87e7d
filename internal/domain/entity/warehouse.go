package entity

import "time"

// Warehouse representa una bodega donde se almacenan artículos.
type Warehouse struct {
	ID        int64
	Name      string
	Location  string
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
