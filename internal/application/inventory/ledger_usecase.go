package inventory

import (
	"github.com/invorya/almacen-api/internal/application/dto"
	"github.com/invorya/almacen-api/internal/domain/repository"
)

// LedgerUseCase lectura paginada del libro de movimientos. Solo lecturas: la
// autorización (solo admin) la aplica el caller en el router.
type LedgerUseCase struct {
	movRepo repository.StockMovementRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(movRepo repository.StockMovementRepository) *LedgerUseCase {
	return &LedgerUseCase{movRepo: movRepo}
}

// List devuelve una página del libro en orden created_at descendente (empates
// por id descendente, para que releer la misma página sea determinista).
// page por defecto 1, limit por defecto 10; totalPages = ceil(total/limit).
func (uc *LedgerUseCase) List(page, limit int) (*dto.MovementListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	total, err := uc.movRepo.Count()
	if err != nil {
		return nil, err
	}
	records, err := uc.movRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	data := make([]dto.MovementResponse, 0, len(records))
	for _, r := range records {
		data = append(data, dto.MovementResponse{
			ID:                r.ID,
			Type:              r.Type,
			Quantity:          r.Quantity,
			CreatedAt:         r.CreatedAt,
			ItemName:          r.ItemName,
			UserName:          r.UserName,
			WarehouseName:     r.WarehouseName,
			WarehouseLocation: r.WarehouseLocation,
		})
	}
	return &dto.MovementListResponse{
		Data: data,
		Pagination: dto.LedgerPagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: dto.TotalPages(total, limit),
		},
	}, nil
}
