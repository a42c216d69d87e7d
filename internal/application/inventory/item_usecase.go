package inventory

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/invorya/almacen-api/internal/application/dto"
	"github.com/invorya/almacen-api/internal/domain"
	"github.com/invorya/almacen-api/internal/domain/entity"
	"github.com/invorya/almacen-api/internal/domain/ledger"
	"github.com/invorya/almacen-api/internal/domain/repository"
)

// ItemUseCase ciclo de vida de artículos: crear, consultar, editar y borrar
// (lógico), anotando cada cambio de stock en el libro de movimientos dentro de
// la misma transacción.
type ItemUseCase struct {
	txRunner      TxRunner
	itemRepo      repository.ItemRepository
	warehouseRepo repository.WarehouseRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(txRunner TxRunner, itemRepo repository.ItemRepository, warehouseRepo repository.WarehouseRepository) *ItemUseCase {
	return &ItemUseCase{txRunner: txRunner, itemRepo: itemRepo, warehouseRepo: warehouseRepo}
}

// Create crea un artículo con stock inicial > 0 y anota el movimiento IN.
// Valida antes de escribir: name y warehouseId requeridos, currentStock > 0
// (el contrato vigente no permite crear artículos vacíos).
func (uc *ItemUseCase) Create(ctx context.Context, userID int64, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.WarehouseID <= 0 || in.CurrentStock <= 0 {
		return nil, domain.ErrInvalidInput
	}
	wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	item := &entity.Item{
		Name:         in.Name,
		Description:  in.Description,
		CurrentStock: in.CurrentStock,
		WarehouseID:  in.WarehouseID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	decision := ledger.ClassifyCreate(in.CurrentStock)

	err = uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.StockMovementRepository) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		return movRepo.Create(&entity.StockMovement{
			ItemID:      item.ID,
			WarehouseID: in.WarehouseID,
			UserID:      userID,
			Type:        decision.Type,
			Quantity:    decision.Quantity,
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo vivo por ID. Devuelve nil si no existe o está borrado.
func (uc *ItemUseCase) GetByID(id int64) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// List lista artículos vivos con búsqueda por subcadena (case-insensitive sobre
// name; vacía = todos), ordenados por updated_at descendente y paginados.
func (uc *ItemUseCase) List(search string, page, limit int) (*dto.ItemListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 5
	}
	offset := (page - 1) * limit

	total, err := uc.itemRepo.CountSearch(search)
	if err != nil {
		return nil, err
	}
	list, err := uc.itemRepo.Search(search, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	totalPages := dto.TotalPages(total, limit)
	return &dto.ItemListResponse{
		Items: items,
		Pagination: dto.ItemsPagination{
			Page:       page,
			Limit:      limit,
			TotalCount: total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// Update edita un artículo (solo admin en el router) y clasifica el cambio de
// stock. Con warehouseId presente, un incremento anota ADJUSTMENT y una
// reducción anota OUT; sin cambio no se anota nada. Sin warehouseId el artículo
// se actualiza igual pero el cambio de stock queda sin auditar (peculiaridad
// del contrato; queda constancia en el log).
// Devuelve nil, nil si el artículo no existe o está borrado.
func (uc *ItemUseCase) Update(ctx context.Context, userID, id int64, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	previous := item.CurrentStock
	requested := previous
	if in.CurrentStock != nil {
		if *in.CurrentStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		requested = *in.CurrentStock
	}
	if in.WarehouseID != nil {
		wh, err := uc.warehouseRepo.GetByID(*in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, domain.ErrNotFound
		}
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	item.CurrentStock = requested
	if in.WarehouseID != nil {
		item.WarehouseID = *in.WarehouseID
	}
	now := time.Now()
	item.UpdatedAt = now

	decision := ledger.ClassifyEdit(previous, requested, in.WarehouseID)
	if decision == nil && requested != previous {
		// Cambio de stock sin bodega resoluble: se aplica pero no se audita.
		log.Warn().
			Int64("item_id", item.ID).
			Int64("previous", previous).
			Int64("requested", requested).
			Msg("cambio de stock sin warehouseId: no se anota movimiento en el libro")
	}

	err = uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.StockMovementRepository) error {
		if err := itemRepo.Update(item); err != nil {
			return err
		}
		if decision == nil {
			return nil
		}
		return movRepo.Create(&entity.StockMovement{
			ItemID:      item.ID,
			WarehouseID: *in.WarehouseID,
			UserID:      userID,
			Type:        decision.Type,
			Quantity:    decision.Quantity,
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete borra lógicamente un artículo (solo admin en el router) y anota un
// movimiento DELETE con el stock restante, incluso si es cero. El movimiento
// queda en la bodega indicada o, por defecto, en la del propio artículo.
func (uc *ItemUseCase) Delete(ctx context.Context, userID, id int64, warehouseID *int64) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	whID := item.WarehouseID
	if warehouseID != nil {
		whID = *warehouseID
	}
	decision := ledger.ClassifyDelete(item.CurrentStock)
	now := time.Now()

	return uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.StockMovementRepository) error {
		if err := itemRepo.SoftDelete(id, now); err != nil {
			return err
		}
		return movRepo.Create(&entity.StockMovement{
			ItemID:      item.ID,
			WarehouseID: whID,
			UserID:      userID,
			Type:        decision.Type,
			Quantity:    decision.Quantity,
			CreatedAt:   now,
		})
	})
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		Description:  it.Description,
		CurrentStock: it.CurrentStock,
		WarehouseID:  it.WarehouseID,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}
