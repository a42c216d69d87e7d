package inventory_test

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/almacen-api/internal/application/dto"
	"github.com/invorya/almacen-api/internal/application/inventory"
	"github.com/invorya/almacen-api/internal/domain"
	"github.com/invorya/almacen-api/internal/domain/entity"
	"github.com/invorya/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: implementan los puertos del dominio sin PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items  map[int64]*entity.Item
	nextID int64
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[int64]*entity.Item), nextID: 1}
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	item.ID = r.nextID
	r.nextID++
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(id int64) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok || it.DeletedAt != nil {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) SoftDelete(id int64, deletedAt time.Time) error {
	if it, ok := r.items[id]; ok {
		it.DeletedAt = &deletedAt
	}
	return nil
}

func (r *fakeItemRepo) alive(name string) []*entity.Item {
	var out []*entity.Item
	for _, it := range r.items {
		if it.DeletedAt != nil {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(it.Name), strings.ToLower(name)) {
			continue
		}
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out
}

func (r *fakeItemRepo) Search(name string, limit, offset int) ([]*entity.Item, error) {
	out := r.alive(name)
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeItemRepo) CountSearch(name string) (int64, error) {
	return int64(len(r.alive(name))), nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(mov *entity.StockMovement) error {
	mov.ID = int64(len(r.movements) + 1)
	cp := *mov
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) List(limit, offset int) ([]*entity.StockMovementRecord, error) {
	return nil, nil
}

func (r *fakeMovementRepo) Count() (int64, error) {
	return int64(len(r.movements)), nil
}

type fakeWarehouseRepo struct {
	warehouses map[int64]*entity.Warehouse
}

func (r *fakeWarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}

func (r *fakeWarehouseRepo) ListActive() ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		out = append(out, w)
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes, sin transacción.
type fakeTxRunner struct {
	itemRepo *fakeItemRepo
	movRepo  *fakeMovementRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return fn(r.itemRepo, r.movRepo)
}

type fixture struct {
	uc       *inventory.ItemUseCase
	itemRepo *fakeItemRepo
	movRepo  *fakeMovementRepo
}

func newFixture() *fixture {
	itemRepo := newFakeItemRepo()
	movRepo := &fakeMovementRepo{}
	whRepo := &fakeWarehouseRepo{warehouses: map[int64]*entity.Warehouse{
		1: {ID: 1, Name: "Main Warehouse", Location: "Jakarta"},
		2: {ID: 2, Name: "Secondary Warehouse", Location: "Bandung"},
	}}
	return &fixture{
		uc:       inventory.NewItemUseCase(&fakeTxRunner{itemRepo: itemRepo, movRepo: movRepo}, itemRepo, whRepo),
		itemRepo: itemRepo,
		movRepo:  movRepo,
	}
}

func mustCreate(t *testing.T, f *fixture, stock int64) *dto.ItemResponse {
	t.Helper()
	out, err := f.uc.Create(context.Background(), 9, dto.CreateItemRequest{
		Name: "Tornillos 3/8", CurrentStock: stock, WarehouseID: 1,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

func int64Ptr(v int64) *int64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Crear con stock 100 anota un movimiento IN por 100 del usuario que creó.
func TestItemCreate_AnotaMovimientoIN(t *testing.T) {
	f := newFixture()
	item := mustCreate(t, f, 100)

	require.Len(t, f.movRepo.movements, 1)
	mov := f.movRepo.movements[0]
	assert.Equal(t, entity.MovementTypeIN, mov.Type)
	assert.Equal(t, int64(100), mov.Quantity)
	assert.Equal(t, item.ID, mov.ItemID)
	assert.Equal(t, int64(1), mov.WarehouseID)
	assert.Equal(t, int64(9), mov.UserID)
}

// El contrato vigente no permite crear artículos con stock cero o negativo.
func TestItemCreate_RechazaStockCero(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Create(context.Background(), 9, dto.CreateItemRequest{
		Name: "Vacío", CurrentStock: 0, WarehouseID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.movRepo.movements, "no debe quedar asiento de un create rechazado")
}

// Bodega inexistente: se rechaza antes de escribir nada.
func TestItemCreate_BodegaInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Create(context.Background(), 9, dto.CreateItemRequest{
		Name: "Huérfano", CurrentStock: 10, WarehouseID: 99,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.movRepo.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — clasificación del cambio de stock
// ──────────────────────────────────────────────────────────────────────────────

// Reducir 100 → 80 con bodega anota OUT por 20.
func TestItemUpdate_ReduccionAnotaOUT(t *testing.T) {
	f := newFixture()
	item := mustCreate(t, f, 100)

	out, err := f.uc.Update(context.Background(), 9, item.ID, dto.UpdateItemRequest{
		CurrentStock: int64Ptr(80), WarehouseID: int64Ptr(1),
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, int64(80), out.CurrentStock)

	require.Len(t, f.movRepo.movements, 2, "IN del create + OUT del update")
	mov := f.movRepo.movements[1]
	assert.Equal(t, entity.MovementTypeOUT, mov.Type)
	assert.Equal(t, int64(20), mov.Quantity)
}

// Incrementar 50 → 75 con bodega anota ADJUSTMENT por 25.
func TestItemUpdate_IncrementoAnotaADJUSTMENT(t *testing.T) {
	f := newFixture()
	item := mustCreate(t, f, 50)

	_, err := f.uc.Update(context.Background(), 9, item.ID, dto.UpdateItemRequest{
		CurrentStock: int64Ptr(75), WarehouseID: int64Ptr(1),
	})
	require.NoError(t, err)

	mov := f.movRepo.movements[len(f.movRepo.movements)-1]
	assert.Equal(t, entity.MovementTypeADJUSTMENT, mov.Type)
	assert.Equal(t, int64(25), mov.Quantity)
}

// Editar sin cambiar el stock (solo nombre): ningún asiento nuevo.
func TestItemUpdate_SinCambioDeStockNoAnota(t *testing.T) {
	f := newFixture()
	item := mustCreate(t, f, 50)
	before := len(f.movRepo.movements)

	name := "Tornillos 1/2"
	out, err := f.uc.Update(context.Background(), 9, item.ID, dto.UpdateItemRequest{
		Name: &name, WarehouseID: int64Ptr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, "Tornillos 1/2", out.Name)
	assert.Len(t, f.movRepo.movements, before, "una edición sin cambio de stock no genera asiento")
}

// Cambio de stock sin warehouseId: el artículo se actualiza pero el libro
// no anota nada. Es el hueco de auditoría heredado del contrato.
func TestItemUpdate_SinBodegaActualizaPeroNoAudita(t *testing.T) {
	f := newFixture()
	item := mustCreate(t, f, 100)
	before := len(f.movRepo.movements)

	out, err := f.uc.Update(context.Background(), 9, item.ID, dto.UpdateItemRequest{
		CurrentStock: int64Ptr(40),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(40), out.CurrentStock, "el cambio de stock sí se aplica")
	assert.Len(t, f.movRepo.movements, before, "sin bodega no hay asiento en el libro")
}

// Stock negativo se rechaza.
func TestItemUpdate_RechazaStockNegativo(t *testing.T) {
	f := newFixture()
	item := mustCreate(t, f, 10)

	_, err := f.uc.Update(context.Background(), 9, item.ID, dto.UpdateItemRequest{
		CurrentStock: int64Ptr(-1), WarehouseID: int64Ptr(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Artículo inexistente: nil, nil (el handler lo traduce a 404).
func TestItemUpdate_ArticuloInexistente(t *testing.T) {
	f := newFixture()
	out, err := f.uc.Update(context.Background(), 9, 999, dto.UpdateItemRequest{
		CurrentStock: int64Ptr(5), WarehouseID: int64Ptr(1),
	})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete — borrado lógico + asiento DELETE
// ──────────────────────────────────────────────────────────────────────────────

// Borrar un artículo con stock 7 anota DELETE por 7 y lo saca de las lecturas.
func TestItemDelete_AnotaDELETEConStockRestante(t *testing.T) {
	f := newFixture()
	item := mustCreate(t, f, 7)

	err := f.uc.Delete(context.Background(), 9, item.ID, nil)
	require.NoError(t, err)

	mov := f.movRepo.movements[len(f.movRepo.movements)-1]
	assert.Equal(t, entity.MovementTypeDELETE, mov.Type)
	assert.Equal(t, int64(7), mov.Quantity)
	assert.Equal(t, item.WarehouseID, mov.WarehouseID, "sin override usa la bodega del artículo")

	got, err := f.uc.GetByID(item.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "un artículo borrado no resuelve por ID")
}

// El override ?warehouse= cambia la bodega del asiento DELETE.
func TestItemDelete_OverrideDeBodega(t *testing.T) {
	f := newFixture()
	item := mustCreate(t, f, 30)

	err := f.uc.Delete(context.Background(), 9, item.ID, int64Ptr(2))
	require.NoError(t, err)

	mov := f.movRepo.movements[len(f.movRepo.movements)-1]
	assert.Equal(t, int64(2), mov.WarehouseID)
}

// Borrar con stock en cero también anota DELETE, con cantidad 0.
func TestItemDelete_StockCeroTambienAnota(t *testing.T) {
	f := newFixture()
	item := mustCreate(t, f, 5)
	_, err := f.uc.Update(context.Background(), 9, item.ID, dto.UpdateItemRequest{
		CurrentStock: int64Ptr(0), WarehouseID: int64Ptr(1),
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), 9, item.ID, nil))
	mov := f.movRepo.movements[len(f.movRepo.movements)-1]
	assert.Equal(t, entity.MovementTypeDELETE, mov.Type)
	assert.Equal(t, int64(0), mov.Quantity)
}

// Borrar dos veces: el segundo intento no encuentra el artículo.
func TestItemDelete_DobleBorradoRetornaNotFound(t *testing.T) {
	f := newFixture()
	item := mustCreate(t, f, 3)

	require.NoError(t, f.uc.Delete(context.Background(), 9, item.ID, nil))
	err := f.uc.Delete(context.Background(), 9, item.ID, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List — búsqueda y paginación del catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestItemList_PaginaYCuenta(t *testing.T) {
	f := newFixture()
	for i := 0; i < 7; i++ {
		_, err := f.uc.Create(context.Background(), 9, dto.CreateItemRequest{
			Name: "Artículo", CurrentStock: int64(i + 1), WarehouseID: 1,
		})
		require.NoError(t, err)
	}

	out, err := f.uc.List("", 1, 5)
	require.NoError(t, err)
	assert.Len(t, out.Items, 5)
	assert.Equal(t, int64(7), out.Pagination.TotalCount)
	assert.Equal(t, 2, out.Pagination.TotalPages)
	assert.True(t, out.Pagination.HasNext)
	assert.False(t, out.Pagination.HasPrev)

	out, err = f.uc.List("", 2, 5)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.False(t, out.Pagination.HasNext)
	assert.True(t, out.Pagination.HasPrev)
}

func TestItemList_BusquedaCaseInsensitive(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Create(context.Background(), 9, dto.CreateItemRequest{
		Name: "Cable UTP Cat6", CurrentStock: 10, WarehouseID: 1,
	})
	require.NoError(t, err)
	_, err = f.uc.Create(context.Background(), 9, dto.CreateItemRequest{
		Name: "Guantes", CurrentStock: 10, WarehouseID: 1,
	})
	require.NoError(t, err)

	out, err := f.uc.List("cable", 1, 5)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Cable UTP Cat6", out.Items[0].Name)
}

// Los artículos borrados desaparecen del listado pero sus asientos quedan.
func TestItemList_ExcluyeBorrados(t *testing.T) {
	f := newFixture()
	item := mustCreate(t, f, 10)
	require.NoError(t, f.uc.Delete(context.Background(), 9, item.ID, nil))

	out, err := f.uc.List("", 1, 5)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, int64(0), out.Pagination.TotalCount)

	total, err := f.movRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), total, "IN y DELETE sobreviven al borrado del artículo")
}
