// seed puebla la base con datos de arranque: un usuario admin, dos bodegas y
// artículos de demostración. Los artículos se crean vía el caso de uso para que
// cada uno deje su movimiento IN en el libro, igual que en producción.
//
// Uso: go run ./cmd/seed
// El password del admin se toma de SEED_ADMIN_PASSWORD (default "adminpass").
package main

import (
	"context"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/invorya/almacen-api/internal/application/dto"
	"github.com/invorya/almacen-api/internal/application/inventory"
	"github.com/invorya/almacen-api/internal/domain/entity"
	"github.com/invorya/almacen-api/internal/infrastructure/postgres"
	"github.com/invorya/almacen-api/pkg/config"
	"github.com/invorya/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	itemUC := inventory.NewItemUseCase(txRunner, itemRepo, warehouseRepo)

	// 1. Usuario admin (idempotente por email)
	adminEmail := "admin@almacen.local"
	admin, err := userRepo.GetByEmail(adminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar admin")
	}
	if admin == nil {
		password := os.Getenv("SEED_ADMIN_PASSWORD")
		if password == "" {
			password = "adminpass"
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password")
		}
		now := time.Now()
		admin = &entity.User{
			Username:     "admin",
			Email:        adminEmail,
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("crear admin")
		}
		log.Info().Int64("user_id", admin.ID).Msg("usuario admin creado")
	} else {
		log.Info().Int64("user_id", admin.ID).Msg("usuario admin ya existe")
	}

	// 2. Bodegas (idempotente por name)
	warehouses := []struct{ name, location string }{
		{"Main Warehouse", "Jakarta"},
		{"Secondary Warehouse", "Bandung"},
	}
	warehouseIDs := make([]int64, 0, len(warehouses))
	for _, w := range warehouses {
		var id int64
		err := pool.QueryRow(ctx, `
			INSERT INTO warehouses (name, location)
			VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET location = EXCLUDED.location
			RETURNING id`,
			w.name, w.location,
		).Scan(&id)
		if err != nil {
			log.Fatal().Err(err).Str("warehouse", w.name).Msg("crear bodega")
		}
		warehouseIDs = append(warehouseIDs, id)
		log.Info().Int64("warehouse_id", id).Str("name", w.name).Msg("bodega lista")
	}

	// 3. Artículos demo, solo si el catálogo está vacío
	total, err := itemRepo.CountSearch("")
	if err != nil {
		log.Fatal().Err(err).Msg("contar artículos")
	}
	if total > 0 {
		log.Info().Int64("items", total).Msg("catálogo con datos, no se siembran artículos")
		return
	}
	demoItems := []dto.CreateItemRequest{
		{Name: "Tornillos 3/8", Description: "Caja x100", CurrentStock: 120, WarehouseID: warehouseIDs[0]},
		{Name: "Cable UTP Cat6", Description: "Rollo 305m", CurrentStock: 15, WarehouseID: warehouseIDs[0]},
		{Name: "Guantes de nitrilo", Description: "Caja x50 talla M", CurrentStock: 40, WarehouseID: warehouseIDs[1]},
	}
	for _, in := range demoItems {
		item, err := itemUC.Create(ctx, admin.ID, in)
		if err != nil {
			log.Fatal().Err(err).Str("item", in.Name).Msg("crear artículo demo")
		}
		log.Info().Int64("item_id", item.ID).Str("name", item.Name).Msg("artículo demo creado")
	}
	log.Info().Msg("seed completado")
}
