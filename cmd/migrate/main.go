package main

import (
	"database/sql"
	"flag"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/invorya/almacen-api/pkg/config"
	"github.com/invorya/almacen-api/pkg/logger"
)

// Runner de migraciones con goose. Uso:
//
//	go run ./cmd/migrate [-dir ./migrations] [up|down|status|version]
func main() {
	dir := flag.String("dir", "./migrations", "directorio con las migraciones SQL")
	flag.Parse()

	command := "up"
	if args := flag.Args(); len(args) > 0 {
		command = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión a PostgreSQL")
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("dialecto goose")
	}

	log.Info().Str("command", command).Str("dir", *dir).Msg("ejecutando migraciones")
	if err := goose.Run(command, db, *dir); err != nil {
		log.Error().Err(err).Str("command", command).Msg("migración fallida")
		os.Exit(1)
	}
	log.Info().Msg("migraciones aplicadas")
}
