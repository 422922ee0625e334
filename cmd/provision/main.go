package main

import (
	"context"

	"github.com/jhoicas/Bioterio-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Bioterio-api/pkg/config"
	"github.com/jhoicas/Bioterio-api/pkg/logger"
)

// Siembra los roles y permisos base. Idempotente: correr en cada despliegue.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.NewProvisioner(pool).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("aprovisionamiento de roles")
	}
	log.Info().Msg("roles y permisos aprovisionados")
}
