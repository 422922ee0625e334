package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Bioterio-api/internal/application/auth"
	"github.com/jhoicas/Bioterio-api/internal/application/movements"
	"github.com/jhoicas/Bioterio-api/internal/application/protocols"
	"github.com/jhoicas/Bioterio-api/internal/application/reports"
	"github.com/jhoicas/Bioterio-api/internal/application/usecase"
	"github.com/jhoicas/Bioterio-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Bioterio-api/internal/interfaces/http"
	"github.com/jhoicas/Bioterio-api/pkg/config"
	"github.com/jhoicas/Bioterio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	speciesRepo := postgres.NewSpeciesRepository(pool)
	strainRepo := postgres.NewStrainRepository(pool)
	cageRepo := postgres.NewCageRepository(pool)
	groupRepo := postgres.NewAnimalGroupRepository(pool)
	groupMovRepo := postgres.NewGroupMovementRepository(pool)
	supplyRepo := postgres.NewSupplyRepository(pool)
	supplyCatRepo := postgres.NewSupplyCategoryRepository(pool)
	supplyMovRepo := postgres.NewSupplyMovementRepository(pool)
	protocolRepo := postgres.NewProtocolRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := movements.NewRegisterGroupMovementUseCase(txRunner, groupRepo, cageRepo, protocolRepo)
	registerSupplyUC := movements.NewRegisterSupplyMovementUseCase(txRunner, supplyRepo)
	groupUC := usecase.NewGroupUseCase(groupRepo, speciesRepo, strainRepo, cageRepo)
	supplyUC := usecase.NewSupplyUseCase(supplyRepo, supplyCatRepo)
	catalogUC := usecase.NewCatalogUseCase(speciesRepo, strainRepo, cageRepo)
	protocolUC := protocols.NewProtocolUseCase(protocolRepo)
	reportUC := reports.NewReportUseCase(reportRepo, groupMovRepo, supplyMovRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bioterio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		GroupUC:          groupUC,
		SupplyUC:         supplyUC,
		CatalogUC:        catalogUC,
		RegisterMovement: registerMovementUC,
		RegisterSupply:   registerSupplyUC,
		ProtocolUC:       protocolUC,
		ReportUC:         reportUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
