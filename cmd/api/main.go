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
	"github.com/zelcon/ops-api/internal/application/auth"
	"github.com/zelcon/ops-api/internal/application/incidents"
	"github.com/zelcon/ops-api/internal/application/notifications"
	"github.com/zelcon/ops-api/internal/application/sst"
	"github.com/zelcon/ops-api/internal/application/warehouse"
	"github.com/zelcon/ops-api/internal/domain/repository"
	"github.com/zelcon/ops-api/internal/infrastructure/memory"
	"github.com/zelcon/ops-api/internal/infrastructure/postgres"
	httpRouter "github.com/zelcon/ops-api/internal/interfaces/http"
	"github.com/zelcon/ops-api/pkg/config"
	"github.com/zelcon/ops-api/pkg/logger"
)

// repos agrupa los adaptadores de persistencia resueltos según STORE_DRIVER.
type repos struct {
	items     repository.InventoryItemRepository
	requests  repository.WarehouseRequestRepository
	docs      repository.SSTDocumentRepository
	incidents repository.IncidentRepository
	users     repository.UserRepository
	companies repository.CompanyRepository
	txRunner  warehouse.TxRunner
	close     func()
}

func buildRepos(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repos, error) {
	if cfg.Store.Driver == "memory" {
		log.Warn().Msg("usando store en memoria; los datos no se persisten")
		store := memory.NewStore()
		return &repos{
			items:     store.Items(),
			requests:  store.Requests(),
			docs:      store.Docs(),
			incidents: store.Incidents(),
			users:     store.Users(),
			companies: store.Companies(),
			txRunner:  store.TxRunner(),
			close:     func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &repos{
		items:     postgres.NewInventoryItemRepository(pool),
		requests:  postgres.NewWarehouseRequestRepository(pool),
		docs:      postgres.NewSSTDocumentRepository(pool),
		incidents: postgres.NewIncidentRepository(pool),
		users:     postgres.NewUserRepository(pool),
		companies: postgres.NewCompanyRepository(pool),
		txRunner:  postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}

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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	r, err := buildRepos(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al store")
	}
	defer r.close()

	ledger := warehouse.NewStockLedger()
	warehouseUC := warehouse.NewUseCase(r.txRunner, r.items, r.requests, r.users, ledger)
	sstUC := sst.NewUseCase(r.docs, r.users)
	incidentUC := incidents.NewUseCase(r.incidents, r.users)
	projector := notifications.NewProjector(r.items, r.requests, r.docs, r.incidents)
	authUC := auth.NewAuthUseCase(r.users, r.companies, auth.JWTConfig{
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
		Title:    "Zelcon Ops API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		WarehouseUC: warehouseUC,
		SSTUC:       sstUC,
		IncidentUC:  incidentUC,
		Projector:   projector,
		JWTSecret:   cfg.JWT.Secret,
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
