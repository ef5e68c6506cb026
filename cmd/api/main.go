package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/restaurant-service/internal/api/http"
	"github.com/spec-kit/restaurant-service/internal/api/http/handlers"
	"github.com/spec-kit/restaurant-service/internal/config"
	"github.com/spec-kit/restaurant-service/internal/events"
	"github.com/spec-kit/restaurant-service/internal/observability"
	"github.com/spec-kit/restaurant-service/internal/persistence"
	"github.com/spec-kit/restaurant-service/internal/repository"
	"github.com/spec-kit/restaurant-service/internal/service"
	"github.com/spec-kit/restaurant-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	credentials := repository.NewCredentialStore(pool)
	menuRepo := repository.NewMenuRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	historyRepo := repository.NewOrderHistoryRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, credentials)
	menuService := service.NewMenuService(menuRepo, redis.Client, cfg.Cache.MenuTTL(), logger)
	reservationService := service.NewReservationService(reservationRepo, dispatcher)
	orderService := service.NewOrderService(service.OrderDependencies{
		OrderRepo:   orderRepo,
		HistoryRepo: historyRepo,
		MenuRepo:    menuRepo,
		Dispatcher:  dispatcher,
	})
	activityService := service.NewActivityService(dispatcher, historyRepo, logger)
	worker.StartActivityWorker(activityService)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:       handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:         handlers.NewAuthHandler(authService),
		Accounts:     handlers.NewAccountsHandler(authService),
		Menu:         handlers.NewMenuHandler(menuService),
		Reservations: handlers.NewReservationsHandler(reservationService),
		Orders:       handlers.NewOrdersHandler(orderService),
		Gate:         authService.Gate(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
