package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/health-facility-service/internal/api/http"
	"github.com/spec-kit/health-facility-service/internal/api/http/handlers"
	"github.com/spec-kit/health-facility-service/internal/auth"
	"github.com/spec-kit/health-facility-service/internal/config"
	"github.com/spec-kit/health-facility-service/internal/events"
	"github.com/spec-kit/health-facility-service/internal/observability"
	"github.com/spec-kit/health-facility-service/internal/persistence"
	"github.com/spec-kit/health-facility-service/internal/repository"
	"github.com/spec-kit/health-facility-service/internal/service"
	"github.com/spec-kit/health-facility-service/internal/worker"
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
	userRepo := repository.NewUserRepository(pool)
	stateRepo := repository.NewStateRepository(pool)
	districtRepo := repository.NewDistrictRepository(pool)
	facilityRepo := repository.NewFacilityRepository(pool)
	departmentRepo := repository.NewDepartmentRepository(pool)
	healthDataRepo := repository.NewHealthDataRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, redis.Client, logger)
	worker.StartNotificationWorker(notificationService)

	throttle := auth.NewLoginThrottle(redis.Client, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginAttemptWindow)
	authService := service.NewAuthService(cfg.Auth, userRepo, throttle)
	userService := service.NewUserService(userRepo, cfg.Auth.BcryptCost)
	facilityService := service.NewFacilityService(facilityRepo, districtRepo)
	orgService := service.NewOrgService(service.OrgDependencies{
		StateRepo:      stateRepo,
		DistrictRepo:   districtRepo,
		DepartmentRepo: departmentRepo,
		FacilityRepo:   facilityRepo,
	})
	healthDataService := service.NewHealthDataService(healthDataRepo, facilityRepo, departmentRepo, dispatcher)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auths:          handlers.NewAuthsHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Facilities:     handlers.NewFacilitiesHandler(facilityService),
		Org:            handlers.NewOrgHandler(orgService),
		HealthData:     handlers.NewHealthDataHandler(healthDataService),
		AuthMiddleware: authMiddleware,
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
