package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/fotos-express/internal/api/http"
	"github.com/spec-kit/fotos-express/internal/api/http/handlers"
	"github.com/spec-kit/fotos-express/internal/auth"
	"github.com/spec-kit/fotos-express/internal/config"
	"github.com/spec-kit/fotos-express/internal/events"
	"github.com/spec-kit/fotos-express/internal/notification"
	"github.com/spec-kit/fotos-express/internal/observability"
	"github.com/spec-kit/fotos-express/internal/persistence"
	"github.com/spec-kit/fotos-express/internal/repository"
	"github.com/spec-kit/fotos-express/internal/service"
	"github.com/spec-kit/fotos-express/internal/worker"
)

const (
	shutdownTimeout = 10 * time.Second
	metricsInterval = time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := persistence.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open document store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer store.Close(context.Background()) //nolint:errcheck

	repos := repository.NewRepositories(store)
	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)

	notificationService := service.NewNotificationService(dispatcher, notification.NewMailer(cfg.Notification, logger), logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)
	reporterDone := worker.RunMetricsReporter(ctx, metrics, logger, metricsInterval)

	denormalizer := service.NewDenormalizer(repos.Zones, repos.Businesses, repos.Activities)
	assignmentService := service.NewAssignmentService(service.AssignmentDependencies{
		ZoneRepo:           repos.Zones,
		ActivityRepo:       repos.Activities,
		AmbulantClientRepo: repos.AmbulantClients,
		ActivityClientRepo: repos.ActivityClients,
		Denormalizer:       denormalizer,
	})
	catalogService := service.NewCatalogService(service.CatalogDependencies{
		ZoneRepo:     repos.Zones,
		BusinessRepo: repos.Businesses,
		ActivityRepo: repos.Activities,
		Denormalizer: denormalizer,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	clientService := service.NewClientService(service.ClientDependencies{
		AmbulantClientRepo: repos.AmbulantClients,
		ActivityClientRepo: repos.ActivityClients,
		ZoneRepo:           repos.Zones,
		BusinessRepo:       repos.Businesses,
		ActivityRepo:       repos.Activities,
		Denormalizer:       denormalizer,
		Dispatcher:         dispatcher,
		Logger:             logger,
	})
	requestService := service.NewRequestService(service.RequestDependencies{
		ServiceRequestRepo: repos.ServiceRequests,
		ApplicationRepo:    repos.StaffApplications,
	})
	onboardingService := service.NewOnboardingService(*cfg, service.OnboardingDependencies{
		ApplicationRepo:     repos.StaffApplications,
		StaffUserRepo:       repos.StaffUsers,
		NotificationService: notificationService,
		Dispatcher:          dispatcher,
		Logger:              logger,
	})
	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		StaffUserRepo:     repos.StaffUsers,
		AssignmentService: assignmentService,
		TokenManager:      tokens,
		Logger:            logger,
	})

	routes := httptransport.RouteConfig{
		Health:          handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.Store.Driver, store),
		Zones:           handlers.NewZonesHandler(catalogService, assignmentService),
		Businesses:      handlers.NewBusinessesHandler(catalogService),
		Activities:      handlers.NewActivitiesHandler(catalogService, assignmentService),
		AmbulantClients: handlers.NewAmbulantClientsHandler(clientService, assignmentService),
		ActivityClients: handlers.NewActivityClientsHandler(clientService, assignmentService),
		Services:        handlers.NewServicesHandler(requestService),
		Staff: handlers.NewStaffHandler(handlers.StaffHandlerDeps{
			Requests:    requestService,
			Onboarding:  onboardingService,
			Auth:        authService,
			Assignments: assignmentService,
		}),
		AuthMiddleware: auth.NewAuthMiddleware(tokens, repos.StaffUsers),
	}
	if cfg.App.SeedAllowed() {
		routes.Seed = handlers.NewSeedHandler(service.NewSeedService(repos, logger))
		logger.Warn("demo seed endpoint enabled", zap.String("env", cfg.App.Env))
	}

	app := fiber.New(httptransport.NewFiberConfig(cfg.App.Name))
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.App.CORSAllowOrigins)
	httptransport.RegisterRoutes(app, routes)

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("store", cfg.Store.Driver))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}
	cancel()
	<-reporterDone
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
