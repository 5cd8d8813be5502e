package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/hr-service/internal/api/http"
	"github.com/spec-kit/hr-service/internal/api/http/handlers"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/config"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/observability"
	"github.com/spec-kit/hr-service/internal/persistence"
	"github.com/spec-kit/hr-service/internal/repository"
	"github.com/spec-kit/hr-service/internal/service"
	"github.com/spec-kit/hr-service/internal/worker"
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
	employeeRepo := repository.NewEmployeeRepository(pool)
	applicantRepo := repository.NewApplicantRepository(pool)
	leaveRepo := repository.NewLeaveRepository(pool)
	shiftRepo := repository.NewShiftRepository(pool)
	calendarRepo := repository.NewCalendarRepository(pool)
	documentRepo := repository.NewDocumentRepository(pool)
	announcementRepo := repository.NewAnnouncementRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, userRepo)
	sessions := auth.NewSessionManager(authService.TokenManager(), cfg.Auth.SessionCookie)
	guard := auth.NewMiddleware(sessions)

	userService := service.NewUserService(userRepo, cfg.Auth.BcryptCost)
	employeeService := service.NewEmployeeService(employeeRepo)
	applicantService := service.NewApplicantService(applicantRepo, dispatcher)
	leaveService := service.NewLeaveService(leaveRepo, dispatcher)
	shiftService := service.NewShiftService(shiftRepo, employeeRepo)
	calendarService := service.NewCalendarService(calendarRepo)
	documentService := service.NewDocumentService(documentRepo)
	announcementService := service.NewAnnouncementService(announcementRepo, dispatcher)
	dashboardService := service.NewDashboardService(
		employeeRepo, leaveRepo, applicantRepo,
		service.NewRedisKPICache(redis.Client), logger,
	)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, guard, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Pages:         handlers.NewPagesHandler(sessions),
		Auth:          handlers.NewAuthHandler(authService, sessions),
		AdminUsers:    handlers.NewAdminUsersHandler(userService),
		Employees:     handlers.NewEmployeesHandler(employeeService),
		Applicants:    handlers.NewApplicantsHandler(applicantService, sessions),
		Leave:         handlers.NewLeaveHandler(leaveService, sessions),
		Shifts:        handlers.NewShiftsHandler(shiftService),
		Calendar:      handlers.NewCalendarHandler(calendarService, sessions),
		Documents:     handlers.NewDocumentsHandler(documentService, sessions),
		Announcements: handlers.NewAnnouncementsHandler(announcementService, sessions),
		Dashboard:     handlers.NewDashboardHandler(dashboardService),
		Guard:         guard,
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
