package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AppointmentService/internal/api"
	analyticsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/analytics"
	checkSlotHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/check_slot"
	createAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_available_slots"
	getProviderAppointmentsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_provider_appointments"
	memosHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/memos"
	providersHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/providers"
	reviewsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/reviews"
	servicesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/services"
	tasksHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/tasks"
	timeslotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/timeslots"
	updateAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/cache"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/postgres"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/events"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	analyticsService "github.com/m04kA/SMC-AppointmentService/internal/service/analytics"
	appointmentsService "github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
	memosService "github.com/m04kA/SMC-AppointmentService/internal/service/memos"
	providersService "github.com/m04kA/SMC-AppointmentService/internal/service/providers"
	reviewsService "github.com/m04kA/SMC-AppointmentService/internal/service/reviews"
	tasksService "github.com/m04kA/SMC-AppointmentService/internal/service/tasks"
	timeslotsService "github.com/m04kA/SMC-AppointmentService/internal/service/timeslots"
	checkSlotUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/check_slot"
	createAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	deleteAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/delete_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	updateAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/keylock"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/tracing"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
)

const rateLimitKeyPrefix = "rl:appointments"

// TxManager интерфейс менеджера транзакций, общий для memory и postgres
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикатор событий записей
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
	Close() error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-AppointmentService...")
	log.Info("Configuration loaded (storage=%s, cancelled_releases_slot=%t)",
		cfg.Storage.Type, cfg.Booking.CancelledReleasesSlot)

	ctx := context.Background()

	// Трассировка
	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRatio:  cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal("Failed to initialize tracing: %v", err)
	}
	if cfg.Tracing.Enabled {
		log.Info("Tracing enabled, exporting to %s", cfg.Tracing.OTLPEndpoint)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище
	var (
		repos *storage.Repositories
		txMgr TxManager
	)

	switch cfg.Storage.Type {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		// С nil метриками обёртка работает как обычный *sql.DB
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		repos = postgres.NewRepositories(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)

	default:
		store := memory.NewStore()
		if cfg.Seed.Enabled {
			if err := store.Seed(ctx); err != nil {
				log.Fatal("Failed to seed in-memory storage: %v", err)
			}
			log.Info("In-memory storage seeded with demo data")
		}
		repos = store.Repositories()
		txMgr = txmanager.NewNop()
		log.Info("Using in-memory storage")
	}

	// Кэш свободных слотов; nil-кэш работает как всегда пустой
	var slotsCache *cache.SlotsCache
	if cfg.Cache.Enabled {
		slotsCache, err = cache.NewSlotsCache(cfg.Cache.SlotsSize, metricsCollector)
		if err != nil {
			log.Fatal("Failed to create slots cache: %v", err)
		}
		log.Info("Slots cache enabled (size=%d)", cfg.Cache.SlotsSize)
	}

	// События записей
	var publisher EventPublisher = events.NopPublisher{}
	if cfg.Events.Enabled {
		kafkaPublisher, err := events.NewKafkaPublisher(cfg.Events.Brokers, cfg.Events.Topic, log)
		if err != nil {
			log.Fatal("Failed to create event publisher: %v", err)
		}
		publisher = kafkaPublisher
		log.Info("Appointment events are published to kafka (brokers=%s, topic=%s)", cfg.Events.Brokers, cfg.Events.Topic)
	}

	// Ограничение частоты создания записей
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RateLimit.RedisAddr,
			Password: cfg.RateLimit.RedisPassword,
			DB:       cfg.RateLimit.RedisDB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("Redis is unavailable at %s: %v (fail_open=%t)", cfg.RateLimit.RedisAddr, err, cfg.RateLimit.FailOpen)
		}
		rateLimiter = middleware.NewRateLimiter(
			rdb,
			cfg.RateLimit.Limit,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
			rateLimitKeyPrefix,
			cfg.RateLimit.FailOpen,
			log,
		)
		log.Info("Rate limit enabled: %d requests per %ds", cfg.RateLimit.Limit, cfg.RateLimit.WindowSeconds)
	}

	policy := scheduling.Policy{CancelledReleasesSlot: cfg.Booking.CancelledReleasesSlot}
	locker := keylock.New()

	// Инициализируем сервисы
	providersSvc := providersService.NewService(repos.Providers, slotsCache, log)
	catalogSvc := catalog.NewService(repos.Services, repos.Providers, log)
	timeslotsSvc := timeslotsService.NewService(repos.TimeSlots, log)
	appointmentsSvc := appointmentsService.NewService(repos.Appointments, log)
	memosSvc := memosService.NewService(repos.Memos, log)
	tasksSvc := tasksService.NewService(repos.Tasks, log)
	reviewsSvc := reviewsService.NewService(repos.Reviews, repos.Appointments, repos.Providers, log)
	analyticsSvc := analyticsService.NewService(repos.Appointments, repos.Services, repos.Reviews, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		repos.Providers,
		repos.Appointments,
		slotsCache,
		policy,
		log,
	)

	checkSlotUseCase := checkSlotUC.NewUseCase(repos.Appointments, policy, log)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		repos.Providers,
		repos.Services,
		repos.Appointments,
		txMgr,
		locker,
		slotsCache,
		publisher,
		metricsCollector,
		policy,
		log,
	)

	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		repos.Services,
		repos.Appointments,
		txMgr,
		locker,
		slotsCache,
		publisher,
		policy,
		log,
	)

	deleteAppointmentUseCase := deleteAppointmentUC.NewUseCase(repos.Appointments, slotsCache, publisher, log)

	// Инициализируем handlers
	h := &api.Handlers{
		Providers:               providersHandler.NewHandler(providersSvc, log),
		Services:                servicesHandler.NewHandler(catalogSvc, log),
		TimeSlots:               timeslotsHandler.NewHandler(timeslotsSvc, log),
		GetAvailableSlots:       getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log),
		CheckSlot:               checkSlotHandler.NewHandler(checkSlotUseCase, log),
		GetProviderAppointments: getProviderAppointmentsHandler.NewHandler(appointmentsSvc, log),
		GetAppointment:          getAppointmentHandler.NewHandler(appointmentsSvc, log),
		CreateAppointment:       createAppointmentHandler.NewHandler(createAppointmentUseCase, log),
		UpdateAppointment:       updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log),
		DeleteAppointment:       deleteAppointmentHandler.NewHandler(deleteAppointmentUseCase, log),
		Memos:                   memosHandler.NewHandler(memosSvc, log),
		Tasks:                   tasksHandler.NewHandler(tasksSvc, log),
		Reviews:                 reviewsHandler.NewHandler(reviewsSvc, log),
		Analytics:               analyticsHandler.NewHandler(analyticsSvc, log),
	}

	routerOpts := api.Options{
		Logger:      log,
		MetricsPath: cfg.Metrics.Path,
		RateLimiter: rateLimiter,
		Tracing:     cfg.Tracing.Enabled,
		ServiceName: cfg.Metrics.ServiceName,
	}
	if metricsCollector != nil {
		routerOpts.HTTPMetrics = metricsCollector
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(h, routerOpts),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if err := publisher.Close(); err != nil {
		log.Error("Failed to close event publisher: %v", err)
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}
