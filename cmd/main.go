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

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-HostelService/internal/api"
	createBlockHandler "github.com/m04kA/SMC-HostelService/internal/api/handlers/create_block"
	createBookingHandler "github.com/m04kA/SMC-HostelService/internal/api/handlers/create_booking"
	deleteBlockHandler "github.com/m04kA/SMC-HostelService/internal/api/handlers/delete_block"
	extendBookingHandler "github.com/m04kA/SMC-HostelService/internal/api/handlers/extend_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-HostelService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-HostelService/internal/api/handlers/get_booking"
	getRoomHandler "github.com/m04kA/SMC-HostelService/internal/api/handlers/get_room"
	listBlocksHandler "github.com/m04kA/SMC-HostelService/internal/api/handlers/list_blocks"
	listBookingsHandler "github.com/m04kA/SMC-HostelService/internal/api/handlers/list_bookings"
	listRoomsHandler "github.com/m04kA/SMC-HostelService/internal/api/handlers/list_rooms"
	updateBookingStatusHandler "github.com/m04kA/SMC-HostelService/internal/api/handlers/update_booking_status"
	updateRoomHandler "github.com/m04kA/SMC-HostelService/internal/api/handlers/update_room"
	"github.com/m04kA/SMC-HostelService/internal/availability"
	"github.com/m04kA/SMC-HostelService/internal/config"
	"github.com/m04kA/SMC-HostelService/internal/domain"
	capacityCache "github.com/m04kA/SMC-HostelService/internal/infra/cache/capacity"
	blockRepo "github.com/m04kA/SMC-HostelService/internal/infra/storage/block"
	bookingRepo "github.com/m04kA/SMC-HostelService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HostelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HostelService/internal/realtime"
	"github.com/m04kA/SMC-HostelService/internal/scheduler"
	blocksService "github.com/m04kA/SMC-HostelService/internal/service/blocks"
	bookingsService "github.com/m04kA/SMC-HostelService/internal/service/bookings"
	"github.com/m04kA/SMC-HostelService/internal/service/catalog"
	"github.com/m04kA/SMC-HostelService/internal/service/inventory"
	roomsService "github.com/m04kA/SMC-HostelService/internal/service/rooms"
	blockInventoryUC "github.com/m04kA/SMC-HostelService/internal/usecase/block_inventory"
	createBookingUC "github.com/m04kA/SMC-HostelService/internal/usecase/create_booking"
	extendBookingUC "github.com/m04kA/SMC-HostelService/internal/usecase/extend_booking"
	getAvailabilityUC "github.com/m04kA/SMC-HostelService/internal/usecase/get_availability"
	updateBookingStatusUC "github.com/m04kA/SMC-HostelService/internal/usecase/update_booking_status"
	"github.com/m04kA/SMC-HostelService/migrations"
	"github.com/m04kA/SMC-HostelService/pkg/clock"
	"github.com/m04kA/SMC-HostelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HostelService/pkg/logger"
	"github.com/m04kA/SMC-HostelService/pkg/metrics"
	"github.com/m04kA/SMC-HostelService/pkg/txmanager"
)

// Notifier публикация изменений журнала (Redis или заглушка)
type Notifier interface {
	Publish(ctx context.Context, location domain.Location, roomID string, reason string) error
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

	log.Info("Starting SMC-HostelService...")

	// Метрики пишутся всегда; при выключенных метриках registry не публикуется
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		metricsCollector = metrics.NewWithRegisterer(cfg.Metrics.ServiceName, prometheus.NewRegistry())
	}
	stopMetricsCh := make(chan struct{})

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime.Duration)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if err := migrations.Apply(ctx, db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// Репозитории
	roomRepository := roomRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	blockRepository := blockRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Каталог комнат в памяти
	roomCatalog := catalog.New(roomRepository, log)
	if err := roomCatalog.Reload(ctx); err != nil {
		log.Fatal("Failed to load room catalog: %v", err)
	}
	log.Info("Room catalog loaded: %d rooms", roomCatalog.Len())

	engine := availability.NewEngine(roomCatalog, log,
		availability.WithRecorder(metricsCollector),
		availability.WithStrictCatalog(cfg.Availability.StrictCatalog),
	)

	// Redis: кэш остатков и шина изменений журнала
	var (
		cache       inventory.CapacityCache
		notifier    Notifier = realtime.Discard{Logger: log}
		redisClient *redis.Client
		subscriber  *realtime.Subscriber
	)
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}

		capacity := capacityCache.NewCache(redisClient, cfg.Redis.CacheTTL.Duration)
		cache = capacity
		notifier = realtime.NewPublisher(redisClient, cfg.Realtime.Channel, log)
		subscriber = realtime.NewSubscriber(redisClient, cfg.Realtime.Channel, capacity, cfg.Realtime.Debounce.Duration, log)
		log.Info("Redis connected (addr=%s), capacity cache ttl=%s", cfg.Redis.Addr, cfg.Redis.CacheTTL.Duration)
	} else {
		log.Warn("Redis disabled: remaining capacity is computed on every request")
	}

	inventorySvc := inventory.NewService(bookingRepository, blockRepository, engine, cache, log)

	// Сервисы
	roomSvc := roomsService.NewService(roomRepository, roomCatalog, notifier, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	blockSvc := blocksService.NewService(blockRepository, notifier, metricsCollector, log)

	// "Сегодня" для use cases и no-show сверки считается в часовом поясе хостела
	hostelClock, err := clock.Load(cfg.Scheduler.Timezone)
	if err != nil {
		log.Fatal("Failed to load hostel timezone %q: %v", cfg.Scheduler.Timezone, err)
	}

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, inventorySvc, txMgr, notifier, metricsCollector, log).
		WithTimeProvider(hostelClock)
	updateStatusUseCase := updateBookingStatusUC.NewUseCase(bookingRepository, inventorySvc, txMgr, notifier, metricsCollector, log).
		WithTimeProvider(hostelClock)
	extendBookingUseCase := extendBookingUC.NewUseCase(bookingRepository, inventorySvc, txMgr, notifier, metricsCollector, log)
	blockInventoryUseCase := blockInventoryUC.NewUseCase(blockRepository, inventorySvc, txMgr, notifier, metricsCollector, log).
		WithTimeProvider(hostelClock)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(inventorySvc, roomCatalog, log).
		WithTimeProvider(hostelClock)

	// Фоновые задачи
	var jobs *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		jobs, err = scheduler.New(scheduler.Config{
			Timezone:              cfg.Scheduler.Timezone,
			NoShowAt:              cfg.Scheduler.NoShowAt,
			CatalogReloadInterval: cfg.Scheduler.CatalogReloadInterval.Duration,
			JobTimeout:            cfg.Scheduler.JobTimeout.Duration,
		}, bookingRepository, roomCatalog, metricsCollector, log)
		if err != nil {
			log.Fatal("Failed to create scheduler: %v", err)
		}
		jobs.WithTimeProvider(hostelClock)
		jobs.Start()
		log.Info("Scheduler started (no-show sweep at %s %s)", cfg.Scheduler.NoShowAt, cfg.Scheduler.Timezone)
	}

	if subscriber != nil {
		go func() {
			if err := subscriber.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("Realtime subscriber stopped: %v", err)
			}
		}()
	}

	// Роутер
	r := api.NewRouter(api.Handlers{
		ListRooms:  listRoomsHandler.NewHandler(roomSvc, log),
		GetRoom:    getRoomHandler.NewHandler(roomSvc, log),
		UpdateRoom: updateRoomHandler.NewHandler(roomSvc, log),

		GetAvailability: getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log),

		CreateBooking:       createBookingHandler.NewHandler(createBookingUseCase, log),
		GetBooking:          getBookingHandler.NewHandler(bookingSvc, log),
		ListBookings:        listBookingsHandler.NewHandler(bookingSvc, log),
		UpdateBookingStatus: updateBookingStatusHandler.NewHandler(updateStatusUseCase, log),
		ExtendBooking:       extendBookingHandler.NewHandler(extendBookingUseCase, log),

		CreateBlock: createBlockHandler.NewHandler(blockInventoryUseCase, log),
		DeleteBlock: deleteBlockHandler.NewHandler(blockSvc, log),
		ListBlocks:  listBlocksHandler.NewHandler(blockSvc, log),
	}, metricsCollector)

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
		IdleTimeout:  cfg.Server.IdleTimeout.Duration,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if jobs != nil {
		if err := jobs.Shutdown(); err != nil {
			log.Error("Scheduler shutdown failed: %v", err)
		}
	}

	// Останавливаем subscriber и сбор статистики пула
	cancel()
	close(stopMetricsCh)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
