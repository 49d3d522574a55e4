package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

const noShowOperation = "no_show_sweep"

// Config расписание фоновых задач
type Config struct {
	Timezone              string        // например "Europe/Madrid"
	NoShowAt              string        // HH:MM локального времени точки
	CatalogReloadInterval time.Duration // 0 - не перечитывать каталог
	JobTimeout            time.Duration
}

// Scheduler фоновые задачи сервиса на gocron
type Scheduler struct {
	cron         gocron.Scheduler
	bookingRepo  BookingRepository
	catalog      CatalogReloader
	metrics      Metrics
	location     *time.Location
	timeout      time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// New регистрирует задачи, но не запускает их (см. Start)
func New(cfg Config, bookingRepo BookingRepository, catalog CatalogReloader, metrics Metrics, logger Logger) (*Scheduler, error) {
	location := time.UTC
	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("scheduler: invalid timezone %q: %w", cfg.Timezone, err)
		}
		location = loc
	}

	at, err := time.Parse("15:04", cfg.NoShowAt)
	if err != nil {
		return nil, fmt.Errorf("scheduler: invalid no-show time %q: %w", cfg.NoShowAt, err)
	}

	cron, err := gocron.NewScheduler(gocron.WithLocation(location))
	if err != nil {
		return nil, fmt.Errorf("scheduler: create: %w", err)
	}

	timeout := cfg.JobTimeout
	if timeout <= 0 {
		timeout = time.Minute
	}

	s := &Scheduler{
		cron:         cron,
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		metrics:      metrics,
		location:     location,
		timeout:      timeout,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}

	_, err = cron.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(at.Hour()), uint(at.Minute()), 0))),
		gocron.NewTask(s.runNoShowSweep),
		gocron.WithName(noShowOperation),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("scheduler: register no-show sweep: %w", err)
	}

	if cfg.CatalogReloadInterval > 0 && catalog != nil {
		_, err = cron.NewJob(
			gocron.DurationJob(cfg.CatalogReloadInterval),
			gocron.NewTask(s.runCatalogReload),
			gocron.WithName("catalog_reload"),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return nil, fmt.Errorf("scheduler: register catalog reload: %w", err)
		}
	}

	return s, nil
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Scheduler) WithTimeProvider(tp TimeProvider) *Scheduler {
	s.timeProvider = tp
	return s
}

// Start запускает задачи
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler: started with %d jobs (timezone %s)", len(s.cron.Jobs()), s.location)
}

// Shutdown останавливает планировщик и дожидается выполняющихся задач
func (s *Scheduler) Shutdown() error {
	return s.cron.Shutdown()
}

// SweepNoShows переводит в no_show брони в статусе pending/confirmed с датой заезда раньше сегодняшней
// "Сегодня" считается в часовом поясе хостела. Места остаются занятыми до даты выезда.
func (s *Scheduler) SweepNoShows(ctx context.Context) (int, error) {
	today := domain.DateOf(s.timeProvider.Now().In(s.location))

	marked, err := s.bookingRepo.MarkNoShows(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("scheduler: SweepNoShows - %w", err)
	}

	for _, b := range marked {
		s.metrics.ObserveLedgerChange(noShowOperation)
		s.logger.Info("SweepNoShows: booking=%s room=%s/%s marked as %s", b.ID, b.Location, b.RoomID, domain.StatusNoShow)
	}

	return len(marked), nil
}

func (s *Scheduler) runNoShowSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	count, err := s.SweepNoShows(ctx)
	if err != nil {
		s.logger.Error("SweepNoShows: %v", err)
		return
	}
	s.logger.Info("SweepNoShows: %d bookings marked as no_show", count)
}

func (s *Scheduler) runCatalogReload() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.catalog.Reload(ctx); err != nil {
		s.logger.Error("CatalogReload: %v", err)
	}
}
