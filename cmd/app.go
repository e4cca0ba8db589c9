package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-InterpreterService/internal/config"
	"github.com/m04kA/SMC-InterpreterService/internal/infra/eventbus"
	"github.com/m04kA/SMC-InterpreterService/internal/infra/lock"
	appointmentRepo "github.com/m04kA/SMC-InterpreterService/internal/infra/storage/appointment"
	interpreterRepo "github.com/m04kA/SMC-InterpreterService/internal/infra/storage/interpreter"
	parametersRepo "github.com/m04kA/SMC-InterpreterService/internal/infra/storage/parameters"
	scheduleRepo "github.com/m04kA/SMC-InterpreterService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-InterpreterService/internal/scheduler"
	parametersService "github.com/m04kA/SMC-InterpreterService/internal/service/parameters"
	"github.com/m04kA/SMC-InterpreterService/pkg/dbmetrics"
	"github.com/m04kA/SMC-InterpreterService/pkg/logger"
	"github.com/m04kA/SMC-InterpreterService/pkg/metrics"
	"github.com/m04kA/SMC-InterpreterService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-InterpreterService/pkg/txmanager"
)

// TxManager общий интерфейс менеджеров транзакций для use case'ов и сервисов
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// app инфраструктура, общая для serve и reconcile
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics

	db        *sql.DB
	txManager TxManager

	schedules    *scheduleRepo.Repository
	appointments *appointmentRepo.Repository
	interpreters *interpreterRepo.Repository
	parameters   *parametersService.Service

	events    *eventbus.EventPublisher
	publisher eventbus.Publisher
	locker    scheduler.Locker

	closers []func() error
	stopCh  chan struct{}
}

// newApp загружает конфигурацию и поднимает БД, брокер и блокировки
func newApp(ctx context.Context, path string) (*app, error) {
	// Загружаем конфигурацию
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a := &app{cfg: cfg, log: log, stopCh: make(chan struct{})}
	a.closers = append(a.closers, log.Close)

	log.Info("Configuration loaded from %s", path)

	// Инициализируем метрики (если включены)
	if cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	if err := a.initDatabase(ctx); err != nil {
		a.Close()
		return nil, err
	}

	a.parameters = parametersService.NewService(
		parametersRepo.NewRepository(a.db),
		time.Duration(cfg.Scheduler.ParameterCacheSeconds)*time.Second,
		log,
	)

	if err := a.initEventBus(); err != nil {
		a.Close()
		return nil, err
	}

	if err := a.initLocker(ctx); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

func (a *app) initDatabase(ctx context.Context) error {
	cfg := a.cfg.Database

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.db = db
	a.closers = append(a.closers, db.Close)

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	a.log.Info("Successfully connected to database (host=%s, port=%d, db=%s)", cfg.Host, cfg.Port, cfg.DBName)

	// Репозитории и менеджер транзакций (с метриками или без)
	if a.metrics != nil {
		wrapped := dbmetrics.WrapWithDefault(db, a.metrics, a.cfg.Metrics.ServiceName, a.stopCh)
		a.log.Info("Database metrics collection started")

		a.schedules = scheduleRepo.NewRepository(wrapped)
		a.appointments = appointmentRepo.NewRepository(wrapped)
		a.interpreters = interpreterRepo.NewRepository(wrapped)
		a.txManager = txmanager.NewTransactionManager(wrapped)
		return nil
	}

	a.schedules = scheduleRepo.NewRepository(db)
	a.appointments = appointmentRepo.NewRepository(db)
	a.interpreters = interpreterRepo.NewRepository(db)
	a.txManager = simpletxmanager.NewTransactionManager(db)
	return nil
}

// initEventBus RabbitMQ за circuit breaker'ом или no-op, если брокер выключен
func (a *app) initEventBus() error {
	var publisher eventbus.Publisher = eventbus.NewNoopPublisher(a.log)

	if a.cfg.RabbitMQ.Enabled {
		rabbit, err := eventbus.NewRabbitMQPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange, a.log)
		if err != nil {
			return fmt.Errorf("failed to connect to rabbitmq: %w", err)
		}
		publisher = eventbus.NewBreakerPublisher(rabbit, eventbus.DefaultBreakerSettings(), a.log)
		a.log.Info("RabbitMQ publisher initialized (exchange=%s)", a.cfg.RabbitMQ.Exchange)
	} else {
		a.log.Info("RabbitMQ disabled, appointment events are only logged")
	}

	a.publisher = publisher
	a.closers = append(a.closers, publisher.Close)
	a.events = eventbus.NewEventPublisher(publisher, a.metrics, a.log)
	return nil
}

// initLocker аренда сверки в Redis, чтобы при нескольких репликах её выполняла одна
func (a *app) initLocker(ctx context.Context) error {
	if !a.cfg.Redis.Enabled {
		a.locker = lock.NoopLocker{}
		a.log.Info("Redis disabled, reconciliation lease is local")
		return nil
	}

	client, err := lock.NewRedisClient(ctx, a.cfg.Redis.URL)
	if err != nil {
		return err
	}
	a.closers = append(a.closers, client.Close)
	a.locker = lock.NewRedisLocker(client, "interpreter-service:")
	a.log.Info("Redis lease locker initialized")
	return nil
}

// newScheduler планировщик сверки статусов записей
func (a *app) newScheduler() *scheduler.Scheduler {
	settings := scheduler.DefaultSettings()
	settings.DefaultInterval = a.cfg.Scheduler.DefaultInterval()
	settings.LockTTL = time.Duration(a.cfg.Redis.LockTTLSeconds) * time.Second

	return scheduler.NewScheduler(
		a.appointments,
		a.parameters,
		a.events,
		a.locker,
		a.metrics,
		settings,
		a.log,
	)
}

// Close освобождает ресурсы в обратном порядке
func (a *app) Close() {
	close(a.stopCh)

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && i > 0 {
			a.log.Warn("Failed to release resource: %v", err)
		}
	}
}
