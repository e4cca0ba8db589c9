package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/pkg/metrics"
)

const lockKey = "appointment-status-reconcile"

// Settings параметры планировщика
type Settings struct {
	// DefaultInterval используется, если параметр в хранилище не задан или некорректен
	DefaultInterval time.Duration
	// LockTTL время аренды; должно превышать длительность одной сверки
	LockTTL time.Duration
}

// DefaultSettings значения по умолчанию
func DefaultSettings() Settings {
	return Settings{
		DefaultInterval: domain.DefaultSchedulerInterval,
		LockTTL:         time.Minute,
	}
}

// Result количество переведенных записей за одну сверку
type Result struct {
	Canceled  int  `json:"canceledCount"`
	Completed int  `json:"completedCount"`
	Skipped   bool `json:"skipped"` // аренда занята другой репликой
}

// Scheduler периодически переводит просроченные записи в конечные статусы:
// PENDING -> CANCELED и ACCEPTED -> COMPLETED
type Scheduler struct {
	repo         AppointmentRepository
	intervals    IntervalSource
	publisher    EventPublisher
	locker       Locker
	metrics      *metrics.Metrics
	settings     Settings
	timeProvider TimeProvider
	logger       Logger

	wg       sync.WaitGroup
	stopChan chan struct{}
	running  bool
	mu       sync.Mutex
}

// NewScheduler создает планировщик; metrics может быть nil
func NewScheduler(
	repo AppointmentRepository,
	intervals IntervalSource,
	publisher EventPublisher,
	locker Locker,
	m *metrics.Metrics,
	settings Settings,
	logger Logger,
) *Scheduler {
	return &Scheduler{
		repo:         repo,
		intervals:    intervals,
		publisher:    publisher,
		locker:       locker,
		metrics:      m,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		stopChan:     make(chan struct{}),
	}
}

// Start запускает цикл сверки в отдельной горутине
// Первая сверка выполняется сразу, следующие через интервал из хранилища параметров
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(ctx)

	s.logger.Info("Scheduler: started, default interval=%s", s.settings.DefaultInterval)
}

// Stop останавливает цикл и дожидается завершения текущей сверки
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info("Scheduler: stopped")
}

// IsRunning возвращает true, если цикл запущен
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	s.Reconcile(ctx)

	for {
		// Интервал перечитывается перед каждым ожиданием
		timer := time.NewTimer(s.nextInterval(ctx))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-s.stopChan:
			timer.Stop()
			return
		case <-timer.C:
			s.Reconcile(ctx)
		}
	}
}

func (s *Scheduler) nextInterval(ctx context.Context) time.Duration {
	interval := s.intervals.GetDuration(ctx, domain.ParamAppointmentStatusSchedulerInterval, s.settings.DefaultInterval)
	if interval < domain.MinSchedulerInterval {
		interval = domain.MinSchedulerInterval
	}
	return interval
}

// Reconcile выполняет одну сверку
// Переходы независимы: ошибка одного не мешает другому; ошибки логируются и не возвращаются
// Паника внутри сверки перехватывается, чтобы не остановить фоновый цикл
func (s *Scheduler) Reconcile(ctx context.Context) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Reconcile: recovered from panic: %v", r)
			s.observeRun("error")
			result = Result{}
		}
	}()

	if s.locker != nil {
		unlock, ok, err := s.locker.TryLock(ctx, lockKey, s.settings.LockTTL)
		if err != nil {
			s.logger.Error("Reconcile: failed to acquire lease: %v", err)
			s.observeRun("error")
			return Result{}
		}
		if !ok {
			s.logger.Debug("Reconcile: lease is held by another replica, skipping")
			s.observeRun("skipped")
			return Result{Skipped: true}
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				s.logger.Warn("Reconcile: failed to release lease: %v", err)
			}
		}()
	}

	now := s.timeProvider.Now()

	canceled, cancelErr := s.transition(ctx, domain.AppointmentStatusPending, domain.AppointmentStatusCanceled, now)
	completed, completeErr := s.transition(ctx, domain.AppointmentStatusAccepted, domain.AppointmentStatusCompleted, now)

	result = Result{Canceled: canceled, Completed: completed}

	if canceled > 0 {
		s.logger.Info("Reconcile: updated %d PENDING appointments to CANCELED", canceled)
	}
	if completed > 0 {
		s.logger.Info("Reconcile: updated %d ACCEPTED appointments to COMPLETED", completed)
	}
	if canceled == 0 && completed == 0 {
		s.logger.Debug("Reconcile: no expired appointments found")
	}

	if cancelErr != nil || completeErr != nil {
		s.observeRun("error")
	} else {
		s.observeRun("ok")
	}

	return result
}

// transition переводит просроченные записи и публикует событие по каждой
func (s *Scheduler) transition(ctx context.Context, from, to domain.AppointmentStatus, now time.Time) (int, error) {
	transitions, err := s.repo.TransitionExpired(ctx, from, to, now)
	if err != nil {
		s.logger.Error("Reconcile: failed to move expired %s appointments to %s: %v", from, to, err)
		return 0, err
	}

	if s.metrics != nil && len(transitions) > 0 {
		s.metrics.ReconcileTransitionsTotal.WithLabelValues(string(to)).Add(float64(len(transitions)))
	}

	for _, t := range transitions {
		event := domain.NewAppointmentEvent(t, domain.EventSourceScheduler, now)
		if err := s.publisher.PublishAppointmentEvent(ctx, event); err != nil {
			s.logger.Warn("Reconcile: failed to publish event for appointment id=%s: %v", t.AppointmentID, err)
		}
	}

	return len(transitions), nil
}

func (s *Scheduler) observeRun(result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.ReconcileRunsTotal.WithLabelValues(result).Inc()
}
