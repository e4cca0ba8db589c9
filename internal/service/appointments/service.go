package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-InterpreterService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-InterpreterService/internal/service/appointments/models"
)

// Service сервис для чтения записей и ручной смены их статуса
type Service struct {
	repo         AppointmentRepository
	txManager    TransactionManager
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	repo AppointmentRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		txManager:    txManager,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// Search ищет записи по фильтру
// Результат отсортирован по дате и времени окончания, новые первыми
func (s *Service) Search(ctx context.Context, req *models.SearchRequest) (*models.AppointmentListResponse, error) {
	filter, err := req.ToDomainFilter(s.timeProvider.Now())
	if err != nil {
		s.logger.Warn("Search: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appointments, err := s.repo.Search(ctx, filter)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: found %d appointments, page=%d, size=%d", len(appointments), filter.Page.Page, filter.Page.Size)
	return models.FromDomainAppointmentList(appointments), nil
}

// Accept подтверждает запись: PENDING -> ACCEPTED
func (s *Service) Accept(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*models.AppointmentResponse, error) {
	return s.transition(ctx, "Accept", id, actorID, domain.AppointmentStatusAccepted)
}

// Cancel отменяет запись: PENDING|ACCEPTED -> CANCELED
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*models.AppointmentResponse, error) {
	return s.transition(ctx, "Cancel", id, actorID, domain.AppointmentStatusCanceled)
}

// transition меняет статус в транзакции и после коммита публикует событие
func (s *Service) transition(
	ctx context.Context,
	op string,
	id uuid.UUID,
	actorID uuid.UUID,
	to domain.AppointmentStatus,
) (*models.AppointmentResponse, error) {
	s.logger.Info("%s: appointment id=%s to status=%s by user=%s", op, id, to, actorID)

	var (
		appointment *domain.Appointment
		from        domain.AppointmentStatus
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		appointment, err = s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: %s - get appointment: %v", ErrInternal, op, err)
		}

		from = appointment.Status
		if !from.CanTransitionTo(to) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
		}

		if err := s.repo.UpdateStatus(ctx, id, from, to); err != nil {
			if errors.Is(err, appointmentRepo.ErrStatusChanged) {
				return fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
			}
			return fmt.Errorf("%w: %s - update status: %v", ErrInternal, op, err)
		}

		appointment.Status = to
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAppointmentNotFound):
			s.logger.Warn("%s: appointment id=%s not found", op, id)
		case errors.Is(err, ErrInvalidTransition):
			s.logger.Warn("%s: appointment id=%s: %v", op, id, err)
		default:
			s.logger.Error("%s: failed for appointment id=%s: %v", op, id, err)
		}
		return nil, err
	}

	event := domain.NewAppointmentEvent(domain.AppointmentTransition{
		AppointmentID: appointment.ID,
		InterpreterID: appointment.InterpreterID,
		UserID:        appointment.UserID,
		From:          from,
		To:            to,
	}, domain.EventSourceAPI, s.timeProvider.Now())

	// Статус уже сохранен, ошибка публикации не откатывает изменение
	if err := s.publisher.PublishAppointmentEvent(ctx, event); err != nil {
		s.logger.Warn("%s: failed to publish event for appointment id=%s: %v", op, id, err)
	}

	s.logger.Info("%s: appointment id=%s moved %s -> %s", op, id, from, to)
	return models.FromDomainAppointment(appointment), nil
}
