package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	userClient "github.com/m04kA/SMC-InterpreterService/internal/integrations/userservice"
)

// UseCase use case создания записи к интерпретатору
type UseCase struct {
	appointmentRepo AppointmentRepository
	interpreterRepo InterpreterRepository
	userClient      UserServiceClient
	publisher       EventPublisher
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	interpreterRepo InterpreterRepository,
	userClient UserServiceClient,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		interpreterRepo: interpreterRepo,
		userClient:      userClient,
		publisher:       publisher,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute создает запись в статусе PENDING
// Проверка пересечений и вставка выполняются под advisory lock (интерпретатор, дата)
// в транзакции READ COMMITTED: каждый запрос после взятия блокировки видит записи,
// зафиксированные предыдущим владельцем блокировки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%s, interpreter=%s, date=%s, window=%s-%s, modality=%s",
		req.UserID, req.InterpreterID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.Modality)

	// 1. Валидация входных данных
	interval, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Запись не может начинаться в прошлом
	now := uc.timeProvider.Now()
	if err := validateNotInPast(req.Date, interval, now); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	// 3. Проверяем пользователя в UserService
	userVerified, err := uc.verifyUser(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Интерпретатор должен существовать
	exists, err := uc.interpreterRepo.Exists(ctx, req.InterpreterID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to check interpreter id=%s: %v", req.InterpreterID, err)
		return nil, fmt.Errorf("%w: failed to check interpreter: %v", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("CreateAppointment: interpreter id=%s not found", req.InterpreterID)
		return nil, ErrInterpreterNotFound
	}

	var result *domain.Appointment

	// 5. Блокировка, проверка пересечений и запись в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.appointmentRepo.LockInterpreterDate(txCtx, req.InterpreterID, req.Date); err != nil {
			uc.logger.Error("CreateAppointment: failed to lock interpreter date: %v", err)
			return fmt.Errorf("%w: failed to lock interpreter date: %v", ErrInternal, err)
		}

		conflict, err := uc.appointmentRepo.HasConflict(txCtx, req.InterpreterID, req.Date, interval, nil)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check conflicts: %v", err)
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if conflict {
			uc.logger.Warn("CreateAppointment: interpreter id=%s is busy on %s %s",
				req.InterpreterID, req.Date.Format(domain.DateFormat), interval)
			return fmt.Errorf("%w: %s %s", ErrAppointmentConflict, req.Date.Format(domain.DateFormat), interval)
		}

		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			InterpreterID:  req.InterpreterID,
			UserID:         req.UserID,
			Date:           req.Date,
			StartTime:      interval.Start,
			EndTime:        interval.End,
			Modality:       req.Modality,
			Status:         domain.AppointmentStatusPending,
			UF:             req.UF,
			City:           req.City,
			Neighborhood:   req.Neighborhood,
			Street:         req.Street,
			StreetNumber:   req.StreetNumber,
			AddressDetails: req.AddressDetails,
			Description:    req.Description,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	// 6. Событие публикуется после коммита, ошибка публикации запись не отменяет
	event := domain.NewAppointmentEvent(domain.AppointmentTransition{
		AppointmentID: result.ID,
		InterpreterID: result.InterpreterID,
		UserID:        result.UserID,
		To:            domain.AppointmentStatusPending,
	}, domain.EventSourceAPI, now)

	if err := uc.publisher.PublishAppointmentEvent(ctx, event); err != nil {
		uc.logger.Warn("CreateAppointment: failed to publish event for appointment id=%s: %v", result.ID, err)
	}

	return &Response{Appointment: result, UserVerified: userVerified}, nil
}

// verifyUser проверяет пользователя; при недоступности UserService запись создается без проверки
func (uc *UseCase) verifyUser(ctx context.Context, req *Request) (bool, error) {
	user, err := uc.userClient.GetUserWithGracefulDegradation(ctx, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, userClient.ErrUserNotFound):
			uc.logger.Warn("CreateAppointment: user id=%s not found", req.UserID)
			return false, ErrUserNotFound
		case errors.Is(err, userClient.ErrServiceDegraded):
			uc.logger.Warn("CreateAppointment: user id=%s not verified, UserService degraded: %v", req.UserID, err)
			return false, nil
		default:
			uc.logger.Error("CreateAppointment: failed to get user id=%s: %v", req.UserID, err)
			return false, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
		}
	}

	if !user.IsActive() {
		uc.logger.Warn("CreateAppointment: user id=%s has status %s", req.UserID, user.Status)
		return false, ErrUserInactive
	}

	return true, nil
}
