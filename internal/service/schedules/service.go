package schedules

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	scheduleRepo "github.com/m04kA/SMC-InterpreterService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-InterpreterService/internal/service/schedules/models"
)

// Service сервис для чтения и удаления окон расписания
// Создание и изменение окон требуют проверки пересечений и живут в отдельных use case
type Service struct {
	repo   ScheduleRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(repo ScheduleRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID получает окно расписания по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ScheduleResponse, error) {
	schedule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetByID: schedule id=%s not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetByID: repository error for schedule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(schedule), nil
}

// List возвращает окна расписания по фильтру
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ScheduleListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	schedules, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d schedules, page=%d, size=%d", len(schedules), filter.Page.Page, filter.Page.Size)
	return models.FromDomainScheduleList(schedules), nil
}

// Delete удаляет окно расписания
// Уже созданные записи не затрагиваются
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting schedule id=%s", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Delete: schedule id=%s not found", id)
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for schedule id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted schedule id=%s", id)
	return nil
}
