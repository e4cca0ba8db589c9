package models

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

// ErrInvalidFilter возвращается при некорректном значении фильтра
var ErrInvalidFilter = errors.New("invalid schedule filter")

// ListRequest параметры списка окон, все поля опциональны
type ListRequest struct {
	InterpreterID *string
	Day           *string // "MON"
	TimeFrom      *string // "08:00"
	TimeTo        *string // "18:00"
	Page          *string
	Size          *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() (domain.ScheduleFilter, error) {
	var filter domain.ScheduleFilter

	if r.InterpreterID != nil {
		id, err := uuid.Parse(*r.InterpreterID)
		if err != nil {
			return filter, fmt.Errorf("%w: interpreterId: %v", ErrInvalidFilter, err)
		}
		filter.InterpreterID = &id
	}

	if r.Day != nil {
		day, err := domain.ParseDayOfWeek(*r.Day)
		if err != nil {
			return filter, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
		filter.Day = &day
	}

	if r.TimeFrom != nil {
		t, err := types.NewTimeStringFromString(*r.TimeFrom)
		if err != nil {
			return filter, fmt.Errorf("%w: timeFrom: %v", ErrInvalidFilter, err)
		}
		filter.TimeFrom = &t
	}

	if r.TimeTo != nil {
		t, err := types.NewTimeStringFromString(*r.TimeTo)
		if err != nil {
			return filter, fmt.Errorf("%w: timeTo: %v", ErrInvalidFilter, err)
		}
		filter.TimeTo = &t
	}

	filter.Page = domain.Pagination{Page: 0, Size: domain.DefaultPageSize}

	if r.Page != nil {
		p, err := strconv.Atoi(*r.Page)
		if err != nil || p < 0 {
			return filter, fmt.Errorf("%w: page must be a non-negative integer", ErrInvalidFilter)
		}
		filter.Page.Page = p
	}

	if r.Size != nil {
		s, err := strconv.Atoi(*r.Size)
		if err != nil || s < 1 || s > domain.MaxPageSize {
			return filter, fmt.Errorf("%w: size must be between 1 and %d", ErrInvalidFilter, domain.MaxPageSize)
		}
		filter.Page.Size = s
	}

	return filter, nil
}

// ScheduleResponse ответ с данными окна расписания
type ScheduleResponse struct {
	ID            uuid.UUID `json:"id"`
	InterpreterID uuid.UUID `json:"interpreterId"`
	Day           string    `json:"dayOfWeek"` // "MON"
	StartTime     string    `json:"startTime"` // "09:00"
	EndTime       string    `json:"endTime"`   // "12:00"
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ScheduleListResponse ответ со списком окон
type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.Schedule) *ScheduleResponse {
	if s == nil {
		return nil
	}

	return &ScheduleResponse{
		ID:            s.ID,
		InterpreterID: s.InterpreterID,
		Day:           string(s.Day),
		StartTime:     s.StartTime.String(),
		EndTime:       s.EndTime.String(),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// FromDomainScheduleList конвертирует список domain моделей в DTO
func FromDomainScheduleList(schedules []*domain.Schedule) *ScheduleListResponse {
	resp := &ScheduleListResponse{
		Schedules: make([]ScheduleResponse, 0, len(schedules)),
	}

	for _, s := range schedules {
		if item := FromDomainSchedule(s); item != nil {
			resp.Schedules = append(resp.Schedules, *item)
		}
	}

	return resp
}
