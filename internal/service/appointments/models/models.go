package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidModality возвращается при некорректной модальности
	ErrInvalidModality = errors.New("invalid appointment modality")

	// ErrInvalidFilter возвращается при некорректном значении фильтра
	ErrInvalidFilter = errors.New("invalid appointment filter")
)

// Request модели

// SearchRequest параметры поиска записей, все поля опциональны
type SearchRequest struct {
	InterpreterID *string
	UserID        *string
	Status        *string
	Modality      *string
	FromDate      *string // "2025-10-15"
	DayLimit      *string
	Page          *string
	Size          *string
}

// ToDomainFilter конвертирует request в domain фильтр
// Если задан только dayLimit, окно отсчитывается от today
func (r *SearchRequest) ToDomainFilter(today time.Time) (domain.AppointmentFilter, error) {
	var filter domain.AppointmentFilter

	if r.InterpreterID != nil {
		id, err := uuid.Parse(*r.InterpreterID)
		if err != nil {
			return filter, fmt.Errorf("%w: interpreterId: %v", ErrInvalidFilter, err)
		}
		filter.InterpreterID = &id
	}

	if r.UserID != nil {
		id, err := uuid.Parse(*r.UserID)
		if err != nil {
			return filter, fmt.Errorf("%w: userId: %v", ErrInvalidFilter, err)
		}
		filter.UserID = &id
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.Modality != nil {
		modality := domain.Modality(strings.ToUpper(*r.Modality))
		if !modality.ValidForAppointment() {
			return filter, ErrInvalidModality
		}
		filter.Modality = &modality
	}

	if r.FromDate != nil {
		from, err := time.Parse(domain.DateFormat, *r.FromDate)
		if err != nil {
			return filter, fmt.Errorf("%w: fromDate: %v", ErrInvalidFilter, err)
		}
		filter.FromDate = &from
	}

	if r.DayLimit != nil {
		limit, err := strconv.Atoi(*r.DayLimit)
		if err != nil || limit <= 0 {
			return filter, fmt.Errorf("%w: dayLimit must be a positive integer", ErrInvalidFilter)
		}
		filter.DayLimit = &limit

		if filter.FromDate == nil {
			from := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
			filter.FromDate = &from
		}
	}

	page, err := parsePage(r.Page, r.Size)
	if err != nil {
		return filter, err
	}
	filter.Page = page

	return filter, nil
}

func parsePage(pageStr, sizeStr *string) (domain.Pagination, error) {
	page := domain.Pagination{Page: 0, Size: domain.DefaultPageSize}

	if pageStr != nil {
		p, err := strconv.Atoi(*pageStr)
		if err != nil || p < 0 {
			return page, fmt.Errorf("%w: page must be a non-negative integer", ErrInvalidFilter)
		}
		page.Page = p
	}

	if sizeStr != nil {
		s, err := strconv.Atoi(*sizeStr)
		if err != nil || s < 1 || s > domain.MaxPageSize {
			return page, fmt.Errorf("%w: size must be between 1 and %d", ErrInvalidFilter, domain.MaxPageSize)
		}
		page.Size = s
	}

	return page, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID             uuid.UUID `json:"id"`
	InterpreterID  uuid.UUID `json:"interpreterId"`
	UserID         uuid.UUID `json:"userId"`
	Date           string    `json:"date"`      // "2025-10-15"
	StartTime      string    `json:"startTime"` // "10:00"
	EndTime        string    `json:"endTime"`   // "11:00"
	Modality       string    `json:"modality"`
	Status         string    `json:"status"`
	UF             *string   `json:"uf,omitempty"`
	City           *string   `json:"city,omitempty"`
	Neighborhood   *string   `json:"neighborhood,omitempty"`
	Street         *string   `json:"street,omitempty"`
	StreetNumber   *int      `json:"streetNumber,omitempty"`
	AddressDetails *string   `json:"addressDetails,omitempty"`
	Description    *string   `json:"description,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:             a.ID,
		InterpreterID:  a.InterpreterID,
		UserID:         a.UserID,
		Date:           a.Date.Format(domain.DateFormat),
		StartTime:      a.StartTime.String(),
		EndTime:        a.EndTime.String(),
		Modality:       string(a.Modality),
		Status:         string(a.Status),
		UF:             a.UF,
		City:           a.City,
		Neighborhood:   a.Neighborhood,
		Street:         a.Street,
		StreetNumber:   a.StreetNumber,
		AddressDetails: a.AddressDetails,
		Description:    a.Description,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if item := FromDomainAppointment(a); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(strings.ToUpper(status))
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
