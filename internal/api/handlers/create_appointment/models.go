package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/internal/service/appointments/models"
	createAppointment "github.com/m04kA/SMC-InterpreterService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
// Пользователь берется из X-User-ID
type CreateAppointmentRequest struct {
	InterpreterID  string  `json:"interpreterId" validate:"required,uuid"`
	Date           string  `json:"date" validate:"required"`      // "2025-10-15"
	StartTime      string  `json:"startTime" validate:"required"` // "10:00"
	EndTime        string  `json:"endTime" validate:"required"`   // "11:00"
	Modality       string  `json:"modality" validate:"required"`
	UF             *string `json:"uf,omitempty" validate:"omitempty,len=2"`
	City           *string `json:"city,omitempty"`
	Neighborhood   *string `json:"neighborhood,omitempty"`
	Street         *string `json:"street,omitempty"`
	StreetNumber   *int    `json:"streetNumber,omitempty" validate:"omitempty,gt=0"`
	AddressDetails *string `json:"addressDetails,omitempty"`
	Description    *string `json:"description,omitempty"`
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	models.AppointmentResponse
	UserVerified bool `json:"userVerified"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID uuid.UUID) (*createAppointment.Request, error) {
	interpreterID, err := uuid.Parse(r.InterpreterID)
	if err != nil {
		return nil, fmt.Errorf("interpreterId: %w", err)
	}

	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	return &createAppointment.Request{
		UserID:         userID,
		InterpreterID:  interpreterID,
		Date:           date,
		StartTime:      start,
		EndTime:        end,
		Modality:       domain.Modality(strings.ToUpper(r.Modality)),
		UF:             r.UF,
		City:           r.City,
		Neighborhood:   r.Neighborhood,
		Street:         r.Street,
		StreetNumber:   r.StreetNumber,
		AddressDetails: r.AddressDetails,
		Description:    r.Description,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		AppointmentResponse: *models.FromDomainAppointment(resp.Appointment),
		UserVerified:        resp.UserVerified,
	}
}
