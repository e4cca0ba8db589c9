package update_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	updateAppointment "github.com/m04kA/SMC-InterpreterService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

// RescheduleRequest HTTP request model, меняются только дата и время
type RescheduleRequest struct {
	Date      *string `json:"date,omitempty"`      // "2025-10-15"
	StartTime *string `json:"startTime,omitempty"` // "10:00"
	EndTime   *string `json:"endTime,omitempty"`   // "11:00"
}

// IsEmpty true, если в запросе нет ни одного поля
func (r *RescheduleRequest) IsEmpty() bool {
	return r.Date == nil && r.StartTime == nil && r.EndTime == nil
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleRequest) ToUseCaseRequest(appointmentID uuid.UUID) (*updateAppointment.Request, error) {
	req := &updateAppointment.Request{AppointmentID: appointmentID}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, fmt.Errorf("date: %w", err)
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		t, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("startTime: %w", err)
		}
		req.StartTime = &t
	}

	if r.EndTime != nil {
		t, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("endTime: %w", err)
		}
		req.EndTime = &t
	}

	return req, nil
}
