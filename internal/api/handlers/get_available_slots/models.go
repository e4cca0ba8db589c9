package get_available_slots

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-InterpreterService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	DateFrom string              `json:"dateFrom"`
	DateTo   string              `json:"dateTo"`
	Groups   []AvailabilityGroup `json:"groups"`
}

// AvailabilityGroup свободные слоты одного интерпретатора на одну дату
type AvailabilityGroup struct {
	Date          string          `json:"date"`
	InterpreterID uuid.UUID       `json:"interpreterId"`
	Slots         []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Date          string    `json:"date"`
	InterpreterID uuid.UUID `json:"interpreterId"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	groups := make([]AvailabilityGroup, len(resp.Groups))
	for i, g := range resp.Groups {
		slots := make([]AvailableSlot, len(g.Slots))
		for j, slot := range g.Slots {
			slots[j] = AvailableSlot{
				Date:          slot.Date.Format(domain.DateFormat),
				InterpreterID: slot.InterpreterID,
				StartTime:     slot.StartTime.String(),
				EndTime:       slot.EndTime.String(),
			}
		}

		groups[i] = AvailabilityGroup{
			Date:          g.Date.Format(domain.DateFormat),
			InterpreterID: g.InterpreterID,
			Slots:         slots,
		}
	}

	return &AvailableSlotsResponse{
		DateFrom: resp.DateFrom.Format(domain.DateFormat),
		DateTo:   resp.DateTo.Format(domain.DateFormat),
		Groups:   groups,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(interpreterIDs []string, dateFromStr, dateToStr string) (*getAvailableSlots.Request, error) {
	ids := make([]uuid.UUID, 0, len(interpreterIDs))
	for _, raw := range interpreterIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("interpreterId %q: %w", raw, err)
		}
		ids = append(ids, id)
	}

	dateFrom, err := time.Parse(domain.DateFormat, dateFromStr)
	if err != nil {
		return nil, fmt.Errorf("dateFrom: %w", err)
	}

	dateTo, err := time.Parse(domain.DateFormat, dateToStr)
	if err != nil {
		return nil, fmt.Errorf("dateTo: %w", err)
	}

	return &getAvailableSlots.Request{
		InterpreterIDs: ids,
		DateFrom:       dateFrom,
		DateTo:         dateTo,
	}, nil
}
