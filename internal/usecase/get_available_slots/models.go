package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
)

// Settings параметры генерации слотов
type Settings struct {
	SlotDurationMinutes int // длительность слота
	SlotStepMinutes     int // шаг между началами соседних слотов
	MaxRangeDays        int // максимальная длина диапазона dateFrom..dateTo
}

// DefaultSettings значения по умолчанию: часовые слоты каждые полчаса, диапазон до месяца
func DefaultSettings() Settings {
	return Settings{
		SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
		SlotStepMinutes:     domain.DefaultSlotStepMinutes,
		MaxRangeDays:        domain.DefaultMaxSlotRangeDays,
	}
}

// Request модель запроса свободных слотов
type Request struct {
	InterpreterIDs []uuid.UUID
	DateFrom       time.Time // включительно
	DateTo         time.Time // включительно
}

// Response свободные слоты, сгруппированные по дате и интерпретатору
type Response struct {
	DateFrom time.Time
	DateTo   time.Time
	Groups   []domain.GroupedAvailability
}
