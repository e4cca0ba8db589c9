package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID        uuid.UUID
	InterpreterID uuid.UUID
	Date          time.Time        // Дата записи (без времени)
	StartTime     types.TimeString // "10:00"
	EndTime       types.TimeString // "11:00"
	Modality      domain.Modality  // ONLINE или PERSONALLY

	// Адрес встречи, имеет смысл для PERSONALLY
	UF             *string
	City           *string
	Neighborhood   *string
	Street         *string
	StreetNumber   *int
	AddressDetails *string

	Description *string
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
	// UserVerified false, если UserService был недоступен и проверка пользователя пропущена
	UserVerified bool
}
