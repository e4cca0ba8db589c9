package userservice

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
)

// User модель пользователя из UserService
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToDomain конвертирует ответ UserService в доменную модель
func (u *User) ToDomain() *domain.User {
	return &domain.User{
		Identity: domain.Identity{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Phone:     u.Phone,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		Status: u.Status,
	}
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
