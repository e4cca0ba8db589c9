package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity holds the fields shared by every person-like role in the system
// Role types embed it instead of inheriting from a common base
type Identity struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// User is a deaf user who books appointments
// Profiles are owned by UserService, this service only references them
type User struct {
	Identity
	Status string
}

// IsActive returns true if the user account may book appointments
func (u *User) IsActive() bool {
	return u.Status == "" || u.Status == "ACTIVE"
}
