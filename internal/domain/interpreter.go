package domain

import "github.com/google/uuid"

// Gender of an interpreter
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOthers Gender = "OTHERS"
)

// Valid reports whether g is a known gender
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOthers:
		return true
	}
	return false
}

// Modality describes how a session is held
// Interpreters may declare ALL, appointments are always ONLINE or PERSONALLY
type Modality string

const (
	ModalityOnline     Modality = "ONLINE"
	ModalityPersonally Modality = "PERSONALLY"
	ModalityAll        Modality = "ALL"
)

// Valid reports whether m is a known interpreter modality
func (m Modality) Valid() bool {
	switch m {
	case ModalityOnline, ModalityPersonally, ModalityAll:
		return true
	}
	return false
}

// ValidForAppointment reports whether m can be used for a concrete booking
func (m Modality) ValidForAppointment() bool {
	return m == ModalityOnline || m == ModalityPersonally
}

// Location is a place where an interpreter works
type Location struct {
	ID           uuid.UUID
	UF           string
	City         string
	Neighborhood string
}

// Specialty is an entry of the external specialties catalog
type Specialty struct {
	ID   uuid.UUID
	Name string
}

// Interpreter is a sign-language interpreter offering sessions
type Interpreter struct {
	Identity
	Gender      Gender
	Modality    Modality
	Rating      *float64
	Description *string
	VideoURL    *string

	Locations   []Location
	Specialties []Specialty
}

// HasSpecialty returns true if the interpreter holds the specialty
func (i *Interpreter) HasSpecialty(id uuid.UUID) bool {
	for _, s := range i.Specialties {
		if s.ID == id {
			return true
		}
	}
	return false
}
