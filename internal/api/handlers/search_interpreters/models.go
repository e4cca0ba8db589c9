package search_interpreters

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/api/handlers"
	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	searchInterpreters "github.com/m04kA/SMC-InterpreterService/internal/usecase/search_interpreters"
)

// InterpreterListResponse HTTP response model
type InterpreterListResponse struct {
	Interpreters []InterpreterResponse `json:"interpreters"`
	Page         int                   `json:"page"`
	Size         int                   `json:"size"`
}

// InterpreterResponse профиль интерпретатора в выдаче поиска
type InterpreterResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Phone       string              `json:"phone,omitempty"`
	Gender      string              `json:"gender"`
	Modality    string              `json:"modality"`
	Rating      *float64            `json:"rating,omitempty"`
	Description *string             `json:"description,omitempty"`
	VideoURL    *string             `json:"videoUrl,omitempty"`
	Locations   []LocationResponse  `json:"locations"`
	Specialties []SpecialtyResponse `json:"specialties"`
}

type LocationResponse struct {
	UF           string `json:"uf"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood,omitempty"`
}

type SpecialtyResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ToUseCaseRequest собирает критерии поиска из query параметров
func ToUseCaseRequest(r *http.Request) *searchInterpreters.Request {
	return &searchInterpreters.Request{
		Modality:       handlers.QueryPtr(r, "modality"),
		Gender:         handlers.QueryPtr(r, "gender"),
		UF:             handlers.QueryPtr(r, "uf"),
		City:           handlers.QueryPtr(r, "city"),
		Neighborhood:   handlers.QueryPtr(r, "neighborhood"),
		SpecialtyIDs:   handlers.QueryList(r, "specialtyIds"),
		SpecialtyMatch: handlers.QueryPtr(r, "specialtyMatch"),
		Day:            handlers.QueryPtr(r, "dayOfWeek"),
		Date:           handlers.QueryPtr(r, "date"),
		RequestedStart: handlers.QueryPtr(r, "requestedStart"),
		RequestedEnd:   handlers.QueryPtr(r, "requestedEnd"),
		Name:           handlers.QueryPtr(r, "namePattern"),
		Page:           handlers.QueryPtr(r, "page"),
		Size:           handlers.QueryPtr(r, "size"),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchInterpreters.Response) *InterpreterListResponse {
	out := &InterpreterListResponse{
		Interpreters: make([]InterpreterResponse, 0, len(resp.Interpreters)),
		Page:         resp.Page,
		Size:         resp.Size,
	}

	for _, i := range resp.Interpreters {
		out.Interpreters = append(out.Interpreters, fromDomainInterpreter(i))
	}

	return out
}

func fromDomainInterpreter(i *domain.Interpreter) InterpreterResponse {
	locations := make([]LocationResponse, len(i.Locations))
	for idx, l := range i.Locations {
		locations[idx] = LocationResponse{UF: l.UF, City: l.City, Neighborhood: l.Neighborhood}
	}

	specialties := make([]SpecialtyResponse, len(i.Specialties))
	for idx, s := range i.Specialties {
		specialties[idx] = SpecialtyResponse{ID: s.ID, Name: s.Name}
	}

	return InterpreterResponse{
		ID:          i.ID,
		Name:        i.Name,
		Email:       i.Email,
		Phone:       i.Phone,
		Gender:      string(i.Gender),
		Modality:    string(i.Modality),
		Rating:      i.Rating,
		Description: i.Description,
		VideoURL:    i.VideoURL,
		Locations:   locations,
		Specialties: specialties,
	}
}
