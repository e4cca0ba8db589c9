package search_interpreters

import (
	"github.com/m04kA/SMC-InterpreterService/internal/domain"
)

// Request критерии поиска в виде строк запроса, все поля опциональны
type Request struct {
	Modality       *string
	Gender         *string
	UF             *string
	City           *string
	Neighborhood   *string
	SpecialtyIDs   []string
	SpecialtyMatch *string // ANY (по умолчанию) или ALL
	Day            *string // "MON"
	Date           *string // "2025-06-10", день недели берется из даты
	RequestedStart *string // "10:00"
	RequestedEnd   *string // "11:00"
	Name           *string
	Page           *string
	Size           *string
}

// Response найденные интерпретаторы
type Response struct {
	Interpreters []*domain.Interpreter
	Page         int
	Size         int
}
