package search_interpreters

import "errors"

var (
	// ErrInvalidInterval возвращается, когда requestedStart не раньше requestedEnd
	ErrInvalidInterval = errors.New("search_interpreters: invalid interval")

	// ErrInvalidInput возвращается при некорректных критериях поиска
	ErrInvalidInput = errors.New("search_interpreters: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_interpreters: internal error")
)
