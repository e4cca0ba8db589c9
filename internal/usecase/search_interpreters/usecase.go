package search_interpreters

import (
	"context"
	"fmt"
)

// UseCase use case поиска интерпретаторов по доступности и профилю
type UseCase struct {
	interpreterRepo InterpreterRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(interpreterRepo InterpreterRepository, logger Logger) *UseCase {
	return &UseCase{
		interpreterRepo: interpreterRepo,
		logger:          logger,
	}
}

// Execute ищет интерпретаторов; все заданные критерии объединяются через AND
// Пустой результат не является ошибкой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	filter, err := buildFilter(req)
	if err != nil {
		uc.logger.Warn("SearchInterpreters: validation failed: %v", err)
		return nil, err
	}

	interpreters, err := uc.interpreterRepo.Search(ctx, filter)
	if err != nil {
		uc.logger.Error("SearchInterpreters: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to search interpreters: %v", ErrInternal, err)
	}

	uc.logger.Info("SearchInterpreters: found %d interpreters, page=%d, size=%d",
		len(interpreters), filter.Page.Page, filter.Page.Size)

	return &Response{
		Interpreters: interpreters,
		Page:         filter.Page.Page,
		Size:         filter.Page.Size,
	}, nil
}
