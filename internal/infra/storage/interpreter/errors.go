package interpreter

import "errors"

var (
	// ErrInterpreterNotFound возвращается, когда интерпретатор не найден
	ErrInterpreterNotFound = errors.New("interpreter.repository: interpreter not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("interpreter.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("interpreter.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("interpreter.repository: failed to scan row")
)
