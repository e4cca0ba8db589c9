package parameters

import "errors"

var (
	// ErrParameterNotFound возвращается, когда параметр с таким ключом отсутствует
	ErrParameterNotFound = errors.New("parameters.repository: parameter not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("parameters.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("parameters.repository: failed to scan row")
)
