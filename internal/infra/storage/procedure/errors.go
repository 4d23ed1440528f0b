package procedure

import "errors"

var (
	// ErrProcedureNotFound возвращается, когда процедура не найдена
	ErrProcedureNotFound = errors.New("procedure.repository: procedure not found")

	// ErrDuplicateName возвращается при создании процедуры с занятым именем
	ErrDuplicateName = errors.New("procedure.repository: procedure name already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("procedure.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("procedure.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("procedure.repository: failed to scan row")
)
