package catalog

import "errors"

var (
	// ErrProcedureNotFound возвращается, когда процедура не найдена
	ErrProcedureNotFound = errors.New("procedure not found")

	// ErrDuplicateName возвращается при попытке создать процедуру с занятым именем
	ErrDuplicateName = errors.New("procedure name already exists")

	// ErrMasterNotFound возвращается, когда аккаунт мастера не найден
	ErrMasterNotFound = errors.New("master not found")

	// ErrNotAMaster возвращается, когда аккаунт не имеет роли мастера
	ErrNotAMaster = errors.New("account is not a master")

	// ErrListingNotFound возвращается, когда мастер не предлагает процедуру
	ErrListingNotFound = errors.New("master does not list this procedure")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
