package generate_slots

import "errors"

var (
	// ErrMasterNotFound возвращается, когда аккаунт мастера не найден
	ErrMasterNotFound = errors.New("generate_slots: master not found")

	// ErrNotAMaster возвращается, когда аккаунт не имеет роли мастера
	ErrNotAMaster = errors.New("generate_slots: account is not a master")

	// ErrListingNotFound возвращается, когда мастер не предлагает процедуру
	ErrListingNotFound = errors.New("generate_slots: master does not list this procedure")

	// ErrInvalidScheduleWindow возвращается, когда рабочее окно не даёт ни одного слота
	ErrInvalidScheduleWindow = errors.New("generate_slots: invalid schedule window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("generate_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_slots: internal error")
)
