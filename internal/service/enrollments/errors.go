package enrollments

import "errors"

var (
	// ErrEnrollmentNotFound возвращается, когда запись не найдена
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	// ErrListingNotFound возвращается, когда мастер не предлагает процедуру
	ErrListingNotFound = errors.New("master does not list this procedure")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
