package create_booking

import "errors"

var (
	// ErrSlotUnavailable возвращается, когда слот не существует или уже занят
	ErrSlotUnavailable = errors.New("create_booking: slot is not available")

	// ErrPastSlot возвращается, когда начало слота уже прошло
	ErrPastSlot = errors.New("create_booking: slot start time has elapsed")

	// ErrUserNotFound возвращается, когда аккаунт пользователя не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
