package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда активное бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrSlotMismatch возвращается, когда слот в запросе не совпадает со слотом бронирования
	ErrSlotMismatch = errors.New("cancel_booking: time slot does not match booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
