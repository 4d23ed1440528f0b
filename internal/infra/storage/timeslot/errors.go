package timeslot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("timeslot.repository: slot not found")

	// ErrSlotUnavailable возвращается при попытке занять уже занятый слот
	ErrSlotUnavailable = errors.New("timeslot.repository: slot is not available")

	// ErrSlotAlreadyAvailable возвращается при попытке освободить свободный слот
	ErrSlotAlreadyAvailable = errors.New("timeslot.repository: slot is already available")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("timeslot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("timeslot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("timeslot.repository: failed to scan row")
)
