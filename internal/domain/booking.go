package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
)

// Booking represents a confirmed reservation of one time slot by one user,
// backed by one enrollment. EnrollmentID is nil when the enrollment has been
// deleted after the booking was made: the history row outlives the enrollment.
type Booking struct {
	ID           int64
	UserID       int64
	TimeSlotID   int64
	EnrollmentID *int64
	Status       BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLive returns true if the booking still occupies its slot
func (b *Booking) IsLive() bool {
	return b.Status != StatusCanceled
}

// IsCanceled returns true if the booking has been cancelled
func (b *Booking) IsCanceled() bool {
	return b.Status == StatusCanceled
}

// UserBookingsFilter фильтр для получения бронирований пользователя
type UserBookingsFilter struct {
	UserID          int64          // Обязательный параметр
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeCanceled bool           // Включать ли отменённые бронирования
}
