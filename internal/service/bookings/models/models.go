package models

import (
	"errors"
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID          int64   `json:"userId"`
	Status          *string `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeCanceled bool    `json:"includeCanceled,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetUserBookingsRequest) ToDomainFilter() (domain.UserBookingsFilter, error) {
	filter := domain.UserBookingsFilter{
		UserID:          r.UserID,
		IncludeCanceled: r.IncludeCanceled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования.
// enrollmentId пустой, если запись из журнала уже удалена -
// история бронирований переживает отмену записи.
type BookingResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	TimeSlotID   int64  `json:"timeSlotId"`
	EnrollmentID *int64 `json:"enrollmentId,omitempty"`
	Status       string `json:"status"`

	// Денормализованные данные слота
	MasterID    int64   `json:"masterId,omitempty"`
	ProcedureID int64   `json:"procedureId,omitempty"`
	Date        *string `json:"date,omitempty"`      // "2025-10-15"
	StartTime   *string `json:"startTime,omitempty"` // "10:00"
	EndTime     *string `json:"endTime,omitempty"`   // "10:30"

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		TimeSlotID:   b.TimeSlotID,
		EnrollmentID: b.EnrollmentID,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// WithSlot дополняет ответ данными слота
func (r *BookingResponse) WithSlot(s *domain.TimeSlot) *BookingResponse {
	if s == nil {
		return r
	}

	date := s.Date.Format(domain.DateFormat)
	start := s.StartTime.String()
	end := s.EndTime.String()

	r.MasterID = s.MasterID
	r.ProcedureID = s.ProcedureID
	r.Date = &date
	r.StartTime = &start
	r.EndTime = &end

	return r
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCanceled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
