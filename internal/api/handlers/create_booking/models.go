package create_booking

import (
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
	createBooking "github.com/m04kA/SalonBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TimeSlotID int64 `json:"timeSlotId"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	TimeSlotID   int64  `json:"timeSlotId"`
	EnrollmentID int64  `json:"enrollmentId"`
	MasterID     int64  `json:"masterId"`
	ProcedureID  int64  `json:"procedureId"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:     userID,
		TimeSlotID: r.TimeSlotID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		UserID:       resp.UserID,
		TimeSlotID:   resp.TimeSlotID,
		EnrollmentID: resp.EnrollmentID,
		MasterID:     resp.MasterID,
		ProcedureID:  resp.ProcedureID,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
