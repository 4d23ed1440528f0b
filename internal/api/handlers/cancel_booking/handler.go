package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	cancelBooking "github.com/m04kA/SalonBookingService/internal/usecase/cancel_booking"
)

const (
	msgInvalidBookingID  = "некорректный ID бронирования"
	msgInvalidTimeSlotID = "некорректный ID слота, параметр timeSlotId обязателен"
	msgNotFound          = "бронирование не найдено"
	msgSlotMismatch      = "слот не соответствует бронированию"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}?timeSlotId={id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Слот передается явно - страховка от отмены не того бронирования
	timeSlotID, err := strconv.ParseInt(r.URL.Query().Get("timeSlotId"), 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid time slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeSlotID)
		return
	}

	err = h.useCase.Execute(r.Context(), &cancelBooking.Request{
		BookingID:  bookingID,
		TimeSlotID: timeSlotID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/{id} - Invalid input: booking_id=%d, slot_id=%d, error=%v",
				bookingID, timeSlotID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelBooking.ErrSlotMismatch):
			h.logger.Warn("DELETE /bookings/{id} - Slot mismatch: booking_id=%d, slot_id=%d",
				bookingID, timeSlotID)
			handlers.RespondConflict(w, msgSlotMismatch)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking cancelled successfully: booking_id=%d, slot_id=%d",
		bookingID, timeSlotID)
	handlers.RespondNoContent(w)
}
