package cancel_booking

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID  int64 // ID бронирования
	TimeSlotID int64 // ID слота - защита от отмены не того бронирования
}
