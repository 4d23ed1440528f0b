package create_booking

import (
	"time"

	"github.com/m04kA/SalonBookingService/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	UserID     int64 // ID пользователя
	TimeSlotID int64 // ID слота
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64            // ID бронирования
	UserID       int64            // ID пользователя
	TimeSlotID   int64            // ID слота
	EnrollmentID int64            // ID записи (пользователь-мастер-процедура)
	MasterID     int64            // ID мастера (из слота)
	ProcedureID  int64            // ID процедуры (из слота)
	Date         time.Time        // Дата слота
	StartTime    types.TimeString // Время начала слота
	EndTime      types.TimeString // Время конца слота
	Status       string           // Статус бронирования

	CreatedAt time.Time // Время создания
}
