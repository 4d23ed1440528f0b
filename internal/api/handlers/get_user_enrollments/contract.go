package get_user_enrollments

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/service/enrollments/models"
)

type EnrollmentService interface {
	ListByUser(ctx context.Context, userID int64) (*models.EnrollmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
