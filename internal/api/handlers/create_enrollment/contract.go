package create_enrollment

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/service/enrollments/models"
)

type EnrollmentService interface {
	Create(ctx context.Context, req *models.CreateEnrollmentRequest) (*models.EnrollmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
