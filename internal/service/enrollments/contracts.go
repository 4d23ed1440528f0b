package enrollments

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/domain"
)

// EnrollmentRepository интерфейс журнала записей
type EnrollmentRepository interface {
	FindOrCreate(ctx context.Context, userID, masterID, procedureID int64) (*domain.Enrollment, error)
	Delete(ctx context.Context, userID, masterID, procedureID int64) error
	ListByUser(ctx context.Context, userID int64) ([]*domain.Enrollment, error)
}

// ListingRepository интерфейс прейскуранта мастеров
type ListingRepository interface {
	GetByMasterAndProcedure(ctx context.Context, masterID, procedureID int64) (*domain.MasterListing, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
