package generate_slots

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/internal/integrations/profileservice"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	BulkCreate(ctx context.Context, slots []*domain.TimeSlot) ([]*domain.TimeSlot, error)
}

// ListingRepository интерфейс репозитория прайс-листа
type ListingRepository interface {
	GetByMasterAndProcedure(ctx context.Context, masterID, procedureID int64) (*domain.MasterListing, error)
}

// ProfileServiceClient интерфейс клиента ProfileService
type ProfileServiceClient interface {
	GetProfile(ctx context.Context, userID int64) (*profileservice.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
