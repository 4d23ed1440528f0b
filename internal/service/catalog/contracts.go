package catalog

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/internal/integrations/profileservice"
)

// ProcedureRepository интерфейс каталога процедур
type ProcedureRepository interface {
	Create(ctx context.Context, p *domain.Procedure) (*domain.Procedure, error)
	GetByID(ctx context.Context, id int64) (*domain.Procedure, error)
	List(ctx context.Context) ([]*domain.Procedure, error)
}

// ListingRepository интерфейс прейскуранта мастеров
type ListingRepository interface {
	Upsert(ctx context.Context, l *domain.MasterListing) (*domain.MasterListing, error)
	ListByMaster(ctx context.Context, masterID int64) ([]*domain.MasterListing, error)
	Delete(ctx context.Context, masterID, procedureID int64) error
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
