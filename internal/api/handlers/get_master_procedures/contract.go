package get_master_procedures

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListMasterProcedures(ctx context.Context, masterID int64) (*models.ListingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
