package get_procedures

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListProcedures(ctx context.Context) (*models.ProcedureListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
