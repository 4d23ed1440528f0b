package create_procedure

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateProcedure(ctx context.Context, req *models.CreateProcedureRequest) (*models.ProcedureResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
