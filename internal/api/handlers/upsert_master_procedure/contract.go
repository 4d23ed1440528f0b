package upsert_master_procedure

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	UpsertListing(ctx context.Context, req *models.UpsertListingRequest) (*models.ListingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
