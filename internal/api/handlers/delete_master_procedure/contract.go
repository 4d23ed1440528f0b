package delete_master_procedure

import "context"

type CatalogService interface {
	DeleteListing(ctx context.Context, masterID, procedureID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
