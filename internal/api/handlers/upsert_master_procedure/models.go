package upsert_master_procedure

import "github.com/m04kA/SalonBookingService/internal/service/catalog/models"

// UpsertListingRequest HTTP request model
type UpsertListingRequest struct {
	Price float64 `json:"price"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpsertListingRequest) ToServiceRequest(masterID, procedureID int64) *models.UpsertListingRequest {
	return &models.UpsertListingRequest{
		MasterID:    masterID,
		ProcedureID: procedureID,
		Price:       r.Price,
	}
}
