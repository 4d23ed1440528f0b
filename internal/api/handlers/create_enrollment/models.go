package create_enrollment

import "github.com/m04kA/SalonBookingService/internal/service/enrollments/models"

// CreateEnrollmentRequest HTTP request model
type CreateEnrollmentRequest struct {
	MasterID    int64 `json:"masterId"`
	ProcedureID int64 `json:"procedureId"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateEnrollmentRequest) ToServiceRequest(userID int64) *models.CreateEnrollmentRequest {
	return &models.CreateEnrollmentRequest{
		UserID:      userID,
		MasterID:    r.MasterID,
		ProcedureID: r.ProcedureID,
	}
}
