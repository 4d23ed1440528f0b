package generate_slots

import (
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
	generateSlots "github.com/m04kA/SalonBookingService/internal/usecase/generate_slots"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	MasterID            int64  `json:"masterId"`
	ProcedureID         int64  `json:"procedureId"`
	Date                string `json:"date"`      // "2025-10-15"
	StartTime           string `json:"startTime"` // "10:00"
	EndTime             string `json:"endTime"`   // "18:00"
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}

// SlotResponse HTTP model одного слота
type SlotResponse struct {
	ID                  int64  `json:"id"`
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	IsAvailable         bool   `json:"isAvailable"`
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	MasterID    int64          `json:"masterId"`
	ProcedureID int64          `json:"procedureId"`
	Date        string         `json:"date"`
	Slots       []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateSlotsRequest) ToUseCaseRequest() (*generateSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &generateSlots.Request{
		MasterID:            r.MasterID,
		ProcedureID:         r.ProcedureID,
		Date:                date,
		StartTime:           startTime,
		EndTime:             endTime,
		SlotDurationMinutes: r.SlotDurationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			ID:                  s.ID,
			StartTime:           s.StartTime.String(),
			EndTime:             s.EndTime.String(),
			SlotDurationMinutes: s.SlotDurationMinutes,
			IsAvailable:         s.IsAvailable,
		}
	}

	return &GenerateSlotsResponse{
		MasterID:    resp.MasterID,
		ProcedureID: resp.ProcedureID,
		Date:        resp.Date.Format(domain.DateFormat),
		Slots:       slots,
	}
}
