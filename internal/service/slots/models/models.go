package models

import (
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
)

// Request модели

// ListSlotsRequest запрос на получение слотов.
// Для общего списка все фильтры опциональны, для выборки свободных
// слотов мастер, процедура и дата обязательны.
type ListSlotsRequest struct {
	MasterID      *int64     `json:"masterId,omitempty"`
	ProcedureID   *int64     `json:"procedureId,omitempty"`
	Date          *time.Time `json:"date,omitempty"`
	OnlyAvailable bool       `json:"onlyAvailable,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListSlotsRequest) ToDomainFilter() domain.SlotsFilter {
	return domain.SlotsFilter{
		MasterID:      r.MasterID,
		ProcedureID:   r.ProcedureID,
		Date:          r.Date,
		OnlyAvailable: r.OnlyAvailable,
	}
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID                  int64  `json:"id"`
	MasterID            int64  `json:"masterId"`
	ProcedureID         int64  `json:"procedureId"`
	Date                string `json:"date"`      // "2025-10-15"
	StartTime           string `json:"startTime"` // "10:00"
	EndTime             string `json:"endTime"`   // "10:30"
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	IsAvailable         bool   `json:"isAvailable"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.TimeSlot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:                  s.ID,
		MasterID:            s.MasterID,
		ProcedureID:         s.ProcedureID,
		Date:                s.Date.Format(domain.DateFormat),
		StartTime:           s.StartTime.String(),
		EndTime:             s.EndTime.String(),
		SlotDurationMinutes: s.SlotDurationMinutes,
		IsAvailable:         s.IsAvailable,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.TimeSlot) *SlotListResponse {
	if slots == nil {
		return &SlotListResponse{
			Slots: []SlotResponse{},
		}
	}

	resp := &SlotListResponse{
		Slots: make([]SlotResponse, len(slots)),
	}

	for i, slot := range slots {
		if slotResp := FromDomainSlot(slot); slotResp != nil {
			resp.Slots[i] = *slotResp
		}
	}

	return resp
}
