package models

import (
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
)

// Request модели

// CreateProcedureRequest запрос на создание процедуры
type CreateProcedureRequest struct {
	Name          string `json:"name"`
	DurationHours int    `json:"durationHours"`
}

// UpsertListingRequest запрос на добавление/обновление процедуры в прейскуранте мастера
type UpsertListingRequest struct {
	MasterID    int64   `json:"masterId"`
	ProcedureID int64   `json:"procedureId"`
	Price       float64 `json:"price"`
}

// Response модели

// ProcedureResponse ответ с данными процедуры
type ProcedureResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	DurationHours int       `json:"durationHours"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProcedureListResponse ответ со списком процедур
type ProcedureListResponse struct {
	Procedures []ProcedureResponse `json:"procedures"`
}

// ListingResponse ответ с позицией прейскуранта мастера
type ListingResponse struct {
	MasterID          int64     `json:"masterId"`
	ProcedureID       int64     `json:"procedureId"`
	Price             float64   `json:"price"`
	ProcedureName     string    `json:"procedureName,omitempty"`
	ProcedureDuration int       `json:"procedureDurationHours,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ListingListResponse ответ с прейскурантом мастера
type ListingListResponse struct {
	Listings []ListingResponse `json:"listings"`
}

// Методы конвертации

// FromDomainProcedure конвертирует domain модель в DTO
func FromDomainProcedure(p *domain.Procedure) *ProcedureResponse {
	if p == nil {
		return nil
	}

	return &ProcedureResponse{
		ID:            p.ID,
		Name:          p.Name,
		DurationHours: p.DurationHours,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// FromDomainProcedureList конвертирует список domain моделей в DTO
func FromDomainProcedureList(procedures []*domain.Procedure) *ProcedureListResponse {
	if procedures == nil {
		return &ProcedureListResponse{
			Procedures: []ProcedureResponse{},
		}
	}

	resp := &ProcedureListResponse{
		Procedures: make([]ProcedureResponse, len(procedures)),
	}

	for i, procedure := range procedures {
		if procedureResp := FromDomainProcedure(procedure); procedureResp != nil {
			resp.Procedures[i] = *procedureResp
		}
	}

	return resp
}

// FromDomainListing конвертирует domain модель в DTO
func FromDomainListing(l *domain.MasterListing) *ListingResponse {
	if l == nil {
		return nil
	}

	return &ListingResponse{
		MasterID:          l.MasterID,
		ProcedureID:       l.ProcedureID,
		Price:             l.Price,
		ProcedureName:     l.ProcedureName,
		ProcedureDuration: l.ProcedureDuration,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

// FromDomainListingList конвертирует список domain моделей в DTO
func FromDomainListingList(listings []*domain.MasterListing) *ListingListResponse {
	if listings == nil {
		return &ListingListResponse{
			Listings: []ListingResponse{},
		}
	}

	resp := &ListingListResponse{
		Listings: make([]ListingResponse, len(listings)),
	}

	for i, listing := range listings {
		if listingResp := FromDomainListing(listing); listingResp != nil {
			resp.Listings[i] = *listingResp
		}
	}

	return resp
}
