package models

import (
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
)

// Request модели

// CreateEnrollmentRequest запрос на создание записи (пользователь-мастер-процедура)
type CreateEnrollmentRequest struct {
	UserID      int64 `json:"userId"`
	MasterID    int64 `json:"masterId"`
	ProcedureID int64 `json:"procedureId"`
}

// DeleteEnrollmentRequest запрос на удаление записи
type DeleteEnrollmentRequest struct {
	UserID      int64 `json:"userId"`
	MasterID    int64 `json:"masterId"`
	ProcedureID int64 `json:"procedureId"`
}

// Response модели

// EnrollmentResponse ответ с данными записи
type EnrollmentResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	MasterID    int64     `json:"masterId"`
	ProcedureID int64     `json:"procedureId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EnrollmentListResponse ответ со списком записей
type EnrollmentListResponse struct {
	Enrollments []EnrollmentResponse `json:"enrollments"`
}

// Методы конвертации

// FromDomainEnrollment конвертирует domain модель в DTO
func FromDomainEnrollment(e *domain.Enrollment) *EnrollmentResponse {
	if e == nil {
		return nil
	}

	return &EnrollmentResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		MasterID:    e.MasterID,
		ProcedureID: e.ProcedureID,
		CreatedAt:   e.CreatedAt,
	}
}

// FromDomainEnrollmentList конвертирует список domain моделей в DTO
func FromDomainEnrollmentList(enrollments []*domain.Enrollment) *EnrollmentListResponse {
	if enrollments == nil {
		return &EnrollmentListResponse{
			Enrollments: []EnrollmentResponse{},
		}
	}

	resp := &EnrollmentListResponse{
		Enrollments: make([]EnrollmentResponse, len(enrollments)),
	}

	for i, enrollment := range enrollments {
		if enrollmentResp := FromDomainEnrollment(enrollment); enrollmentResp != nil {
			resp.Enrollments[i] = *enrollmentResp
		}
	}

	return resp
}
