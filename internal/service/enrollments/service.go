package enrollments

import (
	"context"
	"errors"
	"fmt"

	enrollmentRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/enrollment"
	listingRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/listing"
	"github.com/m04kA/SalonBookingService/internal/service/enrollments/models"
)

// Service сервис для работы с журналом записей
type Service struct {
	enrollmentRepo EnrollmentRepository
	listingRepo    ListingRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	enrollmentRepo EnrollmentRepository,
	listingRepo ListingRepository,
	logger Logger,
) *Service {
	return &Service{
		enrollmentRepo: enrollmentRepo,
		listingRepo:    listingRepo,
		logger:         logger,
	}
}

// Create создает запись (пользователь-мастер-процедура).
// Повторный вызов с той же тройкой возвращает существующую запись.
func (s *Service) Create(ctx context.Context, req *models.CreateEnrollmentRequest) (*models.EnrollmentResponse, error) {
	s.logger.Info("Create: enrollment user=%d, master=%d, procedure=%d",
		req.UserID, req.MasterID, req.ProcedureID)

	if err := validateTriple(req.UserID, req.MasterID, req.ProcedureID); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// Записаться можно только на процедуру из прейскуранта мастера
	if _, err := s.listingRepo.GetByMasterAndProcedure(ctx, req.MasterID, req.ProcedureID); err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			s.logger.Warn("Create: master=%d does not list procedure=%d", req.MasterID, req.ProcedureID)
			return nil, ErrListingNotFound
		}
		s.logger.Error("Create: failed to get listing: %v", err)
		return nil, fmt.Errorf("%w: Create - failed to get listing: %v", ErrInternal, err)
	}

	enrollment, err := s.enrollmentRepo.FindOrCreate(ctx, req.UserID, req.MasterID, req.ProcedureID)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: enrollment id=%d for user=%d, master=%d, procedure=%d",
		enrollment.ID, req.UserID, req.MasterID, req.ProcedureID)
	return models.FromDomainEnrollment(enrollment), nil
}

// Delete удаляет запись по тройке (пользователь, мастер, процедура)
func (s *Service) Delete(ctx context.Context, req *models.DeleteEnrollmentRequest) error {
	s.logger.Info("Delete: enrollment user=%d, master=%d, procedure=%d",
		req.UserID, req.MasterID, req.ProcedureID)

	if err := validateTriple(req.UserID, req.MasterID, req.ProcedureID); err != nil {
		s.logger.Warn("Delete: validation failed: %v", err)
		return err
	}

	if err := s.enrollmentRepo.Delete(ctx, req.UserID, req.MasterID, req.ProcedureID); err != nil {
		if errors.Is(err, enrollmentRepo.ErrEnrollmentNotFound) {
			s.logger.Warn("Delete: enrollment not found for user=%d, master=%d, procedure=%d",
				req.UserID, req.MasterID, req.ProcedureID)
			return ErrEnrollmentNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: enrollment deleted for user=%d, master=%d, procedure=%d",
		req.UserID, req.MasterID, req.ProcedureID)
	return nil
}

// ListByUser получает все записи пользователя
func (s *Service) ListByUser(ctx context.Context, userID int64) (*models.EnrollmentListResponse, error) {
	s.logger.Info("ListByUser: fetching enrollments for user=%d", userID)

	if userID <= 0 {
		s.logger.Warn("ListByUser: invalid userID=%d", userID)
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	enrollments, err := s.enrollmentRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByUser: successfully fetched %d enrollments for user=%d", len(enrollments), userID)
	return models.FromDomainEnrollmentList(enrollments), nil
}

func validateTriple(userID, masterID, procedureID int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if masterID <= 0 {
		return fmt.Errorf("%w: masterID must be positive", ErrInvalidInput)
	}

	if procedureID <= 0 {
		return fmt.Errorf("%w: procedureID must be positive", ErrInvalidInput)
	}

	return nil
}
