package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SalonBookingService/internal/domain"
	listingRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/listing"
	procedureRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/procedure"
	profileClient "github.com/m04kA/SalonBookingService/internal/integrations/profileservice"
	"github.com/m04kA/SalonBookingService/internal/service/catalog/models"
)

// Service сервис каталога процедур и прейскурантов мастеров
type Service struct {
	procedureRepo ProcedureRepository
	listingRepo   ListingRepository
	profileClient ProfileServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	procedureRepo ProcedureRepository,
	listingRepo ListingRepository,
	profileClient ProfileServiceClient,
	logger Logger,
) *Service {
	return &Service{
		procedureRepo: procedureRepo,
		listingRepo:   listingRepo,
		profileClient: profileClient,
		logger:        logger,
	}
}

// CreateProcedure создает процедуру в каталоге
func (s *Service) CreateProcedure(ctx context.Context, req *models.CreateProcedureRequest) (*models.ProcedureResponse, error) {
	s.logger.Info("CreateProcedure: name=%q, duration=%dh", req.Name, req.DurationHours)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		s.logger.Warn("CreateProcedure: empty name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if req.DurationHours <= 0 {
		s.logger.Warn("CreateProcedure: invalid duration=%d", req.DurationHours)
		return nil, fmt.Errorf("%w: durationHours must be positive", ErrInvalidInput)
	}

	procedure, err := s.procedureRepo.Create(ctx, &domain.Procedure{
		Name:          name,
		DurationHours: req.DurationHours,
	})
	if err != nil {
		if errors.Is(err, procedureRepo.ErrDuplicateName) {
			s.logger.Warn("CreateProcedure: name=%q already exists", name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("CreateProcedure: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateProcedure - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateProcedure: procedure id=%d created", procedure.ID)
	return models.FromDomainProcedure(procedure), nil
}

// ListProcedures получает каталог процедур
func (s *Service) ListProcedures(ctx context.Context) (*models.ProcedureListResponse, error) {
	s.logger.Info("ListProcedures: fetching catalog")

	procedures, err := s.procedureRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListProcedures: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProcedures - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListProcedures: successfully fetched %d procedures", len(procedures))
	return models.FromDomainProcedureList(procedures), nil
}

// UpsertListing добавляет процедуру в прейскурант мастера или обновляет цену
func (s *Service) UpsertListing(ctx context.Context, req *models.UpsertListingRequest) (*models.ListingResponse, error) {
	s.logger.Info("UpsertListing: master=%d, procedure=%d, price=%.2f",
		req.MasterID, req.ProcedureID, req.Price)

	if req.MasterID <= 0 {
		return nil, fmt.Errorf("%w: masterID must be positive", ErrInvalidInput)
	}

	if req.ProcedureID <= 0 {
		return nil, fmt.Errorf("%w: procedureID must be positive", ErrInvalidInput)
	}

	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	// Аккаунт должен существовать и иметь роль мастера
	profile, err := s.profileClient.GetProfile(ctx, req.MasterID)
	if err != nil {
		if errors.Is(err, profileClient.ErrProfileNotFound) {
			s.logger.Warn("UpsertListing: master id=%d not found", req.MasterID)
			return nil, ErrMasterNotFound
		}
		s.logger.Error("UpsertListing: failed to get profile id=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: UpsertListing - failed to get profile: %v", ErrInternal, err)
	}

	if !profile.IsMaster() {
		s.logger.Warn("UpsertListing: account id=%d has role=%s, expected master", req.MasterID, profile.Role)
		return nil, ErrNotAMaster
	}

	// Процедура должна существовать в каталоге
	if _, err := s.procedureRepo.GetByID(ctx, req.ProcedureID); err != nil {
		if errors.Is(err, procedureRepo.ErrProcedureNotFound) {
			s.logger.Warn("UpsertListing: procedure id=%d not found", req.ProcedureID)
			return nil, ErrProcedureNotFound
		}
		s.logger.Error("UpsertListing: failed to get procedure id=%d: %v", req.ProcedureID, err)
		return nil, fmt.Errorf("%w: UpsertListing - failed to get procedure: %v", ErrInternal, err)
	}

	listing, err := s.listingRepo.Upsert(ctx, &domain.MasterListing{
		MasterID:    req.MasterID,
		ProcedureID: req.ProcedureID,
		Price:       req.Price,
	})
	if err != nil {
		s.logger.Error("UpsertListing: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpsertListing - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertListing: master=%d now lists procedure=%d at %.2f",
		listing.MasterID, listing.ProcedureID, listing.Price)
	return models.FromDomainListing(listing), nil
}

// ListMasterProcedures получает прейскурант мастера
func (s *Service) ListMasterProcedures(ctx context.Context, masterID int64) (*models.ListingListResponse, error) {
	s.logger.Info("ListMasterProcedures: fetching listings for master=%d", masterID)

	if masterID <= 0 {
		s.logger.Warn("ListMasterProcedures: invalid masterID=%d", masterID)
		return nil, fmt.Errorf("%w: masterID must be positive", ErrInvalidInput)
	}

	listings, err := s.listingRepo.ListByMaster(ctx, masterID)
	if err != nil {
		s.logger.Error("ListMasterProcedures: repository error for master=%d: %v", masterID, err)
		return nil, fmt.Errorf("%w: ListMasterProcedures - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListMasterProcedures: successfully fetched %d listings for master=%d", len(listings), masterID)
	return models.FromDomainListingList(listings), nil
}

// DeleteListing убирает процедуру из прейскуранта мастера
func (s *Service) DeleteListing(ctx context.Context, masterID, procedureID int64) error {
	s.logger.Info("DeleteListing: master=%d, procedure=%d", masterID, procedureID)

	if masterID <= 0 || procedureID <= 0 {
		return fmt.Errorf("%w: masterID and procedureID must be positive", ErrInvalidInput)
	}

	if err := s.listingRepo.Delete(ctx, masterID, procedureID); err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			s.logger.Warn("DeleteListing: master=%d does not list procedure=%d", masterID, procedureID)
			return ErrListingNotFound
		}
		s.logger.Error("DeleteListing: repository error: %v", err)
		return fmt.Errorf("%w: DeleteListing - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteListing: master=%d no longer lists procedure=%d", masterID, procedureID)
	return nil
}
