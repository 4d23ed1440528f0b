package slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/internal/service/slots/models"
)

// Service сервис для чтения расписания слотов
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// List получает слоты по опциональным фильтрам, занятые включительно.
// Без фильтров возвращается полное расписание.
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	s.logger.Info("List: fetching slots")

	if err := validateListRequest(req); err != nil {
		s.logger.Warn("List: validation failed: %v", err)
		return nil, err
	}

	slots, err := s.slotRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d slots", len(slots))
	return models.FromDomainSlotList(slots), nil
}

// ListAvailable получает свободные слоты мастера по процедуре на дату.
// В отличие от List, мастер, процедура и дата обязательны.
func (s *Service) ListAvailable(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	if err := validateAvailableRequest(req); err != nil {
		s.logger.Warn("ListAvailable: validation failed: %v", err)
		return nil, err
	}

	s.logger.Info("ListAvailable: fetching available slots for master=%d, procedure=%d, date=%s",
		*req.MasterID, *req.ProcedureID, req.Date.Format(domain.DateFormat))

	filter := req.ToDomainFilter()
	filter.OnlyAvailable = true

	slots, err := s.slotRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListAvailable: repository error for master=%d: %v", *req.MasterID, err)
		return nil, fmt.Errorf("%w: ListAvailable - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAvailable: successfully fetched %d available slots for master=%d", len(slots), *req.MasterID)
	return models.FromDomainSlotList(slots), nil
}

// validateListRequest проверяет только заданные фильтры - все они опциональны
func validateListRequest(req *models.ListSlotsRequest) error {
	if req.MasterID != nil && *req.MasterID <= 0 {
		return fmt.Errorf("%w: masterID must be positive", ErrInvalidInput)
	}

	if req.ProcedureID != nil && *req.ProcedureID <= 0 {
		return fmt.Errorf("%w: procedureID must be positive", ErrInvalidInput)
	}

	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

func validateAvailableRequest(req *models.ListSlotsRequest) error {
	if req.MasterID == nil {
		return fmt.Errorf("%w: masterID is required", ErrInvalidInput)
	}

	if req.ProcedureID == nil {
		return fmt.Errorf("%w: procedureID is required", ErrInvalidInput)
	}

	if req.Date == nil {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return validateListRequest(req)
}
