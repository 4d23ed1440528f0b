package generate_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SalonBookingService/internal/domain"
	listingRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/listing"
	profileClient "github.com/m04kA/SalonBookingService/internal/integrations/profileservice"
)

// UseCase use case генерации слотов по рабочему окну мастера
type UseCase struct {
	slotRepo      SlotRepository
	listingRepo   ListingRepository
	profileClient ProfileServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	listingRepo ListingRepository,
	profileClient ProfileServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:      slotRepo,
		listingRepo:   listingRepo,
		profileClient: profileClient,
		logger:        logger,
	}
}

// Execute выполняет use case генерации слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: master=%d, procedure=%d, date=%s, window=%s-%s, duration=%d",
		req.MasterID, req.ProcedureID, req.Date.Format(domain.DateFormat),
		req.StartTime, req.EndTime, req.SlotDurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что аккаунт существует и имеет роль мастера
	profile, err := uc.profileClient.GetProfile(ctx, req.MasterID)
	if err != nil {
		if errors.Is(err, profileClient.ErrProfileNotFound) {
			uc.logger.Warn("GenerateSlots: master id=%d not found", req.MasterID)
			return nil, ErrMasterNotFound
		}
		uc.logger.Error("GenerateSlots: failed to get profile id=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to get profile: %v", ErrInternal, err)
	}

	if !profile.IsMaster() {
		uc.logger.Warn("GenerateSlots: account id=%d has role=%s, expected master", req.MasterID, profile.Role)
		return nil, ErrNotAMaster
	}

	// 3. Мастер должен предлагать процедуру, на которую публикует слоты
	if _, err := uc.listingRepo.GetByMasterAndProcedure(ctx, req.MasterID, req.ProcedureID); err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			uc.logger.Warn("GenerateSlots: master=%d does not list procedure=%d", req.MasterID, req.ProcedureID)
			return nil, ErrListingNotFound
		}
		uc.logger.Error("GenerateSlots: failed to get listing: %v", err)
		return nil, fmt.Errorf("%w: failed to get listing: %v", ErrInternal, err)
	}

	// 4. Генерируем слоты (чистая функция)
	slots, err := generateTimeSlots(
		req.MasterID,
		req.ProcedureID,
		req.Date,
		req.StartTime,
		req.EndTime,
		req.SlotDurationMinutes,
	)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// Окно должно давать хотя бы один слот
	if len(slots) == 0 {
		uc.logger.Warn("GenerateSlots: window %s-%s shorter than slot duration %d",
			req.StartTime, req.EndTime, req.SlotDurationMinutes)
		return nil, fmt.Errorf("%w: window does not fit a single slot", ErrInvalidScheduleWindow)
	}

	// 5. Персистим. Дубликаты по (master, procedure, date, start_time)
	// молча пропускаются - повторная генерация идемпотентна.
	inserted, err := uc.slotRepo.BulkCreate(ctx, slots)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to insert slots: %v", err)
		return nil, fmt.Errorf("%w: failed to insert slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GenerateSlots: generated %d slots, inserted %d (duplicates skipped) for master=%d, procedure=%d, date=%s",
		len(slots), len(inserted), req.MasterID, req.ProcedureID, req.Date.Format(domain.DateFormat))

	return toResponse(req, inserted), nil
}

func toResponse(req *Request, slots []*domain.TimeSlot) *Response {
	out := make([]Slot, len(slots))
	for i, s := range slots {
		out[i] = Slot{
			ID:                  s.ID,
			StartTime:           s.StartTime,
			EndTime:             s.EndTime,
			SlotDurationMinutes: s.SlotDurationMinutes,
			IsAvailable:         s.IsAvailable,
		}
	}

	return &Response{
		MasterID:    req.MasterID,
		ProcedureID: req.ProcedureID,
		Date:        req.Date,
		Slots:       out,
	}
}
