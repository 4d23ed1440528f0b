package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SalonBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/timeslot"
	profileClient "github.com/m04kA/SalonBookingService/internal/integrations/profileservice"
	"github.com/m04kA/SalonBookingService/pkg/pgerrors"
)

// UseCase use case бронирования слота
type UseCase struct {
	slotRepo       SlotRepository
	bookingRepo    BookingRepository
	enrollmentRepo EnrollmentRepository
	profileClient  ProfileServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	enrollmentRepo EnrollmentRepository,
	profileClient ProfileServiceClient,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:       slotRepo,
		bookingRepo:    bookingRepo,
		enrollmentRepo: enrollmentRepo,
		profileClient:  profileClient,
		txManager:      txManager,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// Execute выполняет use case бронирования слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, slot=%d", req.UserID, req.TimeSlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что аккаунт пользователя существует.
	// Внешний вызов делаем до открытия транзакции, чтобы не держать
	// блокировку строки слота на время сетевого запроса.
	if _, err := uc.profileClient.GetProfile(ctx, req.UserID); err != nil {
		if errors.Is(err, profileClient.ErrProfileNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get profile id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get profile: %v", ErrInternal, err)
	}

	var resp *Response

	// 3. Захват слота, запись в журнал и создание бронирования -
	// одна SERIALIZABLE транзакция: либо всё, либо ничего.
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Загружаем слот с блокировкой строки (FOR UPDATE)
		slot, err := uc.slotRepo.GetByID(txCtx, req.TimeSlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: slot id=%d not found", req.TimeSlotID)
				return ErrSlotUnavailable
			}
			return wrapInternal("failed to get slot", err)
		}

		// 3.2. Слот должен быть свободен
		if !slot.IsAvailable {
			uc.logger.Warn("CreateBooking: slot id=%d is already taken", req.TimeSlotID)
			return ErrSlotUnavailable
		}

		// 3.3. Слот должен начинаться строго в будущем
		startsAt, err := slot.StartsAt()
		if err != nil {
			return fmt.Errorf("%w: failed to resolve slot start: %v", ErrInternal, err)
		}
		if !startsAt.After(uc.timeProvider.Now()) {
			uc.logger.Warn("CreateBooking: slot id=%d starts at %s, already in the past",
				req.TimeSlotID, startsAt)
			return ErrPastSlot
		}

		// 3.4. Находим или создаем запись (пользователь-мастер-процедура)
		enrollment, err := uc.enrollmentRepo.FindOrCreate(txCtx, req.UserID, slot.MasterID, slot.ProcedureID)
		if err != nil {
			return wrapInternal("failed to find or create enrollment", err)
		}

		// 3.5. Создаем бронирование. Частичный уникальный индекс по
		// time_slot_id - последний рубеж против двойного бронирования.
		booking, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:       req.UserID,
			TimeSlotID:   req.TimeSlotID,
			EnrollmentID: &enrollment.ID,
			Status:       domain.StatusConfirmed,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot id=%d already has a live booking", req.TimeSlotID)
				return ErrSlotUnavailable
			}
			return wrapInternal("failed to create booking", err)
		}

		// 3.6. Закрываем слот для следующих запросов
		if err := uc.slotRepo.MarkUnavailable(txCtx, req.TimeSlotID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotUnavailable) || errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotUnavailable
			}
			return wrapInternal("failed to mark slot unavailable", err)
		}

		resp = toResponse(booking, slot)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotUnavailable) || errors.Is(err, ErrPastSlot) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: booking id=%d created for user=%d, slot=%d, enrollment=%d",
		resp.ID, resp.UserID, resp.TimeSlotID, resp.EnrollmentID)

	return resp, nil
}

// wrapInternal оборачивает неожиданную ошибку транзакции в ErrInternal.
// Конфликт сериализации (40001) пропускается как есть: его должен увидеть
// менеджер транзакций и повторить транзакцию.
func wrapInternal(msg string, err error) error {
	if pgerrors.IsSerializationFailure(err) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
}

func toResponse(booking *domain.Booking, slot *domain.TimeSlot) *Response {
	var enrollmentID int64
	if booking.EnrollmentID != nil {
		enrollmentID = *booking.EnrollmentID
	}

	return &Response{
		ID:           booking.ID,
		UserID:       booking.UserID,
		TimeSlotID:   booking.TimeSlotID,
		EnrollmentID: enrollmentID,
		MasterID:     slot.MasterID,
		ProcedureID:  slot.ProcedureID,
		Date:         slot.Date,
		StartTime:    slot.StartTime,
		EndTime:      slot.EndTime,
		Status:       string(booking.Status),
		CreatedAt:    booking.CreatedAt,
	}
}
