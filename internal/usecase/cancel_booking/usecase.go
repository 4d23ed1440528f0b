package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/timeslot"
)

// UseCase use case отмены бронирования
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelBooking: booking=%d, slot=%d", req.BookingID, req.TimeSlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return err
	}

	// 2. Смена статуса и открытие слота - одна транзакция
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Слот из запроса обязан совпадать со слотом бронирования
		if booking.TimeSlotID != req.TimeSlotID {
			uc.logger.Warn("CancelBooking: booking id=%d belongs to slot=%d, got slot=%d",
				req.BookingID, booking.TimeSlotID, req.TimeSlotID)
			return ErrSlotMismatch
		}

		// Уже отменённое бронирование отменить нельзя
		if booking.IsCanceled() {
			uc.logger.Warn("CancelBooking: booking id=%d is already canceled", req.BookingID)
			return ErrBookingNotFound
		}

		// Бронирование не удаляем - переводим в canceled, история сохраняется
		if err := uc.bookingRepo.Cancel(txCtx, req.BookingID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		// Открываем слот для повторного бронирования
		if err := uc.slotRepo.MarkAvailable(txCtx, booking.TimeSlotID); err != nil {
			// Слот мог быть уже открыт - состояние консистентно, не ошибка
			if errors.Is(err, slotRepo.ErrSlotAlreadyAvailable) {
				uc.logger.Warn("CancelBooking: slot id=%d was already available", booking.TimeSlotID)
				return nil
			}
			return fmt.Errorf("%w: failed to reopen slot: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrSlotMismatch) {
			return err
		}
		uc.logger.Error("CancelBooking: transaction failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelBooking: booking id=%d canceled, slot id=%d reopened", req.BookingID, req.TimeSlotID)

	return nil
}
