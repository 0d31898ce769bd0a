package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VisitService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VisitService/internal/infra/storage/booking"
	timeslotRepo "github.com/m04kA/SMC-VisitService/internal/infra/storage/timeslot"
)

// UseCase use case бронирования мест в слоте
//
// Проверка вместимости и вставка выполняются в одной сериализуемой
// транзакции с блокировкой строк слота на дату (FOR UPDATE): два
// конкурентных бронировщика сериализуются вокруг одной суммы мест и
// не могут совместно превысить лимит слота
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     TimeSlotRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo TimeSlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: slot=%d, date=%s, visitors=%d, invitation=%v, by=%s",
		req.TimeSlotID, req.BookingDate.Format(domain.DateFormat), req.VisitorCount, req.InvitationID, req.BookedBy)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Booking

	// 3. Все проверки и вставка — в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Загружаем слот
		slot, err := uc.slotRepo.GetByID(txCtx, req.TimeSlotID)
		if err != nil {
			if errors.Is(err, timeslotRepo.ErrSlotNotFound) {
				uc.logger.Warn("BookSlot: slot id=%d not found", req.TimeSlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("BookSlot: failed to get slot id=%d: %v", req.TimeSlotID, err)
			return fmt.Errorf("%w: failed to get slot: %w", ErrInternal, err)
		}

		if !slot.IsActive {
			uc.logger.Warn("BookSlot: slot id=%d is inactive", req.TimeSlotID)
			return ErrSlotInactive
		}

		// 3.2. Дата не в прошлом
		if isDateInPast(req.BookingDate, now) {
			uc.logger.Warn("BookSlot: date %s is in the past", req.BookingDate.Format(domain.DateFormat))
			return ErrDateInPast
		}

		// 3.3. Слот действует в этот день недели
		if !slot.ActiveDays.Allows(domain.ISOWeekday(req.BookingDate)) {
			uc.logger.Warn("BookSlot: slot id=%d is not active on %s",
				req.TimeSlotID, req.BookingDate.Format(domain.DateFormat))
			return ErrSlotNotActiveOnDay
		}

		// 3.4. Считаем занятые места с блокировкой строк (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetBySlotAndDate(txCtx, domain.SlotBookingsFilter{
			TimeSlotID:  req.TimeSlotID,
			BookingDate: dateOnly(req.BookingDate),
		})
		if err != nil {
			uc.logger.Error("BookSlot: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		current := sumConfirmedVisitors(bookings)
		available := slot.MaxVisitors - current

		if req.VisitorCount > available && !slot.AllowOverlapping {
			uc.logger.Warn("BookSlot: capacity exceeded for slot=%d date=%s: requested=%d, available=%d",
				req.TimeSlotID, req.BookingDate.Format(domain.DateFormat), req.VisitorCount, available)
			return &CapacityError{
				Requested: req.VisitorCount,
				Available: available,
				Current:   current,
				Max:       slot.MaxVisitors,
			}
		}

		// 3.5. У приглашения может быть не больше одного действующего бронирования
		if req.InvitationID != nil {
			existing, err := uc.bookingRepo.GetActiveByInvitationID(txCtx, *req.InvitationID)
			if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Error("BookSlot: failed to check invitation id=%d: %v", *req.InvitationID, err)
				return fmt.Errorf("%w: failed to check invitation: %w", ErrInternal, err)
			}
			if existing != nil {
				uc.logger.Warn("BookSlot: invitation id=%d already has booking id=%d",
					*req.InvitationID, existing.ID)
				return ErrDuplicateBooking
			}
		}

		// 3.6. Собираем бронирование и проверяем бизнес-правила
		booking := &domain.Booking{
			TimeSlotID:   req.TimeSlotID,
			BookingDate:  dateOnly(req.BookingDate),
			InvitationID: req.InvitationID,
			VisitorCount: req.VisitorCount,
			Status:       domain.StatusConfirmed,
			Notes:        req.Notes,
			BookedBy:     req.BookedBy,
		}

		if err := booking.Validate(); err != nil {
			uc.logger.Warn("BookSlot: booking validation failed: %v", err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		// 3.7. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("BookSlot: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookSlot: successfully created booking id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		TimeSlotID:   result.TimeSlotID,
		BookingDate:  result.BookingDate,
		InvitationID: result.InvitationID,
		VisitorCount: result.VisitorCount,
		Status:       string(result.Status),
		Notes:        result.Notes,
		BookedBy:     result.BookedBy,
		BookedOn:     result.BookedOn,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
