package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VisitService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VisitService/internal/infra/storage/booking"
	timeslotRepo "github.com/m04kA/SMC-VisitService/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-VisitService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	slotRepo     TimeSlotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	slotRepo TimeSlotRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetSlotBookings получает бронирования слота на дату
// Опционально включает отменённые бронирования
func (s *Service) GetSlotBookings(ctx context.Context, req *models.GetSlotBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetSlotBookings: fetching bookings for slot=%d, date=%s, includeInactive=%v",
		req.TimeSlotID, req.Date.Format(domain.DateFormat), req.IncludeInactive)

	if req.TimeSlotID <= 0 {
		s.logger.Warn("GetSlotBookings: invalid timeSlotID=%d", req.TimeSlotID)
		return nil, fmt.Errorf("%w: timeSlotID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		s.logger.Warn("GetSlotBookings: date is required for slot=%d", req.TimeSlotID)
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetBySlotAndDate(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetSlotBookings: repository error for slot=%d: %v", req.TimeSlotID, err)
		return nil, fmt.Errorf("%w: GetSlotBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSlotBookings: successfully fetched %d bookings for slot=%d", len(bookings), req.TimeSlotID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Отменить можно только подтверждённое бронирование и только до начала слота
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by %s", bookingID, req.CancelledBy)

	if strings.TrimSpace(req.CancelledBy) == "" {
		s.logger.Warn("Cancel: cancelledBy is required for booking id=%d", bookingID)
		return fmt.Errorf("%w: cancelledBy is required", ErrInvalidInput)
	}
	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%d", bookingID)
		return fmt.Errorf("%w: cancellation reason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Проверяем, что слот ещё не начался
	if err := s.checkCancellationCutoff(ctx, booking); err != nil {
		return err
	}

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancelledBy, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		if errors.Is(err, bookingRepo.ErrCannotCancel) {
			s.logger.Warn("Cancel: booking id=%d already cancelled concurrently", bookingID)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// checkCancellationCutoff запрещает отмену после начала слота
// Если слот удалён, отмена разрешается: бронирование в несуществующем слоте
// не должно оставаться заблокированным
func (s *Service) checkCancellationCutoff(ctx context.Context, booking *domain.Booking) error {
	slot, err := s.slotRepo.GetByID(ctx, booking.TimeSlotID)
	if err != nil {
		if errors.Is(err, timeslotRepo.ErrSlotNotFound) {
			s.logger.Warn("Cancel: slot id=%d for booking id=%d no longer exists, allowing cancellation",
				booking.TimeSlotID, booking.ID)
			return nil
		}
		s.logger.Error("Cancel: failed to get slot id=%d: %v", booking.TimeSlotID, err)
		return fmt.Errorf("%w: Cancel - failed to get slot: %v", ErrInternal, err)
	}

	slotStart, err := slot.StartAt(booking.BookingDate)
	if err != nil {
		s.logger.Error("Cancel: failed to resolve start time for slot id=%d: %v", slot.ID, err)
		return fmt.Errorf("%w: Cancel - failed to resolve slot start: %v", ErrInternal, err)
	}

	if s.timeProvider.Now().After(slotStart) {
		s.logger.Warn("Cancel: booking id=%d slot already started at %s", booking.ID, slotStart)
		return ErrCancellationTooLate
	}

	return nil
}
