package capacity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VisitService/internal/domain"
	locationRepo "github.com/m04kA/SMC-VisitService/internal/infra/storage/location"
	timeslotRepo "github.com/m04kA/SMC-VisitService/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-VisitService/internal/integrations/invitationservice"
	"github.com/m04kA/SMC-VisitService/pkg/types"
)

// Service вычисляет текущую загруженность и предел вместимости
// для произвольного момента времени и локации
//
// Сервис не хранит состояния: все данные читаются из инжектированных
// коллабораторов на каждый вызов. Чтения безопасны для конкурентного
// выполнения и могут видеть слегка устаревшие данные — для консультативной
// валидации это допустимо
type Service struct {
	slotRepo         TimeSlotRepository
	locationRepo     LocationRepository
	invitationClient InvitationServiceClient
	logger           Logger
}

// NewService создает новый экземпляр сервиса вместимости
func NewService(
	slotRepo TimeSlotRepository,
	locationRepo LocationRepository,
	invitationClient InvitationServiceClient,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:         slotRepo,
		locationRepo:     locationRepo,
		invitationClient: invitationClient,
		logger:           logger,
	}
}

// CurrentOccupancy возвращает суммарное ожидаемое число посетителей
// по одобренным приглашениям, чей запланированный интервал содержит момент at
//
// excludeInvitationID исключает одно приглашение из суммы — используется
// при перепроверке вместимости для уже существующего приглашения
func (s *Service) CurrentOccupancy(ctx context.Context, at time.Time, locationID *int64, excludeInvitationID *int64) (int, error) {
	invitations, err := s.invitationClient.GetApprovedForDate(ctx, at, locationID)
	if err != nil {
		s.logger.Error("CurrentOccupancy: failed to get invitations for %s: %v", at.Format(time.RFC3339), err)
		return 0, fmt.Errorf("%w: CurrentOccupancy - invitation provider: %v", ErrInternal, err)
	}

	occupancy := 0
	for _, inv := range invitations {
		if inv.Status != invitationservice.StatusApproved {
			continue
		}
		if excludeInvitationID != nil && inv.ID == *excludeInvitationID {
			continue
		}
		if locationID != nil && !inv.AtLocation(*locationID) {
			continue
		}
		if !inv.Covers(at) {
			continue
		}
		occupancy += inv.ExpectedVisitorCount
	}

	return occupancy, nil
}

// MaxCapacity возвращает предел вместимости для момента at
//
// Порядок разрешения:
//  1. Слот: явно указанный timeSlotID, либо первый активный слот, действующий
//     в этот день недели и содержащий это время дня
//  2. Локация: если указан locationID и локация найдена и активна
//  3. Комбинация: min(слот, локация), когда разрешились оба
//  4. Ничего не разрешилось — системный дефолт
func (s *Service) MaxCapacity(ctx context.Context, at time.Time, locationID *int64, timeSlotID *int64) (int, error) {
	slot, err := s.resolveSlot(ctx, at, locationID, timeSlotID)
	if err != nil {
		return 0, err
	}

	loc, err := s.resolveLocation(ctx, locationID)
	if err != nil {
		return 0, err
	}

	switch {
	case slot != nil && loc != nil:
		if slot.MaxVisitors < loc.MaxCapacity {
			return slot.MaxVisitors, nil
		}
		return loc.MaxCapacity, nil
	case loc != nil:
		return loc.MaxCapacity, nil
	case slot != nil:
		return slot.MaxVisitors, nil
	default:
		s.logger.Info("MaxCapacity: no slot or location resolved for %s, using default %d",
			at.Format(time.RFC3339), domain.DefaultMaxCapacity)
		return domain.DefaultMaxCapacity, nil
	}
}

// resolveSlot находит слот, определяющий вместимость в момент at
func (s *Service) resolveSlot(ctx context.Context, at time.Time, locationID *int64, timeSlotID *int64) (*domain.TimeSlot, error) {
	// Явно указанный слот имеет приоритет над поиском по времени
	if timeSlotID != nil {
		slot, err := s.slotRepo.GetByID(ctx, *timeSlotID)
		if err != nil {
			if errors.Is(err, timeslotRepo.ErrSlotNotFound) {
				return nil, ErrSlotNotFound
			}
			s.logger.Error("MaxCapacity: failed to get slot id=%d: %v", *timeSlotID, err)
			return nil, fmt.Errorf("%w: MaxCapacity - slot repository: %v", ErrInternal, err)
		}
		if !slot.IsActive {
			return nil, nil
		}
		return slot, nil
	}

	slots, err := s.slotRepo.GetActive(ctx, locationID)
	if err != nil {
		s.logger.Error("MaxCapacity: failed to list active slots: %v", err)
		return nil, fmt.Errorf("%w: MaxCapacity - slot repository: %v", ErrInternal, err)
	}

	timeOfDay := types.NewTimeString(at)
	for _, slot := range slots {
		if slot.ActiveOn(at) && slot.ContainsTime(timeOfDay) {
			return slot, nil
		}
	}

	return nil, nil
}

// resolveLocation загружает локацию, если она указана, найдена и активна
// Отсутствующая или неактивная локация не участвует в расчёте предела
func (s *Service) resolveLocation(ctx context.Context, locationID *int64) (*domain.Location, error) {
	if locationID == nil {
		return nil, nil
	}

	loc, err := s.locationRepo.GetByID(ctx, *locationID)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			s.logger.Warn("MaxCapacity: location id=%d not found", *locationID)
			return nil, nil
		}
		s.logger.Error("MaxCapacity: failed to get location id=%d: %v", *locationID, err)
		return nil, fmt.Errorf("%w: MaxCapacity - location repository: %v", ErrInternal, err)
	}

	if !loc.IsActive {
		return nil, nil
	}

	return loc, nil
}
