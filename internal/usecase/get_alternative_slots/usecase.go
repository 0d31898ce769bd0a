package get_alternative_slots

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-VisitService/internal/domain"
)

// UseCase use case поиска альтернативных слотов с достаточным запасом мест
//
// Поиск ограничен и жадный: дни сканируются вперёд от исходной даты, и как
// только набрано достаточно кандидатов, остальные дни не проверяются.
// Лимит результатов и горизонт в днях держат стоимость сканирования
// предсказуемой независимо от количества настроенных слотов
type UseCase struct {
	slotRepo     TimeSlotRepository
	capacitySvc  CapacityService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo TimeSlotRepository,
	capacitySvc CapacityService,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		capacitySvc:  capacitySvc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет поиск альтернативных слотов
//
// Этот путь выдаёт только предложения и ничего не коммитит, поэтому ошибки
// отдельных дней логируются и сканирование продолжается со следующего дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAlternativeSlots: from=%s, visitors=%d, location=%v, days=%d",
		req.OriginalDateTime.Format(time.RFC3339), req.ExpectedVisitors, req.LocationID, req.DaysToCheck)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAlternativeSlots: validation failed: %v", err)
		return nil, err
	}

	daysToCheck := req.DaysToCheck
	if daysToCheck == 0 {
		daysToCheck = domain.DefaultAlternativeDaysToCheck
	}

	now := uc.timeProvider.Now()
	startDate := dateOnly(req.OriginalDateTime)

	candidates := make([]AlternativeSlot, 0, domain.MaxAlternativeSlots)

	// 2. Сканируем дни вперёд, начиная с даты исходного запроса
	for day := 0; day < daysToCheck; day++ {
		checkDate := startDate.AddDate(0, 0, day)

		slots, err := uc.slotRepo.GetActive(ctx, req.LocationID)
		if err != nil {
			// Неудавшийся день пропускаем: предложения должны собираться
			// из тех дней, которые удалось проверить
			uc.logger.Error("GetAlternativeSlots: failed to load slots for %s: %v",
				checkDate.Format(domain.DateFormat), err)
			continue
		}

		for _, slot := range slots {
			candidate, ok := uc.evaluateSlot(ctx, slot, checkDate, req, now)
			if ok {
				candidates = append(candidates, candidate)
			}
		}

		// 3. Ранний выход: кандидатов достаточно, дальние дни не проверяем
		if len(candidates) >= domain.MaxAlternativeSlots {
			break
		}
	}

	// 4. Ближайшие предложения первыми
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].DateTime.Before(candidates[j].DateTime)
	})

	if len(candidates) > domain.MaxAlternativeSlots {
		candidates = candidates[:domain.MaxAlternativeSlots]
	}

	uc.logger.Info("GetAlternativeSlots: found %d alternatives", len(candidates))

	return &Response{Slots: candidates}, nil
}

// evaluateSlot проверяет один экземпляр слота на конкретную дату
func (uc *UseCase) evaluateSlot(ctx context.Context, slot *domain.TimeSlot, checkDate time.Time, req *Request, now time.Time) (AlternativeSlot, bool) {
	if !slot.ActiveOn(checkDate) {
		return AlternativeSlot{}, false
	}

	slotDateTime, err := slot.StartAt(checkDate)
	if err != nil {
		uc.logger.Warn("GetAlternativeSlots: slot id=%d has invalid start time %q: %v",
			slot.ID, slot.StartTime, err)
		return AlternativeSlot{}, false
	}

	// Исходный момент не предлагаем повторно, прошедшие моменты не предлагаем вовсе
	if slotDateTime.Equal(req.OriginalDateTime) || slotDateTime.Before(now) {
		return AlternativeSlot{}, false
	}

	occupancy, err := uc.capacitySvc.CurrentOccupancy(ctx, slotDateTime, req.LocationID, nil)
	if err != nil {
		uc.logger.Error("GetAlternativeSlots: occupancy check failed for slot id=%d at %s: %v",
			slot.ID, slotDateTime.Format(time.RFC3339), err)
		return AlternativeSlot{}, false
	}

	available := slot.MaxVisitors - occupancy
	if available < req.ExpectedVisitors {
		return AlternativeSlot{}, false
	}

	return AlternativeSlot{
		TimeSlotID:          slot.ID,
		Name:                slot.Name,
		DateTime:            slotDateTime,
		AvailableCapacity:   available,
		OccupancyPercentage: domain.OccupancyPercent(occupancy, slot.MaxVisitors),
	}, true
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
