package validate_capacity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VisitService/internal/domain"
	capacityService "github.com/m04kA/SMC-VisitService/internal/service/capacity"
	getAlternativeSlots "github.com/m04kA/SMC-VisitService/internal/usecase/get_alternative_slots"
)

const (
	msgCapacityShortfall = "недостаточно мест: запрошено %d, свободно %d из %d"
	msgVipOverride       = "VIP-запрос: допуск разрешён несмотря на превышение вместимости"
	msgHighOccupancy     = "высокая загруженность: %.2f%%"
)

// UseCase use case проверки вместимости для запрашиваемого посещения
//
// Проверка консультативная: она ничего не бронирует и не резервирует.
// Ошибки поставщиков данных пробрасываются сразу, без повторов —
// решение о допуске не должно приниматься на неполных данных
type UseCase struct {
	capacitySvc CapacityService
	altFinder   AlternativeSlotsFinder
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	capacitySvc CapacityService,
	altFinder AlternativeSlotsFinder,
	logger Logger,
) *UseCase {
	return &UseCase{
		capacitySvc: capacitySvc,
		altFinder:   altFinder,
		logger:      logger,
	}
}

// Execute выполняет проверку вместимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateCapacity: at=%s, location=%v, slot=%v, visitors=%d, vip=%t",
		req.DateTime.Format(time.RFC3339), req.LocationID, req.TimeSlotID, req.ExpectedVisitors, req.IsVipRequest)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateCapacity: validation failed: %v", err)
		return nil, err
	}

	// 2. Предел вместимости и текущая занятость на запрошенный момент
	maxCapacity, err := uc.capacitySvc.MaxCapacity(ctx, req.DateTime, req.LocationID, req.TimeSlotID)
	if err != nil {
		if errors.Is(err, capacityService.ErrSlotNotFound) {
			uc.logger.Warn("ValidateCapacity: slot id=%v not found", req.TimeSlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("ValidateCapacity: failed to resolve max capacity: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve max capacity: %v", ErrInternal, err)
	}

	currentOccupancy, err := uc.capacitySvc.CurrentOccupancy(ctx, req.DateTime, req.LocationID, req.ExcludeInvitationID)
	if err != nil {
		uc.logger.Error("ValidateCapacity: failed to compute occupancy: %v", err)
		return nil, fmt.Errorf("%w: failed to compute occupancy: %v", ErrInternal, err)
	}

	// 3. Производные показатели
	availableSlots := maxCapacity - currentOccupancy
	occupancyPercentage := domain.OccupancyPercent(currentOccupancy, maxCapacity)

	resp := &Response{
		IsAvailable:         availableSlots >= req.ExpectedVisitors,
		MaxCapacity:         maxCapacity,
		CurrentOccupancy:    currentOccupancy,
		AvailableSlots:      availableSlots,
		OccupancyPercentage: occupancyPercentage,
		IsWarningLevel:      domain.IsWarningOccupancy(occupancyPercentage),
		Messages:            []string{},
		AlternativeSlots:    []AlternativeSlot{},
	}

	// 4. VIP-исключение: допуск разрешается несмотря на нехватку мест
	// Это осознанное правило политики допуска, а не обход проверки:
	// факт исключения всегда отражается отдельным сообщением
	if !resp.IsAvailable && req.IsVipRequest {
		resp.IsAvailable = true
		resp.Messages = append(resp.Messages, msgVipOverride)
		uc.logger.Info("ValidateCapacity: VIP override applied, occupancy=%d/%d", currentOccupancy, maxCapacity)
	}

	// 5. Мест не хватает: объясняем и предлагаем альтернативы
	if !resp.IsAvailable {
		resp.Messages = append(resp.Messages,
			fmt.Sprintf(msgCapacityShortfall, req.ExpectedVisitors, availableSlots, maxCapacity))

		alternatives, err := uc.findAlternatives(ctx, req)
		if err != nil {
			uc.logger.Error("ValidateCapacity: alternative search failed: %v", err)
			return nil, fmt.Errorf("%w: alternative search failed: %v", ErrInternal, err)
		}
		resp.AlternativeSlots = alternatives
	} else if resp.IsWarningLevel {
		// 6. Мест хватает, но загруженность у порога — предупреждаем
		resp.Messages = append(resp.Messages, fmt.Sprintf(msgHighOccupancy, occupancyPercentage))
	}

	uc.logger.Info("ValidateCapacity: available=%t, occupancy=%d/%d (%.2f%%), alternatives=%d",
		resp.IsAvailable, currentOccupancy, maxCapacity, occupancyPercentage, len(resp.AlternativeSlots))

	return resp, nil
}

// findAlternatives запускает ограниченный поиск альтернативных слотов
func (uc *UseCase) findAlternatives(ctx context.Context, req *Request) ([]AlternativeSlot, error) {
	result, err := uc.altFinder.Execute(ctx, &getAlternativeSlots.Request{
		OriginalDateTime: req.DateTime,
		ExpectedVisitors: req.ExpectedVisitors,
		LocationID:       req.LocationID,
		DaysToCheck:      domain.DefaultAlternativeDaysToCheck,
	})
	if err != nil {
		return nil, err
	}

	alternatives := make([]AlternativeSlot, len(result.Slots))
	for i, slot := range result.Slots {
		alternatives[i] = AlternativeSlot{
			TimeSlotID:          slot.TimeSlotID,
			Name:                slot.Name,
			DateTime:            slot.DateTime,
			AvailableCapacity:   slot.AvailableCapacity,
			OccupancyPercentage: slot.OccupancyPercentage,
		}
	}

	return alternatives, nil
}
