package get_alternative_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VisitService/internal/domain"
)

// TimeSlotRepository интерфейс репозитория слотов
type TimeSlotRepository interface {
	GetActive(ctx context.Context, locationID *int64) ([]*domain.TimeSlot, error)
}

// CapacityService интерфейс сервиса вместимости
type CapacityService interface {
	CurrentOccupancy(ctx context.Context, at time.Time, locationID *int64, excludeInvitationID *int64) (int, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
