package validate_capacity

import (
	"context"
	"time"

	getAlternativeSlots "github.com/m04kA/SMC-VisitService/internal/usecase/get_alternative_slots"
)

// CapacityService интерфейс сервиса вместимости
type CapacityService interface {
	CurrentOccupancy(ctx context.Context, at time.Time, locationID *int64, excludeInvitationID *int64) (int, error)
	MaxCapacity(ctx context.Context, at time.Time, locationID *int64, timeSlotID *int64) (int, error)
}

// AlternativeSlotsFinder интерфейс поиска альтернативных слотов
type AlternativeSlotsFinder interface {
	Execute(ctx context.Context, req *getAlternativeSlots.Request) (*getAlternativeSlots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
