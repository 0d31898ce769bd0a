package capacity

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VisitService/internal/domain"
	"github.com/m04kA/SMC-VisitService/internal/integrations/invitationservice"
)

// TimeSlotRepository интерфейс репозитория слотов
type TimeSlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	GetActive(ctx context.Context, locationID *int64) ([]*domain.TimeSlot, error)
}

// LocationRepository интерфейс репозитория локаций
type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
}

// InvitationServiceClient интерфейс клиента для InvitationService
type InvitationServiceClient interface {
	GetApprovedForDate(ctx context.Context, date time.Time, locationID *int64) ([]invitationservice.Invitation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
