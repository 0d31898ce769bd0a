package domain

import (
	"time"

	"github.com/m04kA/SMC-VisitService/pkg/types"
)

// TimeSlot повторяющееся дневное окно посещений
// Жизненный цикл слотов управляется внешней подсистемой, здесь они только читаются
type TimeSlot struct {
	ID          int64
	Name        string
	StartTime   types.TimeString
	EndTime     types.TimeString
	MaxVisitors int
	ActiveDays  Weekdays // пустая маска = слот действует каждый день
	LocationID  *int64   // nil = слот действует на всех локациях
	// AllowOverlapping отключает контроль вместимости слота при бронировании
	AllowOverlapping bool
	IsActive         bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsGlobal возвращает true, если слот не привязан к конкретной локации
func (s *TimeSlot) IsGlobal() bool {
	return s.LocationID == nil
}

// ActiveOn возвращает true, если слот действует в указанную дату
func (s *TimeSlot) ActiveOn(date time.Time) bool {
	return s.ActiveDays.Allows(ISOWeekday(date))
}

// ContainsTime возвращает true, если время дня попадает в окно слота
// Начало включительно, конец не включительно
func (s *TimeSlot) ContainsTime(t types.TimeString) bool {
	return !t.IsBefore(s.StartTime) && t.IsBefore(s.EndTime)
}

// StartAt возвращает момент начала слота в указанную дату
func (s *TimeSlot) StartAt(date time.Time) (time.Time, error) {
	return s.StartTime.At(date)
}

// Location физическая локация с собственным пределом вместимости
// Управляется внешней подсистемой, здесь только читается
type Location struct {
	ID          int64
	Name        string
	MaxCapacity int
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
