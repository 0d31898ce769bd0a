package invitationservice

import "time"

// InvitationStatus статус приглашения во внешнем сервисе
type InvitationStatus string

const (
	// StatusApproved единственный статус, учитываемый при расчёте загруженности
	StatusApproved InvitationStatus = "approved"
)

// Invitation приглашение из InvitationService
// Этот сервис читает приглашения только для расчёта загруженности
type Invitation struct {
	ID                   int64            `json:"id"`
	Status               InvitationStatus `json:"status"`
	ScheduledStartTime   time.Time        `json:"scheduled_start_time"`
	ScheduledEndTime     time.Time        `json:"scheduled_end_time"`
	ExpectedVisitorCount int              `json:"expected_visitor_count"`
	LocationID           *int64           `json:"location_id,omitempty"`
}

// Covers возвращает true, если запланированный интервал приглашения содержит момент at
// Границы интервала включительны
func (i *Invitation) Covers(at time.Time) bool {
	return !at.Before(i.ScheduledStartTime) && !at.After(i.ScheduledEndTime)
}

// AtLocation возвращает true, если приглашение относится к указанной локации
// Приглашение без локации относится к любой
func (i *Invitation) AtLocation(locationID int64) bool {
	return i.LocationID == nil || *i.LocationID == locationID
}

// ErrorResponse модель ошибки от InvitationService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
