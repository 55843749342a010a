package gcalendar

import (
	"time"

	"github.com/google/uuid"
)

type CalendarAppointment struct {
	ID            uuid.UUID
	Title         string
	Notes         string
	StartsAt      *time.Time
	EndsAt        *time.Time
	GoogleEventID *string
}
