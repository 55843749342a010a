package appointment

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentDTO struct {
	DoctorID        uuid.UUID `json:"doctor_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Reason          string    `json:"reason"`
}

type UpdateStatusDTO struct {
	Status AppointmentStatus `json:"status"`
}
