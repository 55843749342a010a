package appointment

import (
	"time"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/doctor"
	"github.com/mal4crypt/genova-health/internal/user"
)

type Appointment struct {
	ID                    uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PatientUserID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_user_id"`
	Patient               user.User         `gorm:"foreignKey:PatientUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	DoctorID              uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Doctor                doctor.Doctor     `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ScheduledAt           time.Time         `gorm:"not null" json:"scheduled_at"`
	DurationMinutes       int               `gorm:"not null;default:30" json:"duration_minutes"`
	Reason                string            `gorm:"type:text" json:"reason,omitempty"`
	Status                AppointmentStatus `gorm:"type:varchar(16);not null;default:'SCHEDULED'" json:"status"`
	GoogleCalendarEventID string            `json:"-"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
}
