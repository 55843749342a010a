package rating

import (
	"time"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/appointment"
	"github.com/mal4crypt/genova-health/internal/doctor"
	"github.com/mal4crypt/genova-health/internal/user"
)

type Rating struct {
	ID            uuid.UUID               `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DoctorID      uuid.UUID               `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Doctor        doctor.Doctor           `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	PatientUserID uuid.UUID               `gorm:"type:uuid;not null;index" json:"patient_user_id"`
	Patient       user.User               `gorm:"foreignKey:PatientUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	AppointmentID uuid.UUID               `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id"`
	Appointment   appointment.Appointment `gorm:"foreignKey:AppointmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Score         int                     `gorm:"not null" json:"score"`
	Comment       string                  `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
}
