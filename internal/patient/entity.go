package patient

import (
	"time"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/user"
)

type Patient struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User             user.User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	Gender           string     `json:"gender,omitempty"`
	BloodType        string     `json:"blood_type,omitempty"`
	MedicalHistory   string     `gorm:"type:text" json:"medical_history,omitempty"`
	EmergencyContact string     `json:"emergency_contact,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
