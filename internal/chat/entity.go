package chat

import (
	"time"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/appointment"
	"github.com/mal4crypt/genova-health/internal/user"
	"gorm.io/datatypes"
)

type ChatMessage struct {
	ID            uuid.UUID               `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AppointmentID uuid.UUID               `gorm:"type:uuid;not null;index" json:"appointment_id"`
	Appointment   appointment.Appointment `gorm:"foreignKey:AppointmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	SenderUserID  uuid.UUID               `gorm:"type:uuid;not null;index" json:"sender_user_id"`
	Sender        user.User               `gorm:"foreignKey:SenderUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Body          string                  `gorm:"type:text;not null" json:"body"`
	Attachments   datatypes.JSON          `gorm:"type:jsonb" json:"attachments,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
}
