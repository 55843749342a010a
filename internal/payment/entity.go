package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/appointment"
	"github.com/mal4crypt/genova-health/internal/user"
)

type PaymentStatus string

const (
	StatusPending   PaymentStatus = "PENDING"
	StatusSucceeded PaymentStatus = "SUCCEEDED"
	StatusFailed    PaymentStatus = "FAILED"
)

type Payment struct {
	ID                    uuid.UUID               `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AppointmentID         uuid.UUID               `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id"`
	Appointment           appointment.Appointment `gorm:"foreignKey:AppointmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	PayerUserID           uuid.UUID               `gorm:"type:uuid;not null;index" json:"payer_user_id"`
	Payer                 user.User               `gorm:"foreignKey:PayerUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	StripePaymentIntentID string                  `gorm:"uniqueIndex;not null" json:"-"`
	AmountCents           int64                   `gorm:"not null" json:"amount_cents"`
	Currency              string                  `gorm:"type:varchar(3);not null;default:'usd'" json:"currency"`
	Status                PaymentStatus           `gorm:"type:varchar(16);not null;default:'PENDING'" json:"status"`
	CreatedAt             time.Time               `json:"created_at"`
	UpdatedAt             time.Time               `json:"updated_at"`
}
