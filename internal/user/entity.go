package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	GoogleID                    string    `gorm:"uniqueIndex;not null" json:"-"`
	Name                        string    `gorm:"not null" json:"name"`
	Email                       string    `gorm:"uniqueIndex;not null" json:"email"`
	AvatarURL                   string    `json:"avatar_url,omitempty"`
	Role                        UserRole  `gorm:"type:varchar(16);not null;default:'PATIENT'" json:"role"`
	EncryptedGoogleAccessToken  string    `json:"-"`
	EncryptedGoogleRefreshToken string    `json:"-"`
	CreatedAt                   time.Time `json:"created_at"`
	UpdatedAt                   time.Time `json:"updated_at"`
}
