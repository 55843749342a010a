package doctor

import (
	"time"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/user"
)

type Doctor struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User            user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Specialty       string    `gorm:"index;not null" json:"specialty"`
	Bio             string    `gorm:"type:text" json:"bio,omitempty"`
	YearsExperience int       `json:"years_experience"`
	FeeCents        int64     `gorm:"not null;default:0" json:"fee_cents"`
	RatingAvg       float64   `gorm:"not null;default:0" json:"rating_avg"`
	RatingCount     int       `gorm:"not null;default:0" json:"rating_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
