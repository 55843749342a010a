package goal

import (
	"time"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/user"
)

// FitnessGoal holds a user-defined target. CurrentValue and Status are
// derived by the progress engine and never set directly by a client.
type FitnessGoal struct {
	ID           uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	User         user.User    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Title        string       `gorm:"not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description,omitempty"`
	Category     GoalCategory `gorm:"type:varchar(32);not null;index" json:"category"`
	TargetValue  float64      `gorm:"not null" json:"target_value"`
	CurrentValue float64      `gorm:"not null;default:0" json:"current_value"`
	StartDate    time.Time    `gorm:"not null" json:"start_date"`
	EndDate      *time.Time   `json:"end_date,omitempty"`
	Status       GoalStatus   `gorm:"type:varchar(16);not null;default:'ACTIVE'" json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
