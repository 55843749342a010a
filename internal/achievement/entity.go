package achievement

import (
	"time"

	"github.com/google/uuid"
)

// Achievement rows are unique per (user, title); the index backs the
// conflict-free insert in the repository so concurrent goal completions
// cannot produce duplicates.
type Achievement struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_achievement_user_title" json:"user_id"`
	Title       string    `gorm:"not null;uniqueIndex:idx_achievement_user_title" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Points      int       `gorm:"not null;default:0" json:"points"`
	Level       string    `gorm:"type:varchar(16)" json:"level,omitempty"`
	EarnedAt    time.Time `gorm:"not null" json:"earned_at"`
	CreatedAt   time.Time `json:"created_at"`
}
