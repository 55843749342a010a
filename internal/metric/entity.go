package metric

import (
	"time"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/user"
	"gorm.io/datatypes"
)

// HealthMetric is an immutable measurement. Rows are only ever created;
// progress is always derived by re-aggregating history.
type HealthMetric struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_metric_user_type" json:"user_id"`
	User       user.User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Type       string         `gorm:"not null;index:idx_metric_user_type" json:"type"`
	Value      float64        `gorm:"not null" json:"value"`
	Unit       string         `json:"unit,omitempty"`
	RecordedAt time.Time      `gorm:"not null;index" json:"recorded_at"`
	Source     string         `json:"source,omitempty"`
	Metadata   datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
