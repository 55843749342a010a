package metric

import (
	"time"

	"gorm.io/datatypes"
)

// IngestMetricDTO is the ingestion payload. Type is deliberately free-form;
// the goal engine decides whether it maps to any goal category.
type IngestMetricDTO struct {
	Type       string         `json:"type"`
	Value      float64        `json:"value"`
	Unit       string         `json:"unit"`
	RecordedAt *time.Time     `json:"recorded_at"`
	Source     string         `json:"source"`
	Metadata   datatypes.JSON `json:"metadata"`
}
