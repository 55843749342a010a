package metric

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(m *HealthMetric) error
	ListByUser(userID uuid.UUID, metricType string) ([]*HealthMetric, error)
	// SumByTypeSince aggregates values of one metric type recorded on or
	// after from; until, when non-nil, is an inclusive upper bound.
	// Satisfies goal.MetricSummer.
	SumByTypeSince(userID uuid.UUID, metricType string, from time.Time, until *time.Time) (float64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(m *HealthMetric) error {
	return r.db.Create(m).Error
}

func (r *repository) ListByUser(userID uuid.UUID, metricType string) ([]*HealthMetric, error) {
	var metrics []*HealthMetric
	q := r.db.Where("user_id = ?", userID).Order("recorded_at DESC")
	if metricType != "" {
		q = q.Where("type = ?", metricType)
	}
	if err := q.Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

func (r *repository) SumByTypeSince(userID uuid.UUID, metricType string, from time.Time, until *time.Time) (float64, error) {
	var sum float64
	q := r.db.Model(&HealthMetric{}).
		Select("COALESCE(SUM(value), 0)").
		Where("user_id = ? AND type = ? AND recorded_at >= ?", userID, metricType, from)
	if until != nil {
		q = q.Where("recorded_at <= ?", *until)
	}
	if err := q.Scan(&sum).Error; err != nil {
		return 0, err
	}
	return sum, nil
}
