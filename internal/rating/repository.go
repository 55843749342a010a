package rating

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(rt *Rating) error
	ListByDoctor(doctorID uuid.UUID) ([]*Rating, error)
	// AverageForDoctor recomputes the aggregate from rating rows rather
	// than nudging a running average, so repeated writes stay consistent.
	AverageForDoctor(doctorID uuid.UUID) (avg float64, count int, err error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(rt *Rating) error {
	return r.db.Create(rt).Error
}

func (r *repository) ListByDoctor(doctorID uuid.UUID) ([]*Rating, error) {
	var ratings []*Rating
	if err := r.db.
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *repository) AverageForDoctor(doctorID uuid.UUID) (float64, int, error) {
	var result struct {
		Avg   float64
		Count int
	}
	if err := r.db.Model(&Rating{}).
		Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS count").
		Where("doctor_id = ?", doctorID).
		Scan(&result).Error; err != nil {
		return 0, 0, err
	}
	return result.Avg, result.Count, nil
}
