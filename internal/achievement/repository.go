package achievement

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// CreateOnce inserts the achievement unless one with the same
	// (user_id, title) already exists. Reports whether a row was inserted.
	CreateOnce(a *Achievement) (bool, error)
	ListByUser(userID uuid.UUID) ([]*Achievement, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateOnce(a *Achievement) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "title"}},
		DoNothing: true,
	}).Create(a)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) ListByUser(userID uuid.UUID) ([]*Achievement, error) {
	var achievements []*Achievement
	if err := r.db.
		Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}
