package goal

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(g *FitnessGoal) error
	FindByID(id uuid.UUID) (*FitnessGoal, error)
	FindAllByUserID(userID uuid.UUID) ([]*FitnessGoal, error)
	FindActiveByUserAndCategory(userID uuid.UUID, category GoalCategory) ([]*FitnessGoal, error)
	Update(g *FitnessGoal) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(g *FitnessGoal) error {
	return r.db.Create(g).Error
}

func (r *repository) FindByID(id uuid.UUID) (*FitnessGoal, error) {
	var g FitnessGoal
	if err := r.db.First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *repository) FindAllByUserID(userID uuid.UUID) ([]*FitnessGoal, error) {
	var goals []*FitnessGoal
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) FindActiveByUserAndCategory(userID uuid.UUID, category GoalCategory) ([]*FitnessGoal, error) {
	var goals []*FitnessGoal
	if err := r.db.
		Where("user_id = ? AND category = ? AND status = ?", userID, category, GoalStatusActive).
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) Update(g *FitnessGoal) error {
	return r.db.Save(g).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&FitnessGoal{}, "id = ?", id).Error
}
