package doctor

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(d *Doctor) error
	FindByID(id uuid.UUID) (*Doctor, error)
	FindByUserID(userID uuid.UUID) (*Doctor, error)
	List(specialty string) ([]*Doctor, error)
	Update(d *Doctor) error
	UpdateRating(id uuid.UUID, avg float64, count int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(d *Doctor) error {
	return r.db.Create(d).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Doctor, error) {
	var d Doctor
	if err := r.db.First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *repository) FindByUserID(userID uuid.UUID) (*Doctor, error) {
	var d Doctor
	if err := r.db.First(&d, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *repository) List(specialty string) ([]*Doctor, error) {
	var doctors []*Doctor
	q := r.db.Order("rating_avg DESC")
	if specialty != "" {
		q = q.Where("specialty = ?", specialty)
	}
	if err := q.Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *repository) Update(d *Doctor) error {
	return r.db.Save(d).Error
}

func (r *repository) UpdateRating(id uuid.UUID, avg float64, count int) error {
	return r.db.Model(&Doctor{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"rating_avg": avg, "rating_count": count}).Error
}
