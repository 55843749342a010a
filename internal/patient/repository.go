package patient

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(p *Patient) error
	FindByUserID(userID uuid.UUID) (*Patient, error)
	Update(p *Patient) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(p *Patient) error {
	return r.db.Create(p).Error
}

func (r *repository) FindByUserID(userID uuid.UUID) (*Patient, error) {
	var p Patient
	if err := r.db.First(&p, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(p *Patient) error {
	return r.db.Save(p).Error
}
