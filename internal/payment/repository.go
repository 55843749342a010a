package payment

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(p *Payment) error
	FindByID(id uuid.UUID) (*Payment, error)
	FindByAppointment(appointmentID uuid.UUID) (*Payment, error)
	ListByUser(userID uuid.UUID) ([]*Payment, error)
	Update(p *Payment) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(p *Payment) error {
	return r.db.Create(p).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Payment, error) {
	var p Payment
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByAppointment(appointmentID uuid.UUID) (*Payment, error) {
	var p Payment
	if err := r.db.First(&p, "appointment_id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListByUser(userID uuid.UUID) ([]*Payment, error) {
	var payments []*Payment
	if err := r.db.
		Where("payer_user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *repository) Update(p *Payment) error {
	return r.db.Save(p).Error
}
