package appointment

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("appointment not found")

type Repository interface {
	Create(a *Appointment) error
	FindByID(id uuid.UUID) (*Appointment, error)
	ListByPatient(patientUserID uuid.UUID) ([]*Appointment, error)
	ListByDoctor(doctorID uuid.UUID) ([]*Appointment, error)
	Update(a *Appointment) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(a *Appointment) error {
	return r.db.Create(a).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Appointment, error) {
	var a Appointment
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) ListByPatient(patientUserID uuid.UUID) ([]*Appointment, error) {
	var appts []*Appointment
	if err := r.db.
		Where("patient_user_id = ?", patientUserID).
		Order("scheduled_at DESC").
		Find(&appts).Error; err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *repository) ListByDoctor(doctorID uuid.UUID) ([]*Appointment, error) {
	var appts []*Appointment
	if err := r.db.
		Where("doctor_id = ?", doctorID).
		Order("scheduled_at DESC").
		Find(&appts).Error; err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *repository) Update(a *Appointment) error {
	return r.db.Save(a).Error
}
