package chat

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(m *ChatMessage) error
	ListByAppointment(appointmentID uuid.UUID, limit int) ([]*ChatMessage, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(m *ChatMessage) error {
	return r.db.Create(m).Error
}

func (r *repository) ListByAppointment(appointmentID uuid.UUID, limit int) ([]*ChatMessage, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	var messages []*ChatMessage
	if err := r.db.
		Where("appointment_id = ?", appointmentID).
		Order("created_at ASC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
