package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/appointment"
	"github.com/mal4crypt/genova-health/internal/config"
	"github.com/mal4crypt/genova-health/internal/doctor"
)

var (
	ErrEmptyBody          = errors.New("message body is required")
	ErrNotParticipant     = errors.New("user is not a participant of this appointment")
	ErrAppointmentUnknown = errors.New("appointment not found")
)

type SendMessageDTO struct {
	Body string `json:"body"`
}

type Service interface {
	// Authorize checks that userID is the appointment's patient or its
	// doctor and returns the appointment on success.
	Authorize(ctx context.Context, userID, appointmentID uuid.UUID) (*appointment.Appointment, error)
	SendMessage(ctx context.Context, senderUserID, appointmentID uuid.UUID, dto SendMessageDTO) (*ChatMessage, error)
	History(ctx context.Context, userID, appointmentID uuid.UUID, limit int) ([]*ChatMessage, error)
}

type service struct {
	repo            Repository
	appointmentRepo appointment.Repository
	doctorRepo      doctor.Repository
}

func NewService(repo Repository, appointmentRepo appointment.Repository, doctorRepo doctor.Repository) Service {
	return &service{
		repo:            repo,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
	}
}

func (s *service) Authorize(ctx context.Context, userID, appointmentID uuid.UUID) (*appointment.Appointment, error) {
	appt, err := s.appointmentRepo.FindByID(appointmentID)
	if err != nil {
		if errors.Is(err, appointment.ErrNotFound) {
			return nil, ErrAppointmentUnknown
		}
		return nil, err
	}

	if appt.PatientUserID == userID {
		return appt, nil
	}

	doc, err := s.doctorRepo.FindByID(appt.DoctorID)
	if err != nil {
		return nil, err
	}
	if doc != nil && doc.UserID == userID {
		return appt, nil
	}

	return nil, ErrNotParticipant
}

func (s *service) SendMessage(ctx context.Context, senderUserID, appointmentID uuid.UUID, dto SendMessageDTO) (*ChatMessage, error) {
	log := config.WithContext(ctx)

	body := strings.TrimSpace(dto.Body)
	if body == "" {
		return nil, ErrEmptyBody
	}

	if _, err := s.Authorize(ctx, senderUserID, appointmentID); err != nil {
		return nil, err
	}

	msg := &ChatMessage{
		AppointmentID: appointmentID,
		SenderUserID:  senderUserID,
		Body:          body,
	}
	if err := s.repo.Create(msg); err != nil {
		log.WithError(err).Error("Failed to persist chat message")
		return nil, err
	}
	return msg, nil
}

func (s *service) History(ctx context.Context, userID, appointmentID uuid.UUID, limit int) ([]*ChatMessage, error) {
	if _, err := s.Authorize(ctx, userID, appointmentID); err != nil {
		return nil, err
	}
	return s.repo.ListByAppointment(appointmentID, limit)
}
