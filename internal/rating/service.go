package rating

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/appointment"
	"github.com/mal4crypt/genova-health/internal/config"
	"github.com/mal4crypt/genova-health/internal/doctor"
)

var (
	ErrInvalidScore      = errors.New("score must be between 1 and 5")
	ErrNotRateable       = errors.New("only completed appointments can be rated")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrAppointmentUnknown = errors.New("appointment not found")
)

type CreateRatingDTO struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	Score         int       `json:"score"`
	Comment       string    `json:"comment"`
}

type Service interface {
	Create(ctx context.Context, patientUserID uuid.UUID, dto CreateRatingDTO) (*Rating, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Rating, error)
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

func (s *service) Create(ctx context.Context, patientUserID uuid.UUID, dto CreateRatingDTO) (*Rating, error) {
	log := config.WithContext(ctx)

	if dto.Score < 1 || dto.Score > 5 {
		return nil, ErrInvalidScore
	}

	appt, err := s.appointmentRepo.FindByID(dto.AppointmentID)
	if err != nil {
		if errors.Is(err, appointment.ErrNotFound) {
			return nil, ErrAppointmentUnknown
		}
		return nil, err
	}
	if appt.PatientUserID != patientUserID {
		return nil, ErrUnauthorized
	}
	if appt.Status != appointment.StatusCompleted {
		return nil, ErrNotRateable
	}

	rt := &Rating{
		DoctorID:      appt.DoctorID,
		PatientUserID: patientUserID,
		AppointmentID: appt.ID,
		Score:         dto.Score,
		Comment:       dto.Comment,
	}

	if err := s.repo.Create(rt); err != nil {
		log.WithError(err).Error("Failed to create rating")
		return nil, err
	}

	avg, count, err := s.repo.AverageForDoctor(appt.DoctorID)
	if err != nil {
		log.WithError(err).Error("Failed to recompute doctor rating aggregate")
		return nil, err
	}
	if err := s.doctorRepo.UpdateRating(appt.DoctorID, avg, count); err != nil {
		log.WithError(err).Error("Failed to update doctor rating aggregate")
		return nil, err
	}

	log.WithField("rating_id", rt.ID).Info("Rating created successfully")
	return rt, nil
}

func (s *service) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Rating, error) {
	return s.repo.ListByDoctor(doctorID)
}
