package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/auth"
	"github.com/mal4crypt/genova-health/internal/config"
	"github.com/mal4crypt/genova-health/internal/doctor"
	"github.com/mal4crypt/genova-health/internal/gcalendar"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrDoctorNotFound      = doctor.ErrDoctorNotFound
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrPastSlot            = errors.New("appointment slot is in the past")
)

type Service interface {
	Create(ctx context.Context, dto CreateAppointmentDTO) (*Appointment, error)
	ListMine(ctx context.Context) ([]*Appointment, error)
	GetByID(ctx context.Context, id string) (*Appointment, error)
	UpdateStatus(ctx context.Context, id string, status AppointmentStatus) (*Appointment, error)
}

type service struct {
	repo            Repository
	doctorService   doctor.Service
	calendarManager gcalendar.CalendarManager
}

func NewService(repo Repository, doctorService doctor.Service, calendarManager gcalendar.CalendarManager) Service {
	return &service{
		repo:            repo,
		doctorService:   doctorService,
		calendarManager: calendarManager,
	}
}

func (s *service) Create(ctx context.Context, dto CreateAppointmentDTO) (*Appointment, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	patientUserID := uuid.MustParse(claims.UserID)

	doc, err := s.doctorService.GetByID(dto.DoctorID)
	if err != nil {
		if errors.Is(err, doctor.ErrDoctorNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	if dto.ScheduledAt.Before(time.Now()) {
		return nil, ErrPastSlot
	}

	duration := dto.DurationMinutes
	if duration <= 0 {
		duration = 30
	}

	appt := &Appointment{
		ID:              uuid.New(),
		PatientUserID:   patientUserID,
		DoctorID:        doc.ID,
		ScheduledAt:     dto.ScheduledAt,
		DurationMinutes: duration,
		Reason:          dto.Reason,
		Status:          StatusScheduled,
	}

	if err := s.repo.Create(appt); err != nil {
		log.WithError(err).Error("Failed to create appointment")
		return nil, err
	}

	s.syncCalendar(ctx, appt)

	log.WithField("appointment_id", appt.ID).Info("Appointment created successfully")
	return appt, nil
}

// syncCalendar mirrors the appointment onto the patient's Google Calendar.
// Calendar failures never fail the request.
func (s *service) syncCalendar(ctx context.Context, appt *Appointment) {
	log := config.WithContext(ctx)

	end := appt.ScheduledAt.Add(time.Duration(appt.DurationMinutes) * time.Minute)
	calAppt := gcalendar.CalendarAppointment{
		ID:       appt.ID,
		Title:    fmt.Sprintf("Consultation: %s", appt.Reason),
		Notes:    appt.Reason,
		StartsAt: &appt.ScheduledAt,
		EndsAt:   &end,
	}
	if appt.GoogleCalendarEventID != "" {
		calAppt.GoogleEventID = &appt.GoogleCalendarEventID
	}

	eventID, err := s.calendarManager.SyncAppointment(ctx, appt.PatientUserID, &calAppt)
	if err != nil {
		log.WithError(err).Warnf("Failed to sync appointment %s to Google Calendar", appt.ID)
		return
	}
	if eventID != "" && eventID != appt.GoogleCalendarEventID {
		appt.GoogleCalendarEventID = eventID
		if err := s.repo.Update(appt); err != nil {
			log.WithError(err).Error("Failed to persist Google Calendar event ID")
		}
	}
}

func (s *service) ListMine(ctx context.Context) ([]*Appointment, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	userID := uuid.MustParse(claims.UserID)

	if claims.Role == "DOCTOR" {
		doc, err := s.doctorService.GetByUser(userID)
		if err != nil {
			if errors.Is(err, doctor.ErrDoctorNotFound) {
				return []*Appointment{}, nil
			}
			return nil, err
		}
		appts, err := s.repo.ListByDoctor(doc.ID)
		if err != nil {
			log.WithError(err).Error("Failed to list appointments by doctor")
			return nil, err
		}
		return appts, nil
	}

	appts, err := s.repo.ListByPatient(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list appointments by patient")
		return nil, err
	}
	return appts, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Appointment, error) {
	appt, err := s.findOwned(ctx, id)
	if err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, status AppointmentStatus) (*Appointment, error) {
	log := config.WithContext(ctx)

	appt, err := s.findOwned(ctx, id)
	if err != nil {
		return nil, err
	}

	if !status.IsValid() || !canTransition(appt.Status, status) {
		return nil, ErrInvalidTransition
	}

	appt.Status = status
	appt.UpdatedAt = time.Now()
	if err := s.repo.Update(appt); err != nil {
		log.WithError(err).Error("Failed to update appointment status")
		return nil, err
	}

	if status == StatusCanceled && appt.GoogleCalendarEventID != "" {
		if err := s.calendarManager.RemoveAppointment(ctx, appt.PatientUserID, appt.GoogleCalendarEventID); err == nil {
			appt.GoogleCalendarEventID = ""
			if err := s.repo.Update(appt); err != nil {
				log.WithError(err).Error("Failed to clear Google Calendar event ID")
			}
		}
	}

	log.WithField("appointment_id", appt.ID).Infof("Appointment status updated to %s", status)
	return appt, nil
}

// findOwned loads an appointment and verifies the caller is a participant.
func (s *service) findOwned(ctx context.Context, id string) (*Appointment, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	userID := uuid.MustParse(claims.UserID)

	apptID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}

	appt, err := s.repo.FindByID(apptID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		log.WithError(err).Error("Error finding appointment by ID")
		return nil, err
	}

	if appt.PatientUserID == userID {
		return appt, nil
	}
	if claims.Role == "DOCTOR" {
		doc, err := s.doctorService.GetByUser(userID)
		if err == nil && doc.ID == appt.DoctorID {
			return appt, nil
		}
	}

	return nil, ErrUnauthorized
}
