package appointment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/appointment"
	"github.com/mal4crypt/genova-health/internal/auth"
	"github.com/mal4crypt/genova-health/internal/doctor"
	"github.com/mal4crypt/genova-health/internal/gcalendar"
)

type fakeApptRepo struct {
	rows map[uuid.UUID]*appointment.Appointment
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{rows: make(map[uuid.UUID]*appointment.Appointment)}
}

func (r *fakeApptRepo) Create(a *appointment.Appointment) error {
	r.rows[a.ID] = a
	return nil
}

func (r *fakeApptRepo) FindByID(id uuid.UUID) (*appointment.Appointment, error) {
	a, ok := r.rows[id]
	if !ok {
		return nil, appointment.ErrNotFound
	}
	return a, nil
}

func (r *fakeApptRepo) ListByPatient(patientUserID uuid.UUID) ([]*appointment.Appointment, error) {
	var out []*appointment.Appointment
	for _, a := range r.rows {
		if a.PatientUserID == patientUserID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) ListByDoctor(doctorID uuid.UUID) ([]*appointment.Appointment, error) {
	var out []*appointment.Appointment
	for _, a := range r.rows {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) Update(a *appointment.Appointment) error {
	r.rows[a.ID] = a
	return nil
}

type fakeDoctorService struct {
	doc *doctor.Doctor
}

func (s *fakeDoctorService) Upsert(uuid.UUID, doctor.UpsertDoctorDTO) (*doctor.Doctor, error) {
	return s.doc, nil
}

func (s *fakeDoctorService) GetByID(id uuid.UUID) (*doctor.Doctor, error) {
	if s.doc == nil || s.doc.ID != id {
		return nil, doctor.ErrDoctorNotFound
	}
	return s.doc, nil
}

func (s *fakeDoctorService) GetByUser(userID uuid.UUID) (*doctor.Doctor, error) {
	if s.doc == nil || s.doc.UserID != userID {
		return nil, doctor.ErrDoctorNotFound
	}
	return s.doc, nil
}

func (s *fakeDoctorService) List(string) ([]*doctor.Doctor, error) {
	return nil, nil
}

type fakeCalendar struct {
	synced   int
	removed  []string
	eventID  string
	syncErr  error
}

func (c *fakeCalendar) SyncAppointment(ctx context.Context, userID uuid.UUID, appt *gcalendar.CalendarAppointment) (string, error) {
	c.synced++
	if c.syncErr != nil {
		return "", c.syncErr
	}
	return c.eventID, nil
}

func (c *fakeCalendar) RemoveAppointment(ctx context.Context, userID uuid.UUID, eventID string) error {
	c.removed = append(c.removed, eventID)
	return nil
}

func patientCtx(userID uuid.UUID) context.Context {
	return auth.WithClaims(context.Background(), &auth.UserClaims{
		UserID: userID.String(),
		Role:   "PATIENT",
	})
}

func TestCreateAppointment(t *testing.T) {
	patientUserID := uuid.New()
	doc := &doctor.Doctor{ID: uuid.New(), UserID: uuid.New()}
	slot := time.Now().Add(48 * time.Hour)

	t.Run("CreatesScheduledAppointmentAndSyncsCalendar", func(t *testing.T) {
		repo := newFakeApptRepo()
		cal := &fakeCalendar{eventID: "evt-123"}
		svc := appointment.NewService(repo, &fakeDoctorService{doc: doc}, cal)

		appt, err := svc.Create(patientCtx(patientUserID), appointment.CreateAppointmentDTO{
			DoctorID:    doc.ID,
			ScheduledAt: slot,
			Reason:      "Annual checkup",
		})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}

		if appt.Status != appointment.StatusScheduled {
			t.Errorf("Status = %v, want %v", appt.Status, appointment.StatusScheduled)
		}
		if appt.DurationMinutes != 30 {
			t.Errorf("DurationMinutes = %d, want default 30", appt.DurationMinutes)
		}
		if cal.synced != 1 {
			t.Errorf("calendar synced %d times, want 1", cal.synced)
		}
		if appt.GoogleCalendarEventID != "evt-123" {
			t.Errorf("GoogleCalendarEventID = %q, want evt-123", appt.GoogleCalendarEventID)
		}
	})

	t.Run("CalendarFailureDoesNotFailCreate", func(t *testing.T) {
		repo := newFakeApptRepo()
		cal := &fakeCalendar{syncErr: errors.New("oauth token expired")}
		svc := appointment.NewService(repo, &fakeDoctorService{doc: doc}, cal)

		appt, err := svc.Create(patientCtx(patientUserID), appointment.CreateAppointmentDTO{
			DoctorID:    doc.ID,
			ScheduledAt: slot,
		})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if appt.GoogleCalendarEventID != "" {
			t.Errorf("GoogleCalendarEventID = %q, want empty", appt.GoogleCalendarEventID)
		}
	})

	t.Run("RejectsPastSlot", func(t *testing.T) {
		svc := appointment.NewService(newFakeApptRepo(), &fakeDoctorService{doc: doc}, &fakeCalendar{})

		_, err := svc.Create(patientCtx(patientUserID), appointment.CreateAppointmentDTO{
			DoctorID:    doc.ID,
			ScheduledAt: time.Now().Add(-time.Hour),
		})
		if !errors.Is(err, appointment.ErrPastSlot) {
			t.Fatalf("Create error = %v, want ErrPastSlot", err)
		}
	})

	t.Run("RejectsUnknownDoctor", func(t *testing.T) {
		svc := appointment.NewService(newFakeApptRepo(), &fakeDoctorService{doc: doc}, &fakeCalendar{})

		_, err := svc.Create(patientCtx(patientUserID), appointment.CreateAppointmentDTO{
			DoctorID:    uuid.New(),
			ScheduledAt: slot,
		})
		if !errors.Is(err, appointment.ErrDoctorNotFound) {
			t.Fatalf("Create error = %v, want ErrDoctorNotFound", err)
		}
	})

	t.Run("RejectsMissingClaims", func(t *testing.T) {
		svc := appointment.NewService(newFakeApptRepo(), &fakeDoctorService{doc: doc}, &fakeCalendar{})

		_, err := svc.Create(context.Background(), appointment.CreateAppointmentDTO{
			DoctorID:    doc.ID,
			ScheduledAt: slot,
		})
		if !errors.Is(err, appointment.ErrUnauthorized) {
			t.Fatalf("Create error = %v, want ErrUnauthorized", err)
		}
	})
}

func TestUpdateAppointmentStatus(t *testing.T) {
	patientUserID := uuid.New()
	doc := &doctor.Doctor{ID: uuid.New(), UserID: uuid.New()}
	ctx := patientCtx(patientUserID)

	seed := func(repo *fakeApptRepo, status appointment.AppointmentStatus, eventID string) *appointment.Appointment {
		appt := &appointment.Appointment{
			ID:                    uuid.New(),
			PatientUserID:         patientUserID,
			DoctorID:              doc.ID,
			ScheduledAt:           time.Now().Add(24 * time.Hour),
			Status:                status,
			GoogleCalendarEventID: eventID,
		}
		repo.rows[appt.ID] = appt
		return appt
	}

	t.Run("FollowsLifecycle", func(t *testing.T) {
		repo := newFakeApptRepo()
		svc := appointment.NewService(repo, &fakeDoctorService{doc: doc}, &fakeCalendar{})
		appt := seed(repo, appointment.StatusScheduled, "")

		got, err := svc.UpdateStatus(ctx, appt.ID.String(), appointment.StatusConfirmed)
		if err != nil {
			t.Fatalf("UpdateStatus returned error: %v", err)
		}
		if got.Status != appointment.StatusConfirmed {
			t.Errorf("Status = %v, want %v", got.Status, appointment.StatusConfirmed)
		}

		if _, err := svc.UpdateStatus(ctx, appt.ID.String(), appointment.StatusCompleted); err != nil {
			t.Fatalf("UpdateStatus to COMPLETED returned error: %v", err)
		}
	})

	t.Run("RejectsInvalidTransition", func(t *testing.T) {
		repo := newFakeApptRepo()
		svc := appointment.NewService(repo, &fakeDoctorService{doc: doc}, &fakeCalendar{})
		appt := seed(repo, appointment.StatusScheduled, "")

		_, err := svc.UpdateStatus(ctx, appt.ID.String(), appointment.StatusCompleted)
		if !errors.Is(err, appointment.ErrInvalidTransition) {
			t.Fatalf("UpdateStatus error = %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("CancelRemovesCalendarEvent", func(t *testing.T) {
		repo := newFakeApptRepo()
		cal := &fakeCalendar{}
		svc := appointment.NewService(repo, &fakeDoctorService{doc: doc}, cal)
		appt := seed(repo, appointment.StatusScheduled, "evt-456")

		got, err := svc.UpdateStatus(ctx, appt.ID.String(), appointment.StatusCanceled)
		if err != nil {
			t.Fatalf("UpdateStatus returned error: %v", err)
		}
		if len(cal.removed) != 1 || cal.removed[0] != "evt-456" {
			t.Errorf("removed calendar events = %v, want [evt-456]", cal.removed)
		}
		if got.GoogleCalendarEventID != "" {
			t.Errorf("GoogleCalendarEventID = %q, want cleared", got.GoogleCalendarEventID)
		}
	})

	t.Run("RejectsNonParticipant", func(t *testing.T) {
		repo := newFakeApptRepo()
		svc := appointment.NewService(repo, &fakeDoctorService{doc: doc}, &fakeCalendar{})
		appt := seed(repo, appointment.StatusScheduled, "")

		_, err := svc.UpdateStatus(patientCtx(uuid.New()), appt.ID.String(), appointment.StatusConfirmed)
		if !errors.Is(err, appointment.ErrUnauthorized) {
			t.Fatalf("UpdateStatus error = %v, want ErrUnauthorized", err)
		}
	})
}
