package chat_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/appointment"
	"github.com/mal4crypt/genova-health/internal/chat"
	"github.com/mal4crypt/genova-health/internal/doctor"
)

type fakeChatRepo struct {
	rows []*chat.ChatMessage
}

func (r *fakeChatRepo) Create(m *chat.ChatMessage) error {
	m.ID = uuid.New()
	r.rows = append(r.rows, m)
	return nil
}

func (r *fakeChatRepo) ListByAppointment(appointmentID uuid.UUID, limit int) ([]*chat.ChatMessage, error) {
	var out []*chat.ChatMessage
	for _, m := range r.rows {
		if m.AppointmentID == appointmentID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeApptRepo struct {
	rows map[uuid.UUID]*appointment.Appointment
}

func (r *fakeApptRepo) Create(a *appointment.Appointment) error { r.rows[a.ID] = a; return nil }

func (r *fakeApptRepo) FindByID(id uuid.UUID) (*appointment.Appointment, error) {
	a, ok := r.rows[id]
	if !ok {
		return nil, appointment.ErrNotFound
	}
	return a, nil
}

func (r *fakeApptRepo) ListByPatient(uuid.UUID) ([]*appointment.Appointment, error) {
	return nil, nil
}

func (r *fakeApptRepo) ListByDoctor(uuid.UUID) ([]*appointment.Appointment, error) {
	return nil, nil
}

func (r *fakeApptRepo) Update(a *appointment.Appointment) error { r.rows[a.ID] = a; return nil }

type fakeDocRepo struct {
	doctors map[uuid.UUID]*doctor.Doctor
}

func (r *fakeDocRepo) Create(d *doctor.Doctor) error { r.doctors[d.ID] = d; return nil }

func (r *fakeDocRepo) FindByID(id uuid.UUID) (*doctor.Doctor, error) {
	return r.doctors[id], nil
}

func (r *fakeDocRepo) FindByUserID(userID uuid.UUID) (*doctor.Doctor, error) {
	for _, d := range r.doctors {
		if d.UserID == userID {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDocRepo) List(string) ([]*doctor.Doctor, error) { return nil, nil }

func (r *fakeDocRepo) Update(d *doctor.Doctor) error { r.doctors[d.ID] = d; return nil }

func (r *fakeDocRepo) UpdateRating(uuid.UUID, float64, int) error { return nil }

func newChatFixture() (chat.Service, *appointment.Appointment, uuid.UUID, uuid.UUID) {
	patientUserID := uuid.New()
	doctorUserID := uuid.New()
	doctorID := uuid.New()

	appt := &appointment.Appointment{
		ID:            uuid.New(),
		PatientUserID: patientUserID,
		DoctorID:      doctorID,
		Status:        appointment.StatusConfirmed,
	}

	apptRepo := &fakeApptRepo{rows: map[uuid.UUID]*appointment.Appointment{appt.ID: appt}}
	docRepo := &fakeDocRepo{doctors: map[uuid.UUID]*doctor.Doctor{
		doctorID: {ID: doctorID, UserID: doctorUserID},
	}}

	svc := chat.NewService(&fakeChatRepo{}, apptRepo, docRepo)
	return svc, appt, patientUserID, doctorUserID
}

func TestChatService(t *testing.T) {
	ctx := context.Background()

	t.Run("BothParticipantsCanSend", func(t *testing.T) {
		svc, appt, patientUserID, doctorUserID := newChatFixture()

		for _, sender := range []uuid.UUID{patientUserID, doctorUserID} {
			msg, err := svc.SendMessage(ctx, sender, appt.ID, chat.SendMessageDTO{Body: "hello"})
			if err != nil {
				t.Fatalf("SendMessage(%v) returned error: %v", sender, err)
			}
			if msg.SenderUserID != sender {
				t.Errorf("SenderUserID = %v, want %v", msg.SenderUserID, sender)
			}
		}

		msgs, err := svc.History(ctx, patientUserID, appt.ID, 0)
		if err != nil {
			t.Fatalf("History returned error: %v", err)
		}
		if len(msgs) != 2 {
			t.Errorf("history has %d messages, want 2", len(msgs))
		}
	})

	t.Run("RejectsOutsider", func(t *testing.T) {
		svc, appt, _, _ := newChatFixture()

		_, err := svc.SendMessage(ctx, uuid.New(), appt.ID, chat.SendMessageDTO{Body: "hi"})
		if !errors.Is(err, chat.ErrNotParticipant) {
			t.Fatalf("SendMessage error = %v, want ErrNotParticipant", err)
		}

		_, err = svc.History(ctx, uuid.New(), appt.ID, 0)
		if !errors.Is(err, chat.ErrNotParticipant) {
			t.Fatalf("History error = %v, want ErrNotParticipant", err)
		}
	})

	t.Run("RejectsEmptyBody", func(t *testing.T) {
		svc, appt, patientUserID, _ := newChatFixture()

		_, err := svc.SendMessage(ctx, patientUserID, appt.ID, chat.SendMessageDTO{Body: "   "})
		if !errors.Is(err, chat.ErrEmptyBody) {
			t.Fatalf("SendMessage error = %v, want ErrEmptyBody", err)
		}
	})

	t.Run("RejectsUnknownAppointment", func(t *testing.T) {
		svc, _, patientUserID, _ := newChatFixture()

		_, err := svc.SendMessage(ctx, patientUserID, uuid.New(), chat.SendMessageDTO{Body: "hi"})
		if !errors.Is(err, chat.ErrAppointmentUnknown) {
			t.Fatalf("SendMessage error = %v, want ErrAppointmentUnknown", err)
		}
	})
}
