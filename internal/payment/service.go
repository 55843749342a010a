package payment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/appointment"
	"github.com/mal4crypt/genova-health/internal/config"
	"github.com/mal4crypt/genova-health/internal/doctor"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

var (
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAppointmentUnknown = errors.New("appointment not found")
	ErrAlreadyPaid        = errors.New("appointment already has a payment")
	ErrNothingToPay       = errors.New("doctor has no consultation fee configured")
)

type CreatePaymentDTO struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
}

type PaymentIntentResponse struct {
	Payment      *Payment `json:"payment"`
	ClientSecret string   `json:"client_secret"`
}

type Service interface {
	CreateIntent(ctx context.Context, payerUserID uuid.UUID, dto CreatePaymentDTO) (*PaymentIntentResponse, error)
	Confirm(ctx context.Context, payerUserID, paymentID uuid.UUID) (*Payment, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*Payment, error)
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

func (s *service) CreateIntent(ctx context.Context, payerUserID uuid.UUID, dto CreatePaymentDTO) (*PaymentIntentResponse, error) {
	log := config.WithContext(ctx)

	appt, err := s.appointmentRepo.FindByID(dto.AppointmentID)
	if err != nil {
		if errors.Is(err, appointment.ErrNotFound) {
			return nil, ErrAppointmentUnknown
		}
		return nil, err
	}
	if appt.PatientUserID != payerUserID {
		return nil, ErrUnauthorized
	}

	existing, err := s.repo.FindByAppointment(appt.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyPaid
	}

	doc, err := s.doctorRepo.FindByID(appt.DoctorID)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.FeeCents <= 0 {
		return nil, ErrNothingToPay
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(doc.FeeCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("appointment_id", appt.ID.String())

	pi, err := paymentintent.New(params)
	if err != nil {
		log.WithError(err).Error("Failed to create Stripe payment intent")
		return nil, err
	}

	p := &Payment{
		AppointmentID:         appt.ID,
		PayerUserID:           payerUserID,
		StripePaymentIntentID: pi.ID,
		AmountCents:           doc.FeeCents,
		Currency:              string(stripe.CurrencyUSD),
		Status:                StatusPending,
	}
	if err := s.repo.Create(p); err != nil {
		log.WithError(err).Error("Failed to persist payment")
		return nil, err
	}

	log.WithField("payment_id", p.ID).Info("Payment intent created")
	return &PaymentIntentResponse{
		Payment:      p,
		ClientSecret: pi.ClientSecret,
	}, nil
}

// Confirm re-reads the intent from Stripe and maps its state onto the
// payment row. Called by the client after the Stripe.js flow finishes.
func (s *service) Confirm(ctx context.Context, payerUserID, paymentID uuid.UUID) (*Payment, error) {
	log := config.WithContext(ctx)

	p, err := s.repo.FindByID(paymentID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPaymentNotFound
	}
	if p.PayerUserID != payerUserID {
		return nil, ErrUnauthorized
	}

	pi, err := paymentintent.Get(p.StripePaymentIntentID, nil)
	if err != nil {
		log.WithError(err).Error("Failed to retrieve Stripe payment intent")
		return nil, err
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		p.Status = StatusSucceeded
	case stripe.PaymentIntentStatusCanceled:
		p.Status = StatusFailed
	default:
		p.Status = StatusPending
	}

	if err := s.repo.Update(p); err != nil {
		log.WithError(err).Error("Failed to update payment status")
		return nil, err
	}

	return p, nil
}

func (s *service) ListMine(ctx context.Context, userID uuid.UUID) ([]*Payment, error) {
	return s.repo.ListByUser(userID)
}
