package gcalendar

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/config"
	"github.com/mal4crypt/genova-health/internal/user"
	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var (
	ErrUserNotFound          = errors.New("user not found for calendar integration")
	ErrDecryptionFailed      = errors.New("failed to decrypt user's google token")
	ErrMissingCalendarTokens = errors.New("user has no google access token")
)

type CalendarService interface {
	AddEventToCalendar(ctx context.Context, userID uuid.UUID, appt *CalendarAppointment) (string, error)
	UpdateEventInCalendar(ctx context.Context, userID uuid.UUID, appt *CalendarAppointment) error
	DeleteEventFromCalendar(ctx context.Context, userID uuid.UUID, googleEventID string) error
}

type calendarService struct {
	userRepo    user.UserRepository
	oauthConfig *oauth2.Config
}

func NewCalendarService(userRepo user.UserRepository, oauthConfig *oauth2.Config) CalendarService {
	return &calendarService{
		userRepo:    userRepo,
		oauthConfig: oauthConfig,
	}
}

func (s *calendarService) getCalendarClient(ctx context.Context, userID uuid.UUID) (*gcal.Service, error) {
	log := config.WithContext(ctx)

	u, err := s.userRepo.GetByID(userID.String())
	if err != nil {
		log.WithError(err).Error("Failed to retrieve user for calendar client")
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	if u.EncryptedGoogleAccessToken == "" {
		return nil, ErrMissingCalendarTokens
	}

	accessToken, err := config.Decrypt(u.EncryptedGoogleAccessToken)
	if err != nil {
		log.WithError(err).Error("Failed to decrypt access token")
		return nil, ErrDecryptionFailed
	}

	refreshToken := ""
	if u.EncryptedGoogleRefreshToken != "" {
		if refreshToken, err = config.Decrypt(u.EncryptedGoogleRefreshToken); err != nil {
			log.WithError(err).Error("Failed to decrypt refresh token")
			return nil, ErrDecryptionFailed
		}
	}

	token := &oauth2.Token{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		RefreshToken: refreshToken,
		Expiry:       time.Now().Add(-time.Hour),
	}

	tokenSource := s.oauthConfig.TokenSource(ctx, token)
	if _, err := tokenSource.Token(); err != nil {
		log.WithError(err).Error("Failed to refresh Google token")
		return nil, err
	}

	client := oauth2.NewClient(ctx, tokenSource)
	srv, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		log.WithError(err).Error("Failed to create Calendar service client")
		return nil, err
	}

	return srv, nil
}

func (s *calendarService) buildCalendarEvent(appt *CalendarAppointment) *gcal.Event {
	event := &gcal.Event{
		Summary:     appt.Title,
		Description: appt.Notes,
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	if appt.StartsAt != nil {
		event.Start = &gcal.EventDateTime{
			DateTime: appt.StartsAt.Format(time.RFC3339),
		}
	}
	if appt.EndsAt != nil {
		event.End = &gcal.EventDateTime{
			DateTime: appt.EndsAt.Format(time.RFC3339),
		}
	} else if appt.StartsAt != nil {
		event.End = &gcal.EventDateTime{
			DateTime: appt.StartsAt.Add(30 * time.Minute).Format(time.RFC3339),
		}
	}

	if event.Start == nil || event.End == nil {
		return nil
	}

	return event
}

func (s *calendarService) AddEventToCalendar(ctx context.Context, userID uuid.UUID, appt *CalendarAppointment) (string, error) {
	log := config.WithContext(ctx)
	srv, err := s.getCalendarClient(ctx, userID)
	if err != nil {
		return "", err
	}

	event := s.buildCalendarEvent(appt)
	if event == nil {
		log.Warnf("Appointment %s has no valid dates to create a calendar event", appt.ID)
		return "", nil
	}

	calEvent, err := srv.Events.Insert("primary", event).Context(ctx).Do()
	if err != nil {
		log.WithError(err).Error("Failed to insert calendar event")
		return "", err
	}

	return calEvent.Id, nil
}

func (s *calendarService) UpdateEventInCalendar(ctx context.Context, userID uuid.UUID, appt *CalendarAppointment) error {
	log := config.WithContext(ctx)
	if appt.GoogleEventID == nil || *appt.GoogleEventID == "" {
		return errors.New("cannot update event: missing Google Calendar event ID")
	}

	srv, err := s.getCalendarClient(ctx, userID)
	if err != nil {
		return err
	}

	event := s.buildCalendarEvent(appt)
	if event == nil {
		log.Warnf("Appointment %s no longer has valid dates, deleting calendar event", appt.ID)
		return s.DeleteEventFromCalendar(ctx, userID, *appt.GoogleEventID)
	}

	_, err = srv.Events.Update("primary", *appt.GoogleEventID, event).Context(ctx).Do()
	if err != nil {
		log.WithError(err).Error("Failed to update calendar event")
		return err
	}

	return nil
}

func (s *calendarService) DeleteEventFromCalendar(ctx context.Context, userID uuid.UUID, googleEventID string) error {
	log := config.WithContext(ctx)
	srv, err := s.getCalendarClient(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrMissingCalendarTokens) || errors.Is(err, ErrDecryptionFailed) {
			log.Warnf("Skipping Google Calendar deletion for event %s due to missing/invalid token", googleEventID)
			return nil
		}
		return err
	}

	err = srv.Events.Delete("primary", googleEventID).Context(ctx).Do()
	if err != nil {
		if apiErr, ok := err.(*googleapi.Error); ok && apiErr.Code == 404 {
			log.Warnf("Calendar event %s not found on Google, considering deleted.", googleEventID)
			return nil
		}
		log.WithError(err).Error("Failed to delete calendar event")
		return err
	}

	return nil
}
