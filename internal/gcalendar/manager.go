package gcalendar

import (
	"context"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/config"
)

type CalendarManager interface {
	SyncAppointment(ctx context.Context, userID uuid.UUID, appt *CalendarAppointment) (eventID string, err error)
	RemoveAppointment(ctx context.Context, userID uuid.UUID, eventID string) error
}

type calendarManager struct {
	calendarService CalendarService
}

func NewCalendarManager(calendarService CalendarService) CalendarManager {
	return &calendarManager{
		calendarService: calendarService,
	}
}

func (m *calendarManager) SyncAppointment(ctx context.Context, userID uuid.UUID, appt *CalendarAppointment) (string, error) {
	log := config.WithContext(ctx)

	hasValidDates := appt.StartsAt != nil
	hasEventID := appt.GoogleEventID != nil && *appt.GoogleEventID != ""

	if hasEventID && !hasValidDates {
		log.Infof("Appointment %s no longer has a valid slot, deleting calendar event", appt.ID)
		if err := m.calendarService.DeleteEventFromCalendar(ctx, userID, *appt.GoogleEventID); err != nil {
			log.WithError(err).Warnf("Failed to delete calendar event for appointment %s", appt.ID)
		}
		return "", nil
	}

	if !hasValidDates {
		return "", nil
	}

	if hasEventID {
		if err := m.calendarService.UpdateEventInCalendar(ctx, userID, appt); err != nil {
			log.WithError(err).Warnf("Failed to update calendar event for appointment %s", appt.ID)
			return *appt.GoogleEventID, err
		}
		return *appt.GoogleEventID, nil
	}

	eventID, err := m.calendarService.AddEventToCalendar(ctx, userID, appt)
	if err != nil {
		log.WithError(err).Warnf("Failed to create calendar event for appointment %s", appt.ID)
		return "", err
	}

	if eventID == "" {
		log.Warnf("Calendar service returned empty event ID for appointment %s", appt.ID)
		return "", nil
	}

	log.Infof("Created calendar event %s for appointment %s", eventID, appt.ID)
	return eventID, nil
}

func (m *calendarManager) RemoveAppointment(ctx context.Context, userID uuid.UUID, eventID string) error {
	if eventID == "" {
		return nil
	}

	log := config.WithContext(ctx)

	if err := m.calendarService.DeleteEventFromCalendar(ctx, userID, eventID); err != nil {
		log.WithError(err).Warnf("Failed to delete calendar event %s", eventID)
		return err
	}

	return nil
}
