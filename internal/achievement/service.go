package achievement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/config"
)

const (
	goalCompletionPoints = 100
	goalCompletionLevel  = "GOLD"
)

type Service interface {
	// RecordGoalCompletion awards the "Winner: {title}" achievement for a
	// completed goal. Reports whether a new achievement was created.
	RecordGoalCompletion(ctx context.Context, userID uuid.UUID, goalTitle string) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Achievement, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// WinnerTitle builds the deterministic achievement title for a goal.
func WinnerTitle(goalTitle string) string {
	return fmt.Sprintf("Winner: %s", goalTitle)
}

func (s *service) RecordGoalCompletion(ctx context.Context, userID uuid.UUID, goalTitle string) (bool, error) {
	log := config.WithContext(ctx)

	a := &Achievement{
		UserID:      userID,
		Title:       WinnerTitle(goalTitle),
		Description: fmt.Sprintf("Completed the fitness goal %q", goalTitle),
		Points:      goalCompletionPoints,
		Level:       goalCompletionLevel,
		EarnedAt:    time.Now(),
	}

	created, err := s.repo.CreateOnce(a)
	if err != nil {
		log.WithError(err).Error("Failed to record goal completion achievement")
		return false, err
	}

	if created {
		log.WithField("user_id", userID).Infof("Achievement earned: %s", a.Title)
	}
	return created, nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Achievement, error) {
	return s.repo.ListByUser(userID)
}
