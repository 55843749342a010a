package assistant

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/goal"
	"github.com/mal4crypt/genova-health/internal/metric"
)

// Keep the prompt bounded even for very active users.
const maxPromptMetrics = 50

type Service interface {
	GenerateInsights(ctx context.Context, userID uuid.UUID, req InsightRequest) ([]Insight, error)
}

type service struct {
	provider   Provider
	goalRepo   goal.Repository
	metricRepo metric.Repository
}

func NewService(provider Provider, goalRepo goal.Repository, metricRepo metric.Repository) Service {
	return &service{
		provider:   provider,
		goalRepo:   goalRepo,
		metricRepo: metricRepo,
	}
}

func (s *service) GenerateInsights(ctx context.Context, userID uuid.UUID, req InsightRequest) ([]Insight, error) {
	if s.provider == nil {
		return nil, errors.New("assistant provider is not configured")
	}

	goals, err := s.goalRepo.FindAllByUserID(userID)
	if err != nil {
		return nil, err
	}

	metrics, err := s.metricRepo.ListByUser(userID, "")
	if err != nil {
		return nil, err
	}
	if len(metrics) > maxPromptMetrics {
		metrics = metrics[:maxPromptMetrics]
	}

	user := BuildUserPrompt(req, goals, metrics)
	return s.provider.SendPrompt(ctx, systemPrompt, user)
}
