package assistant

import (
	"context"

	"github.com/mal4crypt/genova-health/internal/goal"
	"github.com/mal4crypt/genova-health/internal/metric"
	"github.com/sirupsen/logrus"
)

type Container struct {
	Service Service
	Handler *Handler
}

func NewContainer(goalRepo goal.Repository, metricRepo metric.Repository) *Container {
	provider, err := NewGeminiProvider(context.Background())
	if err != nil {
		logrus.WithError(err).Warn("Gemini provider unavailable, assistant disabled")
	}
	service := NewService(provider, goalRepo, metricRepo)
	handler := NewHandler(service)

	return &Container{
		Service: service,
		Handler: handler,
	}
}
