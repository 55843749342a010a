package metric

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/config"
)

var ErrMissingType = errors.New("metric type is required")

// ProgressEngine is the goal pipeline step that runs after every
// ingestion. Satisfied by *goal.Engine.
type ProgressEngine interface {
	Apply(ctx context.Context, userID uuid.UUID, metricType string) error
}

type Service interface {
	Ingest(ctx context.Context, userID uuid.UUID, dto IngestMetricDTO) (*HealthMetric, error)
	List(ctx context.Context, userID uuid.UUID, metricType string) ([]*HealthMetric, error)
}

type service struct {
	repo   Repository
	engine ProgressEngine
}

func NewService(repo Repository, engine ProgressEngine) Service {
	return &service{repo: repo, engine: engine}
}

// Ingest persists the measurement unconditionally and then runs the goal
// progress pipeline for (user, type) before returning. The metric row is
// never rolled back when a later pipeline step fails.
func (s *service) Ingest(ctx context.Context, userID uuid.UUID, dto IngestMetricDTO) (*HealthMetric, error) {
	log := config.WithContext(ctx)

	if dto.Type == "" {
		return nil, ErrMissingType
	}

	recordedAt := time.Now()
	if dto.RecordedAt != nil {
		recordedAt = *dto.RecordedAt
	}

	m := &HealthMetric{
		UserID:     userID,
		Type:       dto.Type,
		Value:      dto.Value,
		Unit:       dto.Unit,
		RecordedAt: recordedAt,
		Source:     dto.Source,
		Metadata:   dto.Metadata,
	}

	if err := s.repo.Create(m); err != nil {
		log.WithError(err).Error("Failed to persist health metric")
		return nil, err
	}

	if err := s.engine.Apply(ctx, userID, m.Type); err != nil {
		log.WithError(err).Errorf("Goal progress update failed for metric %s", m.ID)
		return nil, err
	}

	return m, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, metricType string) ([]*HealthMetric, error) {
	return s.repo.ListByUser(userID, metricType)
}
