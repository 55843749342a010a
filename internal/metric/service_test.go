package metric_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/metric"
)

type fakeMetricRepo struct {
	created   []*metric.HealthMetric
	createErr error
}

func (r *fakeMetricRepo) Create(m *metric.HealthMetric) error {
	if r.createErr != nil {
		return r.createErr
	}
	m.ID = uuid.New()
	r.created = append(r.created, m)
	return nil
}

func (r *fakeMetricRepo) ListByUser(userID uuid.UUID, metricType string) ([]*metric.HealthMetric, error) {
	var out []*metric.HealthMetric
	for _, m := range r.created {
		if m.UserID == userID && (metricType == "" || m.Type == metricType) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMetricRepo) SumByTypeSince(userID uuid.UUID, metricType string, from time.Time, until *time.Time) (float64, error) {
	var sum float64
	for _, m := range r.created {
		if m.UserID == userID && m.Type == metricType && !m.RecordedAt.Before(from) {
			sum += m.Value
		}
	}
	return sum, nil
}

type fakeEngine struct {
	applied []string
	err     error
}

func (e *fakeEngine) Apply(ctx context.Context, userID uuid.UUID, metricType string) error {
	e.applied = append(e.applied, metricType)
	return e.err
}

func TestIngest(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("PersistsMetricAndTriggersPipeline", func(t *testing.T) {
		repo := &fakeMetricRepo{}
		engine := &fakeEngine{}
		svc := metric.NewService(repo, engine)

		recorded := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
		m, err := svc.Ingest(ctx, userID, metric.IngestMetricDTO{
			Type:       "steps",
			Value:      3000,
			Unit:       "count",
			RecordedAt: &recorded,
		})
		if err != nil {
			t.Fatalf("Ingest returned error: %v", err)
		}

		if len(repo.created) != 1 {
			t.Fatalf("persisted %d metrics, want 1", len(repo.created))
		}
		if !m.RecordedAt.Equal(recorded) {
			t.Errorf("RecordedAt = %v, want %v", m.RecordedAt, recorded)
		}
		if len(engine.applied) != 1 || engine.applied[0] != "steps" {
			t.Errorf("pipeline applied for %v, want [steps]", engine.applied)
		}
	})

	t.Run("DefaultsRecordedAtToNow", func(t *testing.T) {
		repo := &fakeMetricRepo{}
		svc := metric.NewService(repo, &fakeEngine{})

		before := time.Now()
		m, err := svc.Ingest(ctx, userID, metric.IngestMetricDTO{Type: "steps", Value: 100})
		if err != nil {
			t.Fatalf("Ingest returned error: %v", err)
		}
		if m.RecordedAt.Before(before) || m.RecordedAt.After(time.Now()) {
			t.Errorf("RecordedAt = %v, expected to default to the ingestion time", m.RecordedAt)
		}
	})

	t.Run("RejectsMissingType", func(t *testing.T) {
		repo := &fakeMetricRepo{}
		engine := &fakeEngine{}
		svc := metric.NewService(repo, engine)

		_, err := svc.Ingest(ctx, userID, metric.IngestMetricDTO{Value: 100})
		if !errors.Is(err, metric.ErrMissingType) {
			t.Fatalf("Ingest error = %v, want ErrMissingType", err)
		}
		if len(repo.created) != 0 {
			t.Errorf("metric persisted despite missing type")
		}
		if len(engine.applied) != 0 {
			t.Errorf("pipeline ran despite missing type")
		}
	})

	t.Run("KeepsMetricWhenPipelineFails", func(t *testing.T) {
		repo := &fakeMetricRepo{}
		engine := &fakeEngine{err: errors.New("goal update failed")}
		svc := metric.NewService(repo, engine)

		_, err := svc.Ingest(ctx, userID, metric.IngestMetricDTO{Type: "steps", Value: 100})
		if err == nil {
			t.Fatal("Ingest did not propagate the pipeline error")
		}
		if len(repo.created) != 1 {
			t.Errorf("metric row was not kept after pipeline failure")
		}
	})

	t.Run("DoesNotRunPipelineWhenPersistenceFails", func(t *testing.T) {
		repo := &fakeMetricRepo{createErr: errors.New("disk full")}
		engine := &fakeEngine{}
		svc := metric.NewService(repo, engine)

		if _, err := svc.Ingest(ctx, userID, metric.IngestMetricDTO{Type: "steps", Value: 100}); err == nil {
			t.Fatal("Ingest did not propagate the persistence error")
		}
		if len(engine.applied) != 0 {
			t.Errorf("pipeline ran for an unpersisted metric")
		}
	})
}
