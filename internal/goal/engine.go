package goal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/achievement"
	"github.com/mal4crypt/genova-health/internal/config"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUnmappedMetricType = errors.New("metric type maps to no goal category")

// MetricSummer aggregates metric values for a user. Satisfied by the
// metric repository; an interface here keeps the engine free of an import
// cycle with the metric package.
type MetricSummer interface {
	SumByTypeSince(userID uuid.UUID, metricType string, from time.Time, until *time.Time) (float64, error)
}

// CompletionRecorder awards the achievement for a newly completed goal.
// Satisfied by the achievement service.
type CompletionRecorder interface {
	RecordGoalCompletion(ctx context.Context, userID uuid.UUID, goalTitle string) (bool, error)
}

type UnmappedPolicy string

const (
	UnmappedIgnore UnmappedPolicy = "IGNORE"
	UnmappedError  UnmappedPolicy = "ERROR"
)

// EngineConfig surfaces the behaviors the original pipeline left implicit.
type EngineConfig struct {
	// EnforceEndDate stops a goal from accruing metrics recorded after its
	// end date. Off by default: historically metrics past end_date kept
	// counting.
	EnforceEndDate bool
	// Transactional wraps the per-goal update and achievement insert in one
	// database transaction. Off by default: historically the pipeline had
	// no transactional boundary and partial updates were possible.
	Transactional bool
	// UnmappedPolicy decides what an ingestion of an unmapped metric type
	// does to the pipeline: ignore it (default) or fail the ingestion.
	UnmappedPolicy UnmappedPolicy
}

func EngineConfigFromEnv() EngineConfig {
	cfg := EngineConfig{UnmappedPolicy: UnmappedIgnore}
	if os.Getenv("GOAL_ENFORCE_END_DATE") == "true" {
		cfg.EnforceEndDate = true
	}
	if os.Getenv("GOAL_TRANSACTIONAL_UPDATES") == "true" {
		cfg.Transactional = true
	}
	if os.Getenv("GOAL_UNMAPPED_METRIC_POLICY") == string(UnmappedError) {
		cfg.UnmappedPolicy = UnmappedError
	}
	return cfg
}

// Engine recomputes goal progress after each metric ingestion: match the
// user's active goals by category, re-aggregate their metric history,
// persist the new state, and award an achievement on completion.
type Engine struct {
	repo         Repository
	metrics      MetricSummer
	achievements CompletionRecorder
	db           *gorm.DB
	cfg          EngineConfig
}

func NewEngine(repo Repository, metrics MetricSummer, achievements CompletionRecorder, db *gorm.DB, cfg EngineConfig) *Engine {
	return &Engine{
		repo:         repo,
		metrics:      metrics,
		achievements: achievements,
		db:           db,
		cfg:          cfg,
	}
}

// Apply runs the pipeline for one ingested metric. A persistence failure
// aborts the remaining goals of this ingestion.
func (e *Engine) Apply(ctx context.Context, userID uuid.UUID, metricType string) error {
	log := config.WithContext(ctx)

	category, ok := MetricCategory(metricType)
	if !ok {
		if e.cfg.UnmappedPolicy == UnmappedError {
			return fmt.Errorf("%w: %q", ErrUnmappedMetricType, metricType)
		}
		log.Debugf("Metric type %q has no goal category, skipping goal update", metricType)
		return nil
	}

	goals, err := e.repo.FindActiveByUserAndCategory(userID, category)
	if err != nil {
		log.WithError(err).Error("Failed to match active goals for metric")
		return err
	}

	for _, g := range goals {
		if err := e.RefreshGoal(ctx, g); err != nil {
			log.WithError(err).Errorf("Failed to refresh goal %s", g.ID)
			return err
		}
	}

	return nil
}

// RefreshGoal re-aggregates one goal's metric history and persists the
// derived state. Also called by the goal service after a target or end
// date edit, which is how a completed goal can drop back to active.
func (e *Engine) RefreshGoal(ctx context.Context, g *FitnessGoal) error {
	metricType, ok := MetricTypeForCategory(g.Category)
	if !ok {
		return nil
	}

	var until *time.Time
	if e.cfg.EnforceEndDate {
		until = g.EndDate
	}

	sum, err := e.metrics.SumByTypeSince(g.UserID, metricType, g.StartDate, until)
	if err != nil {
		return err
	}

	g.CurrentValue = sum
	completed := sum >= g.TargetValue
	if completed {
		g.Status = GoalStatusCompleted
	} else {
		g.Status = GoalStatusActive
	}
	g.UpdatedAt = time.Now()

	if e.cfg.Transactional && e.db != nil {
		return e.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(g).Error; err != nil {
				return err
			}
			if !completed {
				return nil
			}
			a := &achievement.Achievement{
				UserID:      g.UserID,
				Title:       achievement.WinnerTitle(g.Title),
				Description: fmt.Sprintf("Completed the fitness goal %q", g.Title),
				Points:      100,
				Level:       "GOLD",
				EarnedAt:    time.Now(),
			}
			return tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "title"}},
				DoNothing: true,
			}).Create(a).Error
		})
	}

	if err := e.repo.Update(g); err != nil {
		return err
	}
	if completed {
		if _, err := e.achievements.RecordGoalCompletion(ctx, g.UserID, g.Title); err != nil {
			return err
		}
	}
	return nil
}
