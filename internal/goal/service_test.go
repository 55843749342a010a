package goal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/goal"
)

func newServiceFixture(sums map[string]float64) (goal.Service, *fakeGoalRepo, *fakeRecorder) {
	repo := newFakeGoalRepo()
	recorder := newFakeRecorder()
	engine := goal.NewEngine(repo, &fakeSummer{sums: sums}, recorder, nil, goal.EngineConfig{
		UnmappedPolicy: goal.UnmappedIgnore,
	})
	return goal.NewService(repo, engine), repo, recorder
}

func TestGoalService(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("CreateComputesInitialProgressFromHistory", func(t *testing.T) {
		svc, _, recorder := newServiceFixture(map[string]float64{"steps": 6000})

		g, err := svc.Create(ctx, userID, goal.CreateGoalDTO{
			Title:       "Walk 5000 steps",
			Category:    goal.CategoryActivity,
			TargetValue: 5000,
		})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}

		// Metrics recorded before the goal existed already satisfy it.
		if g.CurrentValue != 6000 {
			t.Errorf("CurrentValue = %v, want 6000", g.CurrentValue)
		}
		if g.Status != goal.GoalStatusCompleted {
			t.Errorf("Status = %v, want %v", g.Status, goal.GoalStatusCompleted)
		}
		if recorder.calls != 1 {
			t.Errorf("achievement recorded %d times, want 1", recorder.calls)
		}
	})

	t.Run("CreateRejectsInvalidCategory", func(t *testing.T) {
		svc, _, _ := newServiceFixture(nil)

		_, err := svc.Create(ctx, userID, goal.CreateGoalDTO{
			Title:       "Drink water",
			Category:    "hydration",
			TargetValue: 8,
		})
		if !errors.Is(err, goal.ErrInvalidCategory) {
			t.Fatalf("Create error = %v, want ErrInvalidCategory", err)
		}
	})

	t.Run("CreateRejectsNonPositiveTarget", func(t *testing.T) {
		svc, _, _ := newServiceFixture(nil)

		_, err := svc.Create(ctx, userID, goal.CreateGoalDTO{
			Title:       "Walk",
			Category:    goal.CategoryActivity,
			TargetValue: 0,
		})
		if !errors.Is(err, goal.ErrInvalidTarget) {
			t.Fatalf("Create error = %v, want ErrInvalidTarget", err)
		}
	})

	t.Run("UpdateTargetRecomputesDerivedState", func(t *testing.T) {
		sums := map[string]float64{"steps": 6000}
		svc, _, recorder := newServiceFixture(sums)

		g, err := svc.Create(ctx, userID, goal.CreateGoalDTO{
			Title:       "Walk 5000 steps",
			Category:    goal.CategoryActivity,
			TargetValue: 5000,
		})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if g.Status != goal.GoalStatusCompleted {
			t.Fatalf("Status = %v, want %v before the edit", g.Status, goal.GoalStatusCompleted)
		}

		target := 10000.0
		g, err = svc.Update(ctx, g.ID, userID, goal.UpdateGoalDTO{TargetValue: &target})
		if err != nil {
			t.Fatalf("Update returned error: %v", err)
		}

		if g.Status != goal.GoalStatusActive {
			t.Errorf("Status = %v, want %v after raising the target", g.Status, goal.GoalStatusActive)
		}
		if len(recorder.created) != 1 {
			t.Errorf("achievements created = %d, want the original 1", len(recorder.created))
		}
	})

	t.Run("UpdateRejectsForeignGoal", func(t *testing.T) {
		svc, repo, _ := newServiceFixture(nil)
		g := activeGoal(uuid.New(), goal.CategoryActivity, 5000)
		repo.goals[g.ID] = g

		title := "Hijacked"
		_, err := svc.Update(ctx, g.ID, userID, goal.UpdateGoalDTO{Title: &title})
		if !errors.Is(err, goal.ErrUnauthorized) {
			t.Fatalf("Update error = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("UpdateRejectsUnknownGoal", func(t *testing.T) {
		svc, _, _ := newServiceFixture(nil)

		title := "Missing"
		_, err := svc.Update(ctx, uuid.New(), userID, goal.UpdateGoalDTO{Title: &title})
		if !errors.Is(err, goal.ErrGoalNotFound) {
			t.Fatalf("Update error = %v, want ErrGoalNotFound", err)
		}
	})

	t.Run("DeleteRemovesOwnedGoal", func(t *testing.T) {
		svc, repo, _ := newServiceFixture(nil)
		g := activeGoal(userID, goal.CategoryActivity, 5000)
		repo.goals[g.ID] = g

		if err := svc.Delete(ctx, g.ID, userID); err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
		if _, ok := repo.goals[g.ID]; ok {
			t.Error("goal still present after delete")
		}
	})
}

func TestCreateDefaultsStartDate(t *testing.T) {
	svc, _, _ := newServiceFixture(nil)

	before := time.Now()
	g, err := svc.Create(context.Background(), uuid.New(), goal.CreateGoalDTO{
		Title:       "Sleep 8 hours",
		Category:    goal.CategorySleep,
		TargetValue: 480,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if g.StartDate.Before(before) || g.StartDate.After(time.Now()) {
		t.Errorf("StartDate = %v, expected to default to creation time", g.StartDate)
	}
}
