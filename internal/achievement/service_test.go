package achievement_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/achievement"
)

type fakeAchievementRepo struct {
	rows map[string]*achievement.Achievement
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{rows: make(map[string]*achievement.Achievement)}
}

func (r *fakeAchievementRepo) CreateOnce(a *achievement.Achievement) (bool, error) {
	key := a.UserID.String() + "/" + a.Title
	if _, ok := r.rows[key]; ok {
		return false, nil
	}
	a.ID = uuid.New()
	r.rows[key] = a
	return true, nil
}

func (r *fakeAchievementRepo) ListByUser(userID uuid.UUID) ([]*achievement.Achievement, error) {
	var out []*achievement.Achievement
	for _, a := range r.rows {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func TestRecordGoalCompletion(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := newFakeAchievementRepo()
	svc := achievement.NewService(repo)

	created, err := svc.RecordGoalCompletion(ctx, userID, "Walk 10000 steps")
	if err != nil {
		t.Fatalf("RecordGoalCompletion returned error: %v", err)
	}
	if !created {
		t.Fatal("first completion did not create an achievement")
	}

	created, err = svc.RecordGoalCompletion(ctx, userID, "Walk 10000 steps")
	if err != nil {
		t.Fatalf("second RecordGoalCompletion returned error: %v", err)
	}
	if created {
		t.Fatal("repeat completion created a duplicate achievement")
	}

	rows, err := svc.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("stored %d achievements, want 1", len(rows))
	}

	a := rows[0]
	if want := achievement.WinnerTitle("Walk 10000 steps"); a.Title != want {
		t.Errorf("Title = %q, want %q", a.Title, want)
	}
	if a.Points != 100 {
		t.Errorf("Points = %d, want 100", a.Points)
	}
	if a.Level != "GOLD" {
		t.Errorf("Level = %q, want GOLD", a.Level)
	}
}

func TestWinnerTitle(t *testing.T) {
	if got := achievement.WinnerTitle("Sleep 8 hours"); got != "Winner: Sleep 8 hours" {
		t.Errorf("WinnerTitle = %q, want %q", got, "Winner: Sleep 8 hours")
	}
}

func TestSameTitleDifferentUsers(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAchievementRepo()
	svc := achievement.NewService(repo)

	for i := 0; i < 2; i++ {
		created, err := svc.RecordGoalCompletion(ctx, uuid.New(), "Walk 10000 steps")
		if err != nil {
			t.Fatalf("RecordGoalCompletion returned error: %v", err)
		}
		if !created {
			t.Fatal("completion for a distinct user was deduplicated")
		}
	}
}
