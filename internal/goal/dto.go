package goal

import "time"

type CreateGoalDTO struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    GoalCategory `json:"category"`
	TargetValue float64      `json:"target_value"`
	StartDate   *time.Time   `json:"start_date"`
	EndDate     *time.Time   `json:"end_date"`
}

// UpdateGoalDTO deliberately has no status or current_value fields; both
// are owned by the engine.
type UpdateGoalDTO struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	TargetValue *float64   `json:"target_value"`
	EndDate     *time.Time `json:"end_date"`
}
