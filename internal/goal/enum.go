package goal

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "ACTIVE"
	GoalStatusCompleted GoalStatus = "COMPLETED"
)

type GoalCategory string

const (
	CategoryActivity GoalCategory = "activity"
	CategorySleep    GoalCategory = "sleep"
)

var AllCategories = []GoalCategory{
	CategoryActivity,
	CategorySleep,
}

func (c GoalCategory) IsValid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}
