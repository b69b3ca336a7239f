package planner

import (
	"slices"

	"github.com/samber/lo"
)

// ScoredSchedule pairs a schedule with its score and the labels of the
// preferences it satisfies. Never mutated after creation.
type ScoredSchedule struct {
	Score     float64
	Schedule  Schedule
	Satisfied []string
}

// Rank scores every schedule and sorts them by score, highest first.
// The sort is stable, so ties keep the generator's visitation order.
func Rank(schedules []Schedule, prefs Preferences, weights Weights) []ScoredSchedule {
	scored := lo.Map(schedules, func(schedule Schedule, _ int) ScoredSchedule {
		return ScoredSchedule{
			Score:     Score(schedule, prefs, weights),
			Schedule:  schedule,
			Satisfied: SatisfiedPreferences(schedule, prefs),
		}
	})

	slices.SortStableFunc(scored, func(a, b ScoredSchedule) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	return scored
}
