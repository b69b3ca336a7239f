package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"owlplanner/internal/course"
)

func TestRank(t *testing.T) {
	t.Run("Highest score first", func(t *testing.T) {
		//** Arrange
		early := Schedule{
			section(t, "COMP 140", "1", [3]any{course.Monday, 480, 530}),
		}
		midday := Schedule{
			section(t, "COMP 140", "2", [3]any{course.Monday, 600, 650}),
		}

		//** Act
		ranked := Rank([]Schedule{early, midday}, DefaultPreferences(), DefaultWeights())

		//** Assert
		assert.Len(t, ranked, 2)
		assert.Equal(t, midday, ranked[0].Schedule)
		assert.Equal(t, early, ranked[1].Schedule)
		assert.Greater(t, ranked[0].Score, ranked[1].Score)
	})

	t.Run("Ties keep visitation order", func(t *testing.T) {
		first := Schedule{
			section(t, "COMP 140", "1", [3]any{course.Monday, 600, 650}),
		}
		second := Schedule{
			section(t, "COMP 140", "2", [3]any{course.Tuesday, 600, 650}),
		}
		third := Schedule{
			section(t, "COMP 140", "3", [3]any{course.Wednesday, 600, 650}),
		}

		ranked := Rank([]Schedule{first, second, third}, DefaultPreferences(), DefaultWeights())

		assert.Equal(t, []Schedule{first, second, third}, []Schedule{
			ranked[0].Schedule, ranked[1].Schedule, ranked[2].Schedule,
		})
	})

	t.Run("Satisfied labels travel with the schedule", func(t *testing.T) {
		midday := Schedule{
			section(t, "COMP 140", "1", [3]any{course.Monday, 600, 650}),
		}

		ranked := Rank([]Schedule{midday}, DefaultPreferences(), DefaultWeights())

		assert.Contains(t, ranked[0].Satisfied, "No Early Classes (before 9 AM)")
	})
}
