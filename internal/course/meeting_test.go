package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeetingTime(t *testing.T) {
	t.Run("Valid meeting", func(t *testing.T) {
		meeting, err := NewMeetingTime(Monday, 540, 590)

		assert.Nil(t, err)
		assert.Equal(t, Monday, meeting.Day)
		assert.Equal(t, 540, meeting.Start)
		assert.Equal(t, 590, meeting.End)
	})

	t.Run("Start must precede end", func(t *testing.T) {
		_, err := NewMeetingTime(Monday, 600, 600)
		assert.NotNil(t, err)

		_, err = NewMeetingTime(Monday, 610, 600)
		assert.NotNil(t, err)
	})

	t.Run("Minutes must stay within the day", func(t *testing.T) {
		_, err := NewMeetingTime(Monday, -1, 60)
		assert.NotNil(t, err)

		_, err = NewMeetingTime(Monday, 1400, 1441)
		assert.NotNil(t, err)
	})

	t.Run("Day must be known", func(t *testing.T) {
		_, err := NewMeetingTime(Day("Monday"), 540, 590)
		assert.NotNil(t, err)
	})
}

func TestOverlaps(t *testing.T) {
	t.Run("Half-open boundary", func(t *testing.T) {
		first, _ := NewMeetingTime(Monday, 540, 600)
		touching, _ := NewMeetingTime(Monday, 600, 660)
		oneMinuteIn, _ := NewMeetingTime(Monday, 599, 660)

		// Touching endpoints do not overlap
		assert.False(t, first.Overlaps(touching))
		assert.True(t, first.Overlaps(oneMinuteIn))
	})

	t.Run("Different days never overlap", func(t *testing.T) {
		monday, _ := NewMeetingTime(Monday, 540, 600)
		tuesday, _ := NewMeetingTime(Tuesday, 540, 600)

		assert.False(t, monday.Overlaps(tuesday))
	})
}
