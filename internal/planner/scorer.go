package planner

import (
	"slices"

	"github.com/samber/lo"

	"owlplanner/internal/course"
)

const (
	// Meeting starts before 09:00 count as early mornings
	earlyMorningLimit = 540
	// Meeting ends after 19:00 count as late nights
	lateNightLimit = 1140
	// Lunch window is 11:00-13:00; a qualifying break overlaps it by
	// at least an hour
	lunchWindowStart = 660
	lunchWindowEnd   = 780
	lunchBreakLength = 60
	// Gaps shorter than 10 minutes mean rushing between classes, gaps
	// longer than two hours mean idle time
	shortGapLimit = 10
	longGapLimit  = 120
)

// Score evaluates a schedule's desirability under the given toggles
// and weights. Each enabled rule contributes additively; a higher
// score is a better schedule. Pure: identical inputs always produce
// the identical score.
func Score(schedule Schedule, prefs Preferences, weights Weights) float64 {
	score := 0.0

	if prefs.Avoid5Days && countUniqueDays(schedule) >= 5 {
		score += weights.FiveDayPenalty
	}

	if prefs.MorningPreference && earliestStart(schedule) < earlyMorningLimit {
		score += weights.MorningPenalty
	}

	if prefs.AvoidLateNights && latestEnd(schedule) > lateNightLimit {
		score += weights.LateNightPenalty
	}

	if prefs.BalanceGaps {
		for _, gap := range calculateGaps(schedule) {
			if gap < shortGapLimit {
				score += weights.GapTooShortPenalty
			} else if gap > longGapLimit {
				score += weights.GapTooLongPenalty
			}
		}
	}

	if prefs.LunchBreak && hasLunchBreak(schedule) {
		score += weights.LunchBonus
	}

	if prefs.LimitClassesPerDay {
		for _, count := range classesPerDay(schedule) {
			if count >= 3 {
				// Penalty grows linearly with the excess load
				score += weights.ClassCountPenalty * float64(count-2)
			}
		}
	}

	return score
}

// SatisfiedPreferences reports the positive framing of each enabled
// rule the schedule satisfies, as human-readable labels in a fixed
// order. Kept consistent with Score by reusing the same analyses.
func SatisfiedPreferences(schedule Schedule, prefs Preferences) []string {
	satisfied := []string{}

	if prefs.Avoid5Days && countUniqueDays(schedule) < 5 {
		satisfied = append(satisfied, "4-Day Week")
	}

	if prefs.MorningPreference && earliestStart(schedule) >= earlyMorningLimit {
		satisfied = append(satisfied, "No Early Classes (before 9 AM)")
	}

	if prefs.AvoidLateNights && latestEnd(schedule) <= lateNightLimit {
		satisfied = append(satisfied, "No Late Classes")
	}

	if prefs.BalanceGaps {
		gaps := calculateGaps(schedule)
		// Back-to-back schedules with no gaps at all also count as balanced
		balanced := !lo.SomeBy(gaps, func(gap int) bool {
			return gap < shortGapLimit || gap > longGapLimit
		})
		if balanced {
			satisfied = append(satisfied, "Balanced Gaps")
		}
	}

	if prefs.LunchBreak && hasLunchBreak(schedule) {
		satisfied = append(satisfied, "Lunch Break (1 hour)")
	}

	if prefs.LimitClassesPerDay {
		busiest := lo.Max(lo.Values(classesPerDay(schedule)))
		if busiest <= 2 {
			satisfied = append(satisfied, "Max 2 Classes/Day")
		}
	}

	return satisfied
}

func allMeetings(schedule Schedule) []course.MeetingTime {
	return lo.FlatMap(schedule, func(section *course.Section, _ int) []course.MeetingTime {
		return section.Meetings
	})
}

// countUniqueDays iterates meetings directly, so weekend meetings do
// count toward the five-day threshold even though every per-day
// analysis below considers Mon-Fri only.
func countUniqueDays(schedule Schedule) int {
	days := lo.Uniq(lo.Map(allMeetings(schedule), func(meeting course.MeetingTime, _ int) course.Day {
		return meeting.Day
	}))
	return len(days)
}

func earliestStart(schedule Schedule) int {
	earliest := course.MinutesPerDay
	for _, meeting := range allMeetings(schedule) {
		earliest = min(earliest, meeting.Start)
	}
	return earliest
}

func latestEnd(schedule Schedule) int {
	latest := 0
	for _, meeting := range allMeetings(schedule) {
		latest = max(latest, meeting.End)
	}
	return latest
}

// meetingsByWeekday groups the schedule's Mon-Fri meetings per day,
// each day sorted by start time. Weekend meetings are dropped.
func meetingsByWeekday(schedule Schedule) map[course.Day][]course.MeetingTime {
	byDay := make(map[course.Day][]course.MeetingTime, len(course.Weekdays))
	for _, day := range course.Weekdays {
		byDay[day] = []course.MeetingTime{}
	}

	for _, meeting := range allMeetings(schedule) {
		if _, weekday := byDay[meeting.Day]; weekday {
			byDay[meeting.Day] = append(byDay[meeting.Day], meeting)
		}
	}

	for day := range byDay {
		slices.SortFunc(byDay[day], func(a, b course.MeetingTime) int {
			if a.Start != b.Start {
				return a.Start - b.Start
			}
			return a.End - b.End
		})
	}
	return byDay
}

// calculateGaps returns the positive gaps, in minutes, between
// consecutive same-day meetings across the week.
func calculateGaps(schedule Schedule) []int {
	gaps := []int{}
	byDay := meetingsByWeekday(schedule)
	for _, day := range course.Weekdays {
		meetings := byDay[day]
		for i := 0; i+1 < len(meetings); i++ {
			if gap := meetings[i+1].Start - meetings[i].End; gap > 0 {
				gaps = append(gaps, gap)
			}
		}
	}
	return gaps
}

// hasLunchBreak reports whether any day has a gap of at least an hour
// overlapping the 11:00-13:00 window by at least an hour.
func hasLunchBreak(schedule Schedule) bool {
	byDay := meetingsByWeekday(schedule)
	for _, day := range course.Weekdays {
		meetings := byDay[day]
		for i := 0; i+1 < len(meetings); i++ {
			endCurrent, startNext := meetings[i].End, meetings[i+1].Start
			if startNext-endCurrent < lunchBreakLength {
				continue
			}

			overlap := min(startNext, lunchWindowEnd) - max(endCurrent, lunchWindowStart)
			if overlap >= lunchBreakLength {
				return true
			}
		}
	}
	return false
}

func classesPerDay(schedule Schedule) map[course.Day]int {
	counts := make(map[course.Day]int, len(course.Weekdays))
	for day, meetings := range meetingsByWeekday(schedule) {
		counts[day] = len(meetings)
	}
	return counts
}
