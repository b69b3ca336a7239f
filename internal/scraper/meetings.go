package scraper

import (
	"fmt"
	"strings"

	"owlplanner/internal/course"
)

var dayLetters = map[rune]course.Day{
	'M': course.Monday,
	'T': course.Tuesday,
	'W': course.Wednesday,
	'R': course.Thursday,
	'F': course.Friday,
	'S': course.Saturday,
	'U': course.Sunday,
}

type meetingPattern struct {
	days  []course.Day
	start int
	end   int
}

// parseMeetingString turns a catalog meeting cell such as
// "2:00PM - 3:15PM MW" into its day list and minute-of-day range.
func parseMeetingString(text string) (meetingPattern, error) {
	fields := strings.Fields(text)
	if len(fields) < 4 || fields[1] != "-" {
		return meetingPattern{}, fmt.Errorf("%q is not a valid meeting string", text)
	}

	start, err := course.MinutesFromClock12(fields[0])
	if err != nil {
		return meetingPattern{}, fmt.Errorf("meeting %q: %w", text, err)
	}
	end, err := course.MinutesFromClock12(fields[2])
	if err != nil {
		return meetingPattern{}, fmt.Errorf("meeting %q: %w", text, err)
	}

	days := []course.Day{}
	for _, letter := range fields[3] {
		day, known := dayLetters[letter]
		if !known {
			return meetingPattern{}, fmt.Errorf("meeting %q: unknown day letter %q", text, letter)
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		return meetingPattern{}, fmt.Errorf("meeting %q has no days", text)
	}

	return meetingPattern{days: days, start: start, end: end}, nil
}

func joinDays(days []course.Day) string {
	names := make([]string, len(days))
	for i, day := range days {
		names[i] = string(day)
	}
	return strings.Join(names, ",")
}
