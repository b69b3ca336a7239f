package course

import "fmt"

const MinutesPerDay = 1440

// MeetingTime is a single weekly occurrence of a section, as a
// minute-of-day range on one day. The range is half-open: a meeting
// ending at minute 600 does not overlap one starting at 600.
type MeetingTime struct {
	Day   Day
	Start int
	End   int
}

func NewMeetingTime(day Day, start, end int) (MeetingTime, error) {
	if !day.Valid() {
		return MeetingTime{}, fmt.Errorf("%v is not a valid day", day)
	} else if start < 0 || end > MinutesPerDay {
		return MeetingTime{}, fmt.Errorf("meeting [%v, %v] is out of the minute-of-day range", start, end)
	} else if start >= end {
		return MeetingTime{}, fmt.Errorf("meeting must start before it ends: start=%v, end=%v", start, end)
	}
	return MeetingTime{Day: day, Start: start, End: end}, nil
}

func (m MeetingTime) Overlaps(other MeetingTime) bool {
	return m.Day == other.Day && m.Start < other.End && other.Start < m.End
}

func (m MeetingTime) String() string {
	return fmt.Sprintf("%v %v-%v", m.Day, FormatMinutes(m.Start), FormatMinutes(m.End))
}
