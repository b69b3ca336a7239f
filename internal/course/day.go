package course

import "fmt"

// Day is a weekday in the short form used across the catalog CSV and the API.
type Day string

const (
	Monday    Day = "Mon"
	Tuesday   Day = "Tue"
	Wednesday Day = "Wed"
	Thursday  Day = "Thu"
	Friday    Day = "Fri"
	Saturday  Day = "Sat"
	Sunday    Day = "Sun"
)

// Weekdays are the days considered by the per-day schedule analyses.
var Weekdays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

var validDays = map[Day]bool{
	Monday:    true,
	Tuesday:   true,
	Wednesday: true,
	Thursday:  true,
	Friday:    true,
	Saturday:  true,
	Sunday:    true,
}

func (d Day) Valid() bool {
	return validDays[d]
}

func ParseDay(s string) (Day, error) {
	day := Day(s)
	if !day.Valid() {
		return "", fmt.Errorf("%v is not a valid day", s)
	}
	return day, nil
}
