package course

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesFromClock converts a 24-hour "HH:MM" clock string into
// minutes since midnight.
func MinutesFromClock(clock string) (int, error) {
	hoursStr, minutesStr, found := strings.Cut(clock, ":")
	if !found {
		return 0, fmt.Errorf("%v is not a valid HH:MM clock time", clock)
	}
	hours, err := strconv.Atoi(strings.TrimSpace(hoursStr))
	if err != nil {
		return 0, fmt.Errorf("%v is not a valid HH:MM clock time", clock)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(minutesStr))
	if err != nil {
		return 0, fmt.Errorf("%v is not a valid HH:MM clock time", clock)
	}
	if hours < 0 || hours > 24 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%v is out of the clock range", clock)
	}
	return hours*60 + minutes, nil
}

// MinutesFromClock12 converts a 12-hour clock string with an AM/PM
// suffix (e.g. "2:00PM") into minutes since midnight.
func MinutesFromClock12(clock string) (int, error) {
	clock = strings.TrimSpace(clock)
	if len(clock) < 3 {
		return 0, fmt.Errorf("%v is not a valid 12-hour clock time", clock)
	}

	suffix := strings.ToUpper(clock[len(clock)-2:])
	minutes, err := MinutesFromClock(clock[:len(clock)-2])
	if err != nil {
		return 0, err
	}

	switch suffix {
	case "AM":
		// 12:xxAM wraps to the first hour of the day
		if minutes >= 12*60 {
			minutes -= 12 * 60
		}
	case "PM":
		if minutes < 12*60 {
			minutes += 12 * 60
		}
	default:
		return 0, fmt.Errorf("%v must end with AM or PM", clock)
	}
	return minutes, nil
}

// FormatMinutes renders minutes since midnight as a 24-hour "HH:MM"
// clock string.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
