package schedule

import (
	"fmt"
	"regexp"
	"time"
)

// Weekday labels as shown on the booking grid.
const (
	Monday    = "Segunda"
	Tuesday   = "Terça"
	Wednesday = "Quarta"
	Thursday  = "Quinta"
	Friday    = "Sexta"
	Saturday  = "Sábado"
	Sunday    = "Domingo"
)

// Days lists the labels in grid order.
var Days = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var byWeekday = map[time.Weekday]string{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// IsValidDay reports whether day is one of the seven labels.
func IsValidDay(day string) bool {
	for _, d := range Days {
		if d == day {
			return true
		}
	}
	return false
}

// IsWeekend reports whether day uses the weekend operating window.
func IsWeekend(day string) bool {
	return day == Saturday || day == Sunday
}

// DayOf returns the label of the weekday t falls on.
func DayOf(t time.Time) string {
	return byWeekday[t.Weekday()]
}

// TimeLayout is the wall-clock format used for slot times.
const TimeLayout = "15:04"

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// TimeOfDay is a wall-clock time in minutes since midnight.
type TimeOfDay int

// MinutesPerDay bounds every duration the grid works with.
const MinutesPerDay = 24 * 60

// IsValidTime reports whether s is a 24-hour HH:MM time.
func IsValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// ParseTimeOfDay parses a strict HH:MM value.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if !IsValidTime(s) {
		return 0, &time.ParseError{Layout: TimeLayout, Value: s, Message: ": expected HH:MM"}
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, err
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}
