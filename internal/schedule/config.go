package schedule

import (
	"errors"
	"fmt"
)

const (
	MinSlotDurationMinutes = 30
	MaxSlotDurationMinutes = 180
)

// ErrConfiguration is matched by every ConfigurationError.
var ErrConfiguration = errors.New("invalid operating hours configuration")

// ConfigurationError reports operating hours that cannot drive slot generation.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConfiguration.Error(), e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// Window is the open/close span of one day type, with an optional break.
type Window struct {
	Start      string `json:"start" toml:"start"`
	End        string `json:"end" toml:"end"`
	BreakStart string `json:"break_start,omitempty" toml:"break_start"`
	BreakEnd   string `json:"break_end,omitempty" toml:"break_end"`
}

func (w Window) configured() bool {
	return w.Start != "" || w.End != ""
}

func (w Window) hasBreak() bool {
	return w.BreakStart != "" || w.BreakEnd != ""
}

// bounds returns the parsed window; ok is false when it is malformed.
func (w Window) bounds() (start, end TimeOfDay, ok bool) {
	start, err := ParseTimeOfDay(w.Start)
	if err != nil {
		return 0, 0, false
	}
	end, err = ParseTimeOfDay(w.End)
	if err != nil {
		return 0, 0, false
	}
	return start, end, start < end
}

func (w Window) breakBounds() (start, end TimeOfDay, ok bool) {
	start, err := ParseTimeOfDay(w.BreakStart)
	if err != nil {
		return 0, 0, false
	}
	end, err = ParseTimeOfDay(w.BreakEnd)
	if err != nil {
		return 0, 0, false
	}
	return start, end, start < end
}

// Config holds the operating hours that drive slot generation.
type Config struct {
	Weekdays                 Window   `json:"weekdays" toml:"weekdays"`
	Weekends                 Window   `json:"weekends" toml:"weekends"`
	SlotDurationMinutes      int      `json:"slot_duration_minutes" toml:"slot_duration_minutes"`
	BreakBetweenSlotsMinutes int      `json:"break_between_slots_minutes" toml:"break_between_slots_minutes"`
	ClosedDays               []string `json:"closed_days" toml:"closed_days"`
}

// WindowFor returns the window that applies to day.
func (c *Config) WindowFor(day string) Window {
	if IsWeekend(day) {
		return c.Weekends
	}
	return c.Weekdays
}

// IsClosed reports whether day has been switched off.
func (c *Config) IsClosed(day string) bool {
	for _, d := range c.ClosedDays {
		if d == day {
			return true
		}
	}
	return false
}

// DefaultConfig returns the hours a freshly installed club starts with.
func DefaultConfig() Config {
	return Config{
		Weekdays:            Window{Start: "08:00", End: "22:00"},
		Weekends:            Window{Start: "09:00", End: "18:00"},
		SlotDurationMinutes: 60,
		ClosedDays:          []string{},
	}
}
