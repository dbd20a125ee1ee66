package schedule

import (
	"fmt"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/validation"
)

// slotTiming bounds must match MinSlotDurationMinutes and MaxSlotDurationMinutes.
type slotTiming struct {
	SlotDurationMinutes      int `json:"slot_duration_minutes" validate:"min=30,max=180" issue:"InvalidDuration"`
	BreakBetweenSlotsMinutes int `json:"break_between_slots_minutes" validate:"min=0" issue:"InvalidValue"`
}

// ValidateOperatingHours checks every configured window, the slot duration,
// the gap between slots and the closed days, collecting all violations.
func ValidateOperatingHours(cfg *Config) validation.Result {
	var c validation.Collector

	if cfg == nil {
		c.Add(validation.CodeRequired, "operating_hours", "operating hours are not defined")
		return c.Result()
	}

	if !cfg.Weekdays.configured() && !cfg.Weekends.configured() {
		c.Add(validation.CodeRequired, "operating_hours", "at least one operating window must be defined")
	}
	if cfg.Weekdays.configured() {
		c.Merge("weekdays", validateWindow(cfg.Weekdays, "weekdays"))
	}
	if cfg.Weekends.configured() {
		c.Merge("weekends", validateWindow(cfg.Weekends, "weekends"))
	}

	c.Struct(slotTiming{
		SlotDurationMinutes:      cfg.SlotDurationMinutes,
		BreakBetweenSlotsMinutes: cfg.BreakBetweenSlotsMinutes,
	})
	for _, d := range cfg.ClosedDays {
		if !IsValidDay(d) {
			c.Add(validation.CodeInvalidDay, "closed_days", fmt.Sprintf("unknown day %q", d))
		}
	}

	return c.Result()
}

func validateWindow(w Window, period string) validation.Result {
	var c validation.Collector

	if w.Start == "" {
		c.Add(validation.CodeRequired, "start", period+" opening time is required")
	}
	if w.End == "" {
		c.Add(validation.CodeRequired, "end", period+" closing time is required")
	}
	if w.Start == "" || w.End == "" {
		return c.Result()
	}

	start, startErr := ParseTimeOfDay(w.Start)
	if startErr != nil {
		c.Add(validation.CodeInvalidTimeFormat, "start", period+" opening time must be HH:MM")
	}
	end, endErr := ParseTimeOfDay(w.End)
	if endErr != nil {
		c.Add(validation.CodeInvalidTimeFormat, "end", period+" closing time must be HH:MM")
	}
	if startErr == nil && endErr == nil && start >= end {
		c.Add(validation.CodeInvalidWindow, "", period+" opening time must be before closing time")
	}

	if !w.hasBreak() {
		return c.Result()
	}
	if w.BreakStart == "" {
		c.Add(validation.CodeRequired, "break_start", period+" break start is required when a break end is set")
	}
	if w.BreakEnd == "" {
		c.Add(validation.CodeRequired, "break_end", period+" break end is required when a break start is set")
	}
	if w.BreakStart == "" || w.BreakEnd == "" {
		return c.Result()
	}

	bStart, bStartErr := ParseTimeOfDay(w.BreakStart)
	if bStartErr != nil {
		c.Add(validation.CodeInvalidTimeFormat, "break_start", period+" break start must be HH:MM")
	}
	bEnd, bEndErr := ParseTimeOfDay(w.BreakEnd)
	if bEndErr != nil {
		c.Add(validation.CodeInvalidTimeFormat, "break_end", period+" break end must be HH:MM")
	}
	if bStartErr != nil || bEndErr != nil {
		return c.Result()
	}
	if bStart >= bEnd {
		c.Add(validation.CodeInvalidWindow, "break_start", period+" break start must be before break end")
	} else if startErr == nil && endErr == nil && (bStart < start || bEnd > end) {
		c.Add(validation.CodeInvalidWindow, "break_start", period+" break must fall inside operating hours")
	}

	return c.Result()
}
