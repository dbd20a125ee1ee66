package schedule

import "iter"

// Key identifies a bookable slot.
type Key struct {
	CourtID string
	Day     string
	Time    string
}

// Slot is one cell of the booking grid.
type Slot struct {
	CourtID   string `json:"court_id"`
	Day       string `json:"day"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

func (s Slot) Key() Key {
	return Key{CourtID: s.CourtID, Day: s.Day, Time: s.Time}
}

func noSlots(func(Slot) bool) {}

// GenerateSlots returns the slots of courtID on day.
//
// Slots start at the window opening and advance by the slot duration plus the
// configured gap; a slot is produced only if it ends by the closing time and
// does not overlap the window break. A slot is unavailable when booked
// contains its key.
//
// A nil config, a malformed window, an unknown day or a closed day all yield
// an empty sequence, as does a slot longer than the window. A slot duration
// outside (0, MinutesPerDay] or a gap outside [0, MinutesPerDay] is a
// ConfigurationError.
// The returned sequence can be ranged over any number of times.
func GenerateSlots(courtID, day string, cfg *Config, booked []Key) (iter.Seq[Slot], error) {
	if cfg == nil {
		return noSlots, nil
	}
	if cfg.SlotDurationMinutes <= 0 {
		return nil, &ConfigurationError{Reason: "slot duration must be positive"}
	}
	if cfg.SlotDurationMinutes > MinutesPerDay {
		return nil, &ConfigurationError{Reason: "slot duration cannot exceed one day"}
	}
	if cfg.BreakBetweenSlotsMinutes < 0 {
		return nil, &ConfigurationError{Reason: "break between slots cannot be negative"}
	}
	if cfg.BreakBetweenSlotsMinutes > MinutesPerDay {
		return nil, &ConfigurationError{Reason: "break between slots cannot exceed one day"}
	}
	if !IsValidDay(day) || cfg.IsClosed(day) {
		return noSlots, nil
	}

	w := cfg.WindowFor(day)
	start, end, ok := w.bounds()
	if !ok {
		return noSlots, nil
	}

	var breakStart, breakEnd TimeOfDay
	hasBreak := w.hasBreak()
	if hasBreak {
		breakStart, breakEnd, ok = w.breakBounds()
		if !ok {
			return noSlots, nil
		}
	}

	taken := make(map[Key]struct{}, len(booked))
	for _, k := range booked {
		taken[k] = struct{}{}
	}

	duration := TimeOfDay(cfg.SlotDurationMinutes)
	if duration > end-start {
		return noSlots, nil
	}
	step := duration + TimeOfDay(cfg.BreakBetweenSlotsMinutes)
	last := end - duration

	return func(yield func(Slot) bool) {
		for t := start; t <= last; t += step {
			if hasBreak && t < breakEnd && t+duration > breakStart {
				continue
			}
			s := Slot{CourtID: courtID, Day: day, Time: t.String()}
			_, busy := taken[s.Key()]
			s.Available = !busy
			if !yield(s) {
				return
			}
		}
	}, nil
}
