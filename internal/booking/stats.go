package booking

import (
	"context"
	"time"
)

const (
	StatsDays   = 7
	StatsMonths = 6
	monthLayout = "2006-01"
)

// Activity is the part of a booking the dashboard aggregates.
type Activity struct {
	CreatedAt time.Time
	Price     float64
}

type DayCount struct {
	Date     string
	Bookings int
}

type MonthRevenue struct {
	Month   string
	Revenue float64
}

// Stats feeds the dashboard charts. Both series are oldest first and have
// one entry per period, zero when nothing was booked.
type Stats struct {
	Daily   []DayCount
	Monthly []MonthRevenue
}

// statsSince is the start of the oldest month BuildStats reports on.
func statsSince(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()-(StatsMonths-1), 1, 0, 0, 0, 0, now.Location())
}

// BuildStats counts bookings made on each of the StatsDays days ending
// today and sums their price for each of the StatsMonths months ending this
// month. Periods follow now's location.
func BuildStats(now time.Time, activity []Activity) Stats {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	st := Stats{
		Daily:   make([]DayCount, StatsDays),
		Monthly: make([]MonthRevenue, StatsMonths),
	}
	dayIdx := make(map[string]int, StatsDays)
	for i := range StatsDays {
		d := today.AddDate(0, 0, i-(StatsDays-1)).Format(DateLayout)
		st.Daily[i].Date = d
		dayIdx[d] = i
	}
	monthIdx := make(map[string]int, StatsMonths)
	first := statsSince(now)
	for i := range StatsMonths {
		m := first.AddDate(0, i, 0).Format(monthLayout)
		st.Monthly[i].Month = m
		monthIdx[m] = i
	}

	for _, a := range activity {
		at := a.CreatedAt.In(loc)
		if i, ok := dayIdx[at.Format(DateLayout)]; ok {
			st.Daily[i].Bookings++
		}
		if i, ok := monthIdx[at.Format(monthLayout)]; ok {
			st.Monthly[i].Revenue += a.Price
		}
	}
	return st
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	now := s.now()
	activity, err := s.repo.ActivitySince(ctx, statsSince(now))
	if err != nil {
		return Stats{}, err
	}
	return BuildStats(now, activity), nil
}
