package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStats(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2026, 10, 16, 10, 0, 0, 0, saoPaulo)

	activity := []Activity{
		{CreatedAt: time.Date(2026, 10, 16, 9, 0, 0, 0, saoPaulo), Price: 120},
		{CreatedAt: time.Date(2026, 10, 16, 8, 0, 0, 0, saoPaulo), Price: 100},
		// 01:30 UTC on the 11th is still the 10th in BRT.
		{CreatedAt: time.Date(2026, 10, 11, 1, 30, 0, 0, time.UTC), Price: 80},
		{CreatedAt: time.Date(2026, 10, 9, 23, 0, 0, 0, saoPaulo), Price: 50},
		{CreatedAt: time.Date(2026, 5, 31, 12, 0, 0, 0, saoPaulo), Price: 200},
		{CreatedAt: time.Date(2026, 4, 30, 12, 0, 0, 0, saoPaulo), Price: 999},
	}

	st := BuildStats(now, activity)

	assert.Equal(t, []DayCount{
		{Date: "2026-10-10", Bookings: 1},
		{Date: "2026-10-11", Bookings: 0},
		{Date: "2026-10-12", Bookings: 0},
		{Date: "2026-10-13", Bookings: 0},
		{Date: "2026-10-14", Bookings: 0},
		{Date: "2026-10-15", Bookings: 0},
		{Date: "2026-10-16", Bookings: 2},
	}, st.Daily)

	assert.Equal(t, []MonthRevenue{
		{Month: "2026-05", Revenue: 200},
		{Month: "2026-06", Revenue: 0},
		{Month: "2026-07", Revenue: 0},
		{Month: "2026-08", Revenue: 0},
		{Month: "2026-09", Revenue: 0},
		{Month: "2026-10", Revenue: 350},
	}, st.Monthly)
}

func TestBuildStats_YearBoundary(t *testing.T) {
	now := time.Date(2027, 2, 3, 12, 0, 0, 0, time.UTC)
	st := BuildStats(now, nil)

	require.Len(t, st.Monthly, StatsMonths)
	assert.Equal(t, "2026-09", st.Monthly[0].Month)
	assert.Equal(t, "2027-02", st.Monthly[StatsMonths-1].Month)
	assert.Equal(t, "2027-01-28", st.Daily[0].Date)
	assert.Equal(t, "2027-02-03", st.Daily[StatsDays-1].Date)
}

func TestServiceStats(t *testing.T) {
	now := time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC)
	repo := newMemRepo(true)
	repo.bookings["old"] = &Booking{ID: "old", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Price: 500}
	repo.bookings["recent"] = &Booking{ID: "recent", CreatedAt: now.Add(-time.Hour), Price: 120}

	svc := NewService(Dependencies{Repo: repo, Now: func() time.Time { return now }})
	st, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, st.Daily[StatsDays-1].Bookings)
	assert.Equal(t, 120.0, st.Monthly[StatsMonths-1].Revenue)

	var total float64
	for _, m := range st.Monthly {
		total += m.Revenue
	}
	assert.Equal(t, 120.0, total)
}
