package http

import (
	"time"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/booking"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/request"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/schedule"
)

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	CourtID string `form:"court_id" binding:"omitempty,uuid"`
	Day     string `form:"day"`
	Phone   string `form:"whatsapp"`
}

// AvailabilityRequest selects the day either by weekday label or by date.
type AvailabilityRequest struct {
	Day  string `form:"day"`
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// Validate performs custom validation for AvailabilityRequest.
func (r *AvailabilityRequest) Validate() error {
	if r.Day == "" && r.Date == "" {
		return errDayRequired
	}
	return nil
}

// ResolveDay returns the weekday label the request refers to.
func (r *AvailabilityRequest) ResolveDay() string {
	if r.Day != "" {
		return r.Day
	}
	d, _ := time.Parse(booking.DateLayout, r.Date)
	return schedule.DayOf(d)
}

type CourtTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID        string    `json:"id"`
	Court     CourtTag  `json:"court"`
	Day       string    `json:"day"`
	Time      string    `json:"time"`
	UserName  string    `json:"user_name"`
	WhatsApp  string    `json:"whatsapp"`
	Email     string    `json:"email,omitempty"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

func NewResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID: b.ID,
		Court: CourtTag{
			ID:   b.CourtID,
			Name: b.CourtName,
		},
		Day:       b.Day,
		Time:      b.Time,
		UserName:  b.CustomerName,
		WhatsApp:  b.Phone,
		Email:     b.Email,
		Price:     b.Price,
		CreatedAt: b.CreatedAt,
	}
}

// CreateBookingRequest mirrors the booking form. Field rules are applied by
// the booking validator so every problem is reported at once.
type CreateBookingRequest struct {
	CourtID  string  `json:"court_id"`
	Day      string  `json:"day"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	UserName string  `json:"user_name"`
	WhatsApp string  `json:"whatsapp"`
	Email    string  `json:"email"`
	Price    float64 `json:"price"`
}

func (r *CreateBookingRequest) toService() booking.CreateRequest {
	return booking.CreateRequest{
		CourtID:      r.CourtID,
		Day:          r.Day,
		Date:         r.Date,
		Time:         r.Time,
		CustomerName: r.UserName,
		Phone:        r.WhatsApp,
		Email:        r.Email,
		Price:        r.Price,
	}
}

type AvailabilityResponse struct {
	CourtID string          `json:"court_id"`
	Day     string          `json:"day"`
	Slots   []schedule.Slot `json:"slots"`
}

type DayCountResponse struct {
	Date     string `json:"date"`
	Bookings int    `json:"bookings"`
}

type MonthRevenueResponse struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type StatsResponse struct {
	Daily   []DayCountResponse     `json:"daily"`
	Monthly []MonthRevenueResponse `json:"monthly"`
}

func NewStatsResponse(st booking.Stats) StatsResponse {
	resp := StatsResponse{
		Daily:   make([]DayCountResponse, len(st.Daily)),
		Monthly: make([]MonthRevenueResponse, len(st.Monthly)),
	}
	for i, d := range st.Daily {
		resp.Daily[i] = DayCountResponse{Date: d.Date, Bookings: d.Bookings}
	}
	for i, m := range st.Monthly {
		resp.Monthly[i] = MonthRevenueResponse{Month: m.Month, Revenue: m.Revenue}
	}
	return resp
}
