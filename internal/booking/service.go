package booking

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/court"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/customer"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/notification"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/validation"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/schedule"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/settings"
)

const DateLayout = "2006-01-02"

// CreateRequest is a candidate booking. Day may be left empty when Date
// (YYYY-MM-DD) is given; Price defaults to the court price.
type CreateRequest struct {
	CourtID      string
	Day          string
	Date         string
	Time         string
	CustomerName string
	Phone        string
	Email        string
	Price        float64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	// Validate runs every booking rule without storing anything.
	Validate(ctx context.Context, req CreateRequest) (validation.Result, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Cancel(ctx context.Context, id string) error
	Availability(ctx context.Context, courtID, day string) ([]schedule.Slot, error)
	// Stats aggregates recent bookings for the dashboard.
	Stats(ctx context.Context) (Stats, error)
}

type CourtCatalog interface {
	GetByID(ctx context.Context, id string) (*court.Court, error)
	All(ctx context.Context) ([]*court.Court, error)
}

type HoursSource interface {
	Get(ctx context.Context) (*settings.Settings, error)
}

type CustomerRegistry interface {
	EnsureByPhone(ctx context.Context, req customer.CreateRequest) (*customer.Customer, error)
}

type Notifier interface {
	Create(ctx context.Context, kind notification.Kind, message string) (*notification.Notification, error)
}

type Recorder interface {
	BookingCreated()
	BookingCancelled()
	BookingConflict()
	BookingRejected()
}

type nopRecorder struct{}

func (nopRecorder) BookingCreated()   {}
func (nopRecorder) BookingCancelled() {}
func (nopRecorder) BookingConflict()  {}
func (nopRecorder) BookingRejected()  {}

// Dependencies wires the booking service. Customers, Notifier, Recorder and
// Logger are optional; Gate defaults to an in-process gate.
type Dependencies struct {
	Repo      Repository
	Courts    CourtCatalog
	Hours     HoursSource
	Customers CustomerRegistry
	Notifier  Notifier
	Gate      Gate
	Recorder  Recorder
	Logger    *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

type service struct {
	repo      Repository
	courts    CourtCatalog
	hours     HoursSource
	customers CustomerRegistry
	notifier  Notifier
	gate      Gate
	recorder  Recorder
	log       *zap.Logger
	now       func() time.Time
}

func NewService(deps Dependencies) Service {
	s := &service{
		repo:      deps.Repo,
		courts:    deps.Courts,
		hours:     deps.Hours,
		customers: deps.Customers,
		notifier:  deps.Notifier,
		gate:      deps.Gate,
		recorder:  deps.Recorder,
		log:       deps.Logger,
		now:       deps.Now,
	}
	if s.gate == nil {
		s.gate = NewLocalGate()
	}
	if s.recorder == nil {
		s.recorder = nopRecorder{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	req, ct, res, err := s.check(ctx, req)
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		s.recorder.BookingRejected()
		if res.Has(validation.CodeSlotAlreadyBooked) {
			s.recorder.BookingConflict()
		}
		return nil, validation.NewError(res)
	}

	open, err := s.slotOpen(ctx, req)
	if err != nil {
		return nil, err
	}
	if !open {
		s.recorder.BookingRejected()
		return nil, ErrSlotOutsideHours
	}

	b := &Booking{
		CourtID:      ct.ID,
		CourtName:    ct.Name,
		Day:          req.Day,
		Time:         req.Time,
		CustomerName: strings.TrimSpace(req.CustomerName),
		Phone:        validation.NormalizePhone(req.Phone),
		Email:        strings.TrimSpace(req.Email),
		Price:        req.Price,
	}
	if err := s.insert(ctx, b); err != nil {
		if errors.Is(err, ErrSlotAlreadyBooked) {
			s.recorder.BookingConflict()
		}
		return nil, err
	}

	s.recorder.BookingCreated()
	s.log.Info("booking created",
		zap.String("booking_id", b.ID),
		zap.String("court_id", b.CourtID),
		zap.String("day", b.Day),
		zap.String("time", b.Time),
	)

	s.afterCreate(ctx, b)
	return b, nil
}

// insert stores b while holding the gate for its court and day, re-checking
// the slot under the gate. The storage unique index backs this up across
// processes that do not share the gate.
func (s *service) insert(ctx context.Context, b *Booking) error {
	release, err := s.gate.Acquire(ctx, GateKey(b.CourtID, b.Day))
	if err != nil {
		return fmt.Errorf("acquire booking gate: %w", err)
	}
	defer release()

	taken, err := s.repo.ExistsAt(ctx, b.Key())
	if err != nil {
		return err
	}
	if taken {
		return ErrSlotAlreadyBooked
	}
	return s.repo.Create(ctx, b)
}

// afterCreate registers the customer and notifies staff. Failures are logged
// and never undo the booking.
func (s *service) afterCreate(ctx context.Context, b *Booking) {
	if s.customers != nil {
		_, err := s.customers.EnsureByPhone(ctx, customer.CreateRequest{
			Name:  b.CustomerName,
			Phone: b.Phone,
			Email: b.Email,
		})
		if err != nil {
			s.log.Warn("register booking customer failed", zap.String("booking_id", b.ID), zap.Error(err))
		}
	}

	s.notify(ctx, notification.KindBookingCreated,
		fmt.Sprintf("New booking: %s, %s at %s for %s", b.CourtName, b.Day, b.Time, b.CustomerName))
}

func (s *service) notify(ctx context.Context, kind notification.Kind, msg string) {
	if s.notifier == nil {
		return
	}
	if _, err := s.notifier.Create(ctx, kind, msg); err != nil {
		s.log.Warn("create notification failed", zap.String("kind", string(kind)), zap.Error(err))
	}
}

func (s *service) Validate(ctx context.Context, req CreateRequest) (validation.Result, error) {
	_, _, res, err := s.check(ctx, req)
	return res, err
}

// check normalizes req and runs ValidateBooking against the court catalog
// and the bookings already held on that court and day. ct is nil when the
// court is unknown.
func (s *service) check(ctx context.Context, req CreateRequest) (CreateRequest, *court.Court, validation.Result, error) {
	req.CourtID = strings.TrimSpace(req.CourtID)
	req.Day = strings.TrimSpace(req.Day)
	req.Time = strings.TrimSpace(req.Time)
	req.Date = strings.TrimSpace(req.Date)

	// A date fills in a missing day; when both are sent they must agree.
	var dateProblem string
	if req.Date != "" {
		d, err := time.Parse(DateLayout, req.Date)
		switch {
		case err != nil:
			dateProblem = "date must be YYYY-MM-DD"
		case req.Day == "":
			req.Day = schedule.DayOf(d)
		case req.Day != schedule.DayOf(d):
			dateProblem = fmt.Sprintf("date %s falls on %s, not %s", req.Date, schedule.DayOf(d), req.Day)
		}
	}

	catalog, err := s.courts.All(ctx)
	if err != nil {
		return req, nil, validation.Result{}, err
	}
	if catalog == nil {
		catalog = []*court.Court{}
	}

	var ct *court.Court
	for _, c := range catalog {
		if c.ID == req.CourtID {
			ct = c
			break
		}
	}
	if ct != nil && req.Price == 0 {
		req.Price = ct.Price
	}

	var existing []*Booking
	if ct != nil && schedule.IsValidDay(req.Day) {
		existing, err = s.repo.ListForDay(ctx, ct.ID, req.Day)
		if err != nil {
			return req, nil, validation.Result{}, err
		}
	}

	res := ValidateBooking(req, existing, catalog)
	if dateProblem != "" {
		var c validation.Collector
		c.Merge("", res)
		c.Add(validation.CodeInvalidDay, "date", dateProblem)
		res = c.Result()
	}
	return req, ct, res, nil
}

// slotOpen reports whether req.Time is one of the slots the operating hours
// produce for the court and day.
func (s *service) slotOpen(ctx context.Context, req CreateRequest) (bool, error) {
	cfg, err := s.operatingHours(ctx)
	if err != nil {
		return false, err
	}
	slots, err := schedule.GenerateSlots(req.CourtID, req.Day, cfg, nil)
	if err != nil {
		s.log.Warn("operating hours cannot produce slots", zap.Error(err))
		return false, nil
	}
	for slot := range slots {
		if slot.Time == req.Time {
			return true, nil
		}
	}
	return false, nil
}

// operatingHours returns nil when the club has not configured its hours yet.
func (s *service) operatingHours(ctx context.Context) (*schedule.Config, error) {
	st, err := s.hours.Get(ctx)
	if errors.Is(err, settings.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st.Hours, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	if filter.Phone != "" {
		filter.Phone = validation.NormalizePhone(filter.Phone)
	}
	return s.repo.List(ctx, filter)
}

func (s *service) Cancel(ctx context.Context, id string) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.BookingCancelled()
	s.log.Info("booking cancelled", zap.String("booking_id", id), zap.String("court_id", b.CourtID))
	s.notify(ctx, notification.KindBookingCancelled,
		fmt.Sprintf("Booking cancelled: %s, %s at %s for %s", b.CourtName, b.Day, b.Time, b.CustomerName))
	return nil
}

// Availability lists every slot of the court on day, marking booked ones.
// Unconfigured or unusable hours and unknown days yield no slots.
func (s *service) Availability(ctx context.Context, courtID, day string) ([]schedule.Slot, error) {
	if _, err := s.courts.GetByID(ctx, courtID); err != nil {
		if errors.Is(err, court.ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	if !schedule.IsValidDay(day) {
		return []schedule.Slot{}, nil
	}

	cfg, err := s.operatingHours(ctx)
	if err != nil {
		return nil, err
	}
	booked, err := s.repo.ListForDay(ctx, courtID, day)
	if err != nil {
		return nil, err
	}

	slots, err := schedule.GenerateSlots(courtID, day, cfg, Keys(booked))
	if err != nil {
		s.log.Warn("operating hours cannot produce slots", zap.String("court_id", courtID), zap.Error(err))
		return []schedule.Slot{}, nil
	}

	out := slices.Collect(slots)
	if out == nil {
		out = []schedule.Slot{}
	}
	return out, nil
}
