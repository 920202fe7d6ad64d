package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/barberflow/salon-api/internal/catalog"
	domain "github.com/barberflow/salon-api/internal/domain/booking"
	"github.com/barberflow/salon-api/internal/httperr"
	"github.com/barberflow/salon-api/internal/models"
	"github.com/barberflow/salon-api/internal/state"
)

// Notifier receives the user-facing messages the ledger emits on status
// transitions.
type Notifier interface {
	Add(userID, message string, typ models.NotificationType)
}

// Ledger owns the booking set. It is the only writer of booking status and
// booking ratings, and holds a narrow grant to rewrite a barber's aggregate
// rating through the catalog.
//
// All mutations run under one mutex so the slot check-then-act sequence is a
// single serialized unit.
type Ledger struct {
	mu       sync.RWMutex
	store    state.Store
	catalog  *catalog.Store
	notifier Notifier

	// adminID is the identity that receives new-booking notifications.
	adminID string

	bookings []models.Booking
}

func New(ctx context.Context, st state.Store, cat *catalog.Store, notifier Notifier, adminID string) *Ledger {
	l := &Ledger{
		store:    st,
		catalog:  cat,
		notifier: notifier,
		adminID:  adminID,
	}

	if !state.LoadJSON(ctx, st, state.KeyBookings, &l.bookings) {
		l.bookings = []models.Booking{}
	}

	return l
}

func (l *Ledger) persist(ctx context.Context) {
	state.SaveJSON(ctx, l.store, state.KeyBookings, l.bookings)
}

// ======================================================
// CREATE
// ======================================================

type CreateInput struct {
	CustomerID string
	BarberID   string
	ServiceID  string
	Date       string
	TimeSlot   string
	Price      float64
}

// CreateBooking validates the slot-uniqueness and day-off invariants and
// appends a PENDING booking. All-or-nothing: a rejection leaves no partial
// state behind.
func (l *Ledger) CreateBooking(ctx context.Context, in CreateInput) (models.Booking, error) {
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return models.Booking{}, httperr.ErrBusiness("invalid_date")
	}
	if !models.IsTimeSlot(in.TimeSlot) {
		return models.Booking{}, httperr.ErrBusiness("invalid_time_slot")
	}

	barber, err := l.catalog.GetBarber(in.BarberID)
	if err != nil || !barber.Active {
		return models.Booking{}, httperr.ErrBusiness("barber_not_found")
	}
	if barber.HasDayOff(in.Date) {
		return models.Booking{}, httperr.ErrBusiness("barber_day_off")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if domain.SlotTaken(l.bookings, in.BarberID, in.Date, in.TimeSlot) {
		return models.Booking{}, httperr.ErrBusiness("slot_taken")
	}

	b := models.Booking{
		ID:         "bk-" + uuid.NewString(),
		CustomerID: in.CustomerID,
		BarberID:   in.BarberID,
		ServiceID:  in.ServiceID,
		Date:       in.Date,
		TimeSlot:   in.TimeSlot,
		Status:     string(domain.InitialStatus()),
		TotalPrice: in.Price,
		CreatedAt:  time.Now().UTC(),
	}

	l.bookings = append(l.bookings, b)
	l.persist(ctx)

	l.notifier.Add(
		l.adminID,
		"New booking for "+in.Date+" at "+in.TimeSlot,
		models.NotificationInfo,
	)

	return b, nil
}

// ======================================================
// STATUS
// ======================================================

// UpdateStatus applies a validated status transition. Confirmation notifies
// the booking's customer.
func (l *Ledger) UpdateStatus(ctx context.Context, actor models.Identity, id string, newStatus domain.Status) (models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return models.Booking{}, httperr.ErrBusiness("booking_not_found")
	}
	b := &l.bookings[idx]

	if err := l.authorizeTransition(actor, b, newStatus); err != nil {
		return models.Booking{}, err
	}
	if err := domain.CanTransition(domain.Status(b.Status), newStatus); err != nil {
		return models.Booking{}, err
	}

	b.Status = string(newStatus)
	l.persist(ctx)

	if newStatus == domain.StatusConfirmed {
		l.notifier.Add(
			b.CustomerID,
			"Your booking for "+b.TimeSlot+" on "+b.Date+" is CONFIRMED!",
			models.NotificationSuccess,
		)
	}

	return *b, nil
}

func (l *Ledger) authorizeTransition(actor models.Identity, b *models.Booking, to domain.Status) error {
	switch actor.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleBarber:
		if b.BarberID != actor.ID {
			return httperr.ErrBusiness("forbidden")
		}
		return nil
	case models.RoleCustomer:
		// Customers may only cancel, and only their own bookings.
		if b.CustomerID != actor.ID || to != domain.StatusCancelled {
			return httperr.ErrBusiness("forbidden")
		}
		return nil
	}
	return httperr.ErrBusiness("forbidden")
}

// ======================================================
// RATING
// ======================================================

// RateBooking records a customer rating on a completed booking and rewrites
// the barber's aggregate. Rating is a one-way transition: a booking that
// already carries one rejects further ratings.
func (l *Ledger) RateBooking(ctx context.Context, actor models.Identity, id string, rating int) (models.Booking, error) {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return models.Booking{}, httperr.ErrBusiness("invalid_rating")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return models.Booking{}, httperr.ErrBusiness("booking_not_found")
	}
	b := &l.bookings[idx]

	if actor.Role == models.RoleCustomer && b.CustomerID != actor.ID {
		return models.Booking{}, httperr.ErrBusiness("forbidden")
	}
	if domain.Status(b.Status) != domain.StatusCompleted {
		return models.Booking{}, httperr.ErrBusiness("not_completed")
	}
	if b.Rating != nil {
		return models.Booking{}, httperr.ErrBusiness("already_rated")
	}

	r := rating
	b.Rating = &r
	l.persist(ctx)

	if agg, ok := domain.AggregateRating(l.bookings, b.BarberID); ok {
		if err := l.catalog.SetBarberRating(ctx, b.BarberID, agg); err != nil {
			// Barber removed from the roster; the booking keeps its rating.
			return *b, nil
		}
	}

	return *b, nil
}

// ======================================================
// DAY OFF
// ======================================================

// ToggleDayOff flips a barber's day-off membership for date. Admins may
// toggle any barber; barbers only themselves.
func (l *Ledger) ToggleDayOff(ctx context.Context, actor models.Identity, barberID, date string) (models.Barber, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return models.Barber{}, httperr.ErrBusiness("invalid_date")
	}
	if actor.Role != models.RoleAdmin && actor.ID != barberID {
		return models.Barber{}, httperr.ErrBusiness("forbidden")
	}

	return l.catalog.ToggleDayOff(ctx, barberID, date)
}

// ======================================================
// READS
// ======================================================

// Availability derives the slot grid for a barber on a date. Recomputed on
// every call from current state.
func (l *Ledger) Availability(barberID, date string) ([]domain.TimeSlot, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	barber, err := l.catalog.GetBarber(barberID)
	if err != nil || !barber.Active {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	return domain.Availability(l.bookings, &barber, date), nil
}

func (l *Ledger) Get(id string) (models.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if idx := l.indexOf(id); idx >= 0 {
		return l.bookings[idx], nil
	}
	return models.Booking{}, httperr.ErrBusiness("booking_not_found")
}

func (l *Ledger) List() []models.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}

func (l *Ledger) ListByCustomer(customerID string) []models.Booking {
	return l.filter(func(b models.Booking) bool { return b.CustomerID == customerID })
}

func (l *Ledger) ListByBarber(barberID string) []models.Booking {
	return l.filter(func(b models.Booking) bool { return b.BarberID == barberID })
}

func (l *Ledger) filter(keep func(models.Booking) bool) []models.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Booking, 0)
	for _, b := range l.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

func (l *Ledger) indexOf(id string) int {
	for i := range l.bookings {
		if l.bookings[i].ID == id {
			return i
		}
	}
	return -1
}
