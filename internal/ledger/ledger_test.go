package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberflow/salon-api/internal/catalog"
	domain "github.com/barberflow/salon-api/internal/domain/booking"
	"github.com/barberflow/salon-api/internal/httperr"
	"github.com/barberflow/salon-api/internal/ledger"
	"github.com/barberflow/salon-api/internal/models"
	"github.com/barberflow/salon-api/internal/notify"
	"github.com/barberflow/salon-api/internal/session"
	"github.com/barberflow/salon-api/internal/state"
)

// =============================================================================
// TEST SETUP
// =============================================================================

var (
	admin    = models.Identity{ID: session.AdminUserID, Role: models.RoleAdmin}
	customer = models.Identity{ID: "u1", Role: models.RoleCustomer}
	marco    = models.Identity{ID: "b1", Role: models.RoleBarber}
)

func newTestLedger(t *testing.T) (*ledger.Ledger, *catalog.Store, *notify.Log, *state.MemoryStore) {
	t.Helper()

	st := state.NewMemoryStore()
	cat := catalog.New(context.Background(), st)
	log := notify.NewLog()
	l := ledger.New(context.Background(), st, cat, log, session.AdminUserID)

	return l, cat, log, st
}

func createInput(barberID, date, slot string) ledger.CreateInput {
	return ledger.CreateInput{
		CustomerID: "u1",
		BarberID:   barberID,
		ServiceID:  "s1",
		Date:       date,
		TimeSlot:   slot,
		Price:      35,
	}
}

// completeBooking walks a fresh booking to COMPLETED through valid
// transitions.
func completeBooking(t *testing.T, l *ledger.Ledger, id string) {
	t.Helper()
	ctx := context.Background()

	_, err := l.UpdateStatus(ctx, admin, id, domain.StatusConfirmed)
	require.NoError(t, err)
	_, err = l.UpdateStatus(ctx, admin, id, domain.StatusCompleted)
	require.NoError(t, err)
}

// =============================================================================
// SLOT UNIQUENESS
// =============================================================================

func TestCreateBooking_SlotTaken_Rejected(t *testing.T) {
	// GIVEN: a pending booking for (b1, 2024-06-01, 10:00 AM)
	// WHEN: a second booking targets the same triple
	// THEN: it is rejected and no second booking exists

	l, _, _, _ := newTestLedger(t)
	ctx := context.Background()

	first, err := l.CreateBooking(ctx, createInput("b1", "2024-06-01", "10:00 AM"))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), first.Status)

	_, err = l.CreateBooking(ctx, createInput("b1", "2024-06-01", "10:00 AM"))
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
	assert.Len(t, l.List(), 1, "rejected creation must not leave partial state")
}

func TestCreateBooking_SameSlotDifferentBarber_Allowed(t *testing.T) {
	l, _, _, _ := newTestLedger(t)
	ctx := context.Background()

	_, err := l.CreateBooking(ctx, createInput("b1", "2024-06-01", "10:00 AM"))
	require.NoError(t, err)

	_, err = l.CreateBooking(ctx, createInput("b2", "2024-06-01", "10:00 AM"))
	assert.NoError(t, err)
}

func TestCreateBooking_CancelledSlot_FreesTriple(t *testing.T) {
	// GIVEN: a booking that has been cancelled
	// WHEN: the same (barber, date, slot) is booked again
	// THEN: creation succeeds

	l, _, _, _ := newTestLedger(t)
	ctx := context.Background()

	b, err := l.CreateBooking(ctx, createInput("b1", "2024-06-02", "11:00 AM"))
	require.NoError(t, err)

	_, err = l.UpdateStatus(ctx, admin, b.ID, domain.StatusCancelled)
	require.NoError(t, err)

	_, err = l.CreateBooking(ctx, createInput("b1", "2024-06-02", "11:00 AM"))
	assert.NoError(t, err)
}

func TestCreateBooking_UnknownBarber_Rejected(t *testing.T) {
	l, _, _, _ := newTestLedger(t)

	_, err := l.CreateBooking(context.Background(), createInput("nope", "2024-06-01", "10:00 AM"))
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}

func TestCreateBooking_InvalidSlotLabel_Rejected(t *testing.T) {
	l, _, _, _ := newTestLedger(t)

	_, err := l.CreateBooking(context.Background(), createInput("b1", "2024-06-01", "10:30 AM"))
	assert.True(t, httperr.IsBusiness(err, "invalid_time_slot"))
}

// =============================================================================
// DAY-OFF EXCLUSION
// =============================================================================

func TestCreateBooking_DayOff_AllSlotsRejected(t *testing.T) {
	// GIVEN: b1 has 2024-06-03 off
	// WHEN: any slot on that date is requested
	// THEN: creation fails regardless of slot

	l, _, _, _ := newTestLedger(t)
	ctx := context.Background()

	_, err := l.ToggleDayOff(ctx, marco, "b1", "2024-06-03")
	require.NoError(t, err)

	for _, slot := range models.TimeSlots {
		_, err := l.CreateBooking(ctx, createInput("b1", "2024-06-03", slot))
		assert.True(t, httperr.IsBusiness(err, "barber_day_off"), "slot %s", slot)
	}

	// Other dates stay bookable.
	_, err = l.CreateBooking(ctx, createInput("b1", "2024-06-04", "09:00 AM"))
	assert.NoError(t, err)
}

func TestToggleDayOff_TwiceRestoresMembership(t *testing.T) {
	l, cat, _, _ := newTestLedger(t)
	ctx := context.Background()

	before, err := cat.GetBarber("b1")
	require.NoError(t, err)
	require.False(t, before.HasDayOff("2024-07-01"))

	b, err := l.ToggleDayOff(ctx, marco, "b1", "2024-07-01")
	require.NoError(t, err)
	assert.True(t, b.HasDayOff("2024-07-01"))

	b, err = l.ToggleDayOff(ctx, marco, "b1", "2024-07-01")
	require.NoError(t, err)
	assert.False(t, b.HasDayOff("2024-07-01"))
}

func TestToggleDayOff_OtherBarber_Forbidden(t *testing.T) {
	l, _, _, _ := newTestLedger(t)

	_, err := l.ToggleDayOff(context.Background(), marco, "b2", "2024-07-01")
	assert.True(t, httperr.IsBusiness(err, "forbidden"))
}

// =============================================================================
// STATUS TRANSITIONS
// =============================================================================

func TestUpdateStatus_IllegalTransitions_Rejected(t *testing.T) {
	l, _, _, _ := newTestLedger(t)
	ctx := context.Background()

	b, err := l.CreateBooking(ctx, createInput("b1", "2024-06-01", "10:00 AM"))
	require.NoError(t, err)

	// PENDING cannot jump straight to COMPLETED.
	_, err = l.UpdateStatus(ctx, admin, b.ID, domain.StatusCompleted)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

	completeBooking(t, l, b.ID)

	// COMPLETED is terminal.
	_, err = l.UpdateStatus(ctx, admin, b.ID, domain.StatusCancelled)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
}

func TestUpdateStatus_UnknownBooking_NotFound(t *testing.T) {
	l, _, _, _ := newTestLedger(t)

	_, err := l.UpdateStatus(context.Background(), admin, "bk-missing", domain.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestUpdateStatus_CustomerMayOnlyCancelOwn(t *testing.T) {
	l, _, _, _ := newTestLedger(t)
	ctx := context.Background()

	b, err := l.CreateBooking(ctx, createInput("b1", "2024-06-01", "10:00 AM"))
	require.NoError(t, err)

	_, err = l.UpdateStatus(ctx, customer, b.ID, domain.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	stranger := models.Identity{ID: "u99", Role: models.RoleCustomer}
	_, err = l.UpdateStatus(ctx, stranger, b.ID, domain.StatusCancelled)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	_, err = l.UpdateStatus(ctx, customer, b.ID, domain.StatusCancelled)
	assert.NoError(t, err)
}

// =============================================================================
// NOTIFICATIONS
// =============================================================================

func TestNotifications_CreateAndConfirmTargets(t *testing.T) {
	l, _, log, _ := newTestLedger(t)
	ctx := context.Background()

	b, err := l.CreateBooking(ctx, createInput("b1", "2024-06-01", "10:00 AM"))
	require.NoError(t, err)

	adminNotes := log.ListFor(session.AdminUserID)
	require.Len(t, adminNotes, 1)
	assert.Equal(t, models.NotificationInfo, adminNotes[0].Type)
	assert.Contains(t, adminNotes[0].Message, "2024-06-01")
	assert.Contains(t, adminNotes[0].Message, "10:00 AM")

	_, err = l.UpdateStatus(ctx, admin, b.ID, domain.StatusConfirmed)
	require.NoError(t, err)

	customerNotes := log.ListFor("u1")
	require.Len(t, customerNotes, 1)
	assert.Equal(t, models.NotificationSuccess, customerNotes[0].Type)
	assert.Contains(t, customerNotes[0].Message, "CONFIRMED")

	// No notifications on COMPLETED or CANCELLED.
	_, err = l.UpdateStatus(ctx, admin, b.ID, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Len(t, log.ListFor("u1"), 1)
}

// =============================================================================
// RATING
// =============================================================================

func TestRateBooking_AggregateMeanRoundedToOneDecimal(t *testing.T) {
	// GIVEN: b1 has two completed rated bookings {5, 4}
	// WHEN: a third completed booking is rated 5
	// THEN: b1's rating becomes round((5+4+5)/3, 1dp) = 4.7

	l, cat, _, _ := newTestLedger(t)
	ctx := context.Background()

	slots := []string{"09:00 AM", "10:00 AM", "11:00 AM"}
	ratings := []int{5, 4, 5}
	for i, slot := range slots {
		b, err := l.CreateBooking(ctx, createInput("b1", "2024-06-01", slot))
		require.NoError(t, err)
		completeBooking(t, l, b.ID)

		_, err = l.RateBooking(ctx, customer, b.ID, ratings[i])
		require.NoError(t, err)
	}

	barber, err := cat.GetBarber("b1")
	require.NoError(t, err)
	assert.Equal(t, 4.7, barber.Rating)
}

func TestRateBooking_NonCompleted_Guarded(t *testing.T) {
	l, cat, _, _ := newTestLedger(t)
	ctx := context.Background()

	original, err := cat.GetBarber("b1")
	require.NoError(t, err)

	b, err := l.CreateBooking(ctx, createInput("b1", "2024-06-01", "10:00 AM"))
	require.NoError(t, err)

	// PENDING
	_, err = l.RateBooking(ctx, customer, b.ID, 5)
	assert.True(t, httperr.IsBusiness(err, "not_completed"))

	// CONFIRMED
	_, err = l.UpdateStatus(ctx, admin, b.ID, domain.StatusConfirmed)
	require.NoError(t, err)
	_, err = l.RateBooking(ctx, customer, b.ID, 5)
	assert.True(t, httperr.IsBusiness(err, "not_completed"))

	// CANCELLED
	_, err = l.UpdateStatus(ctx, admin, b.ID, domain.StatusCancelled)
	require.NoError(t, err)
	_, err = l.RateBooking(ctx, customer, b.ID, 5)
	assert.True(t, httperr.IsBusiness(err, "not_completed"))

	got, err := l.Get(b.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Rating)

	after, err := cat.GetBarber("b1")
	require.NoError(t, err)
	assert.Equal(t, original.Rating, after.Rating, "guarded rating must not touch the aggregate")
}

func TestRateBooking_Twice_Rejected(t *testing.T) {
	l, _, _, _ := newTestLedger(t)
	ctx := context.Background()

	b, err := l.CreateBooking(ctx, createInput("b1", "2024-06-01", "10:00 AM"))
	require.NoError(t, err)
	completeBooking(t, l, b.ID)

	_, err = l.RateBooking(ctx, customer, b.ID, 5)
	require.NoError(t, err)

	_, err = l.RateBooking(ctx, customer, b.ID, 1)
	assert.True(t, httperr.IsBusiness(err, "already_rated"))
}

func TestRateBooking_OutOfRange_Rejected(t *testing.T) {
	l, _, _, _ := newTestLedger(t)
	ctx := context.Background()

	b, err := l.CreateBooking(ctx, createInput("b1", "2024-06-01", "10:00 AM"))
	require.NoError(t, err)
	completeBooking(t, l, b.ID)

	for _, r := range []int{0, 6, -1} {
		_, err = l.RateBooking(ctx, customer, b.ID, r)
		assert.True(t, httperr.IsBusiness(err, "invalid_rating"), "rating %d", r)
	}
}

// =============================================================================
// AVAILABILITY
// =============================================================================

func TestAvailability_ReflectsBookingsAndDayOffs(t *testing.T) {
	l, _, _, _ := newTestLedger(t)
	ctx := context.Background()

	_, err := l.CreateBooking(ctx, createInput("b1", "2024-06-01", "10:00 AM"))
	require.NoError(t, err)

	slots, err := l.Availability("b1", "2024-06-01")
	require.NoError(t, err)
	require.Len(t, slots, len(models.TimeSlots))

	for _, s := range slots {
		if s.Time == "10:00 AM" {
			assert.False(t, s.IsAvailable)
		} else {
			assert.True(t, s.IsAvailable, "slot %s", s.Time)
		}
	}

	// A day off blanks the whole grid.
	_, err = l.ToggleDayOff(ctx, marco, "b1", "2024-06-01")
	require.NoError(t, err)

	slots, err = l.Availability("b1", "2024-06-01")
	require.NoError(t, err)
	for _, s := range slots {
		assert.False(t, s.IsAvailable, "slot %s", s.Time)
	}
}

// =============================================================================
// PERSISTENCE MIRROR
// =============================================================================

func TestLedger_ReloadsFromStore(t *testing.T) {
	st := state.NewMemoryStore()
	ctx := context.Background()

	cat := catalog.New(ctx, st)
	l := ledger.New(ctx, st, cat, notify.NewLog(), session.AdminUserID)

	b, err := l.CreateBooking(ctx, createInput("b1", "2024-06-01", "10:00 AM"))
	require.NoError(t, err)

	// A fresh ledger over the same store sees the booking and still honors
	// slot uniqueness.
	reloaded := ledger.New(ctx, st, cat, notify.NewLog(), session.AdminUserID)
	got, err := reloaded.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	_, err = reloaded.CreateBooking(ctx, createInput("b1", "2024-06-01", "10:00 AM"))
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
}

// =============================================================================
// END TO END
// =============================================================================

func TestLedger_EndToEndScenario(t *testing.T) {
	l, cat, log, _ := newTestLedger(t)
	ctx := context.Background()

	// (1) create succeeds, status PENDING
	b1, err := l.CreateBooking(ctx, createInput("b1", "2024-06-01", "10:00 AM"))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), b1.Status)
	assert.Equal(t, 35.0, b1.TotalPrice)

	// (2) same triple fails
	_, err = l.CreateBooking(ctx, createInput("b1", "2024-06-01", "10:00 AM"))
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	// (3) confirmation notifies the customer
	_, err = l.UpdateStatus(ctx, admin, b1.ID, domain.StatusConfirmed)
	require.NoError(t, err)
	notes := log.ListFor("u1")
	require.Len(t, notes, 1)
	assert.Equal(t, models.NotificationSuccess, notes[0].Type)

	// (4) complete and rate; aggregate includes the 5
	_, err = l.UpdateStatus(ctx, admin, b1.ID, domain.StatusCompleted)
	require.NoError(t, err)
	_, err = l.RateBooking(ctx, customer, b1.ID, 5)
	require.NoError(t, err)

	barber, err := cat.GetBarber("b1")
	require.NoError(t, err)
	assert.Equal(t, 5.0, barber.Rating, "only rated booking is the 5")

	// (5) cancel a fresh booking and rebook the freed slot
	b2, err := l.CreateBooking(ctx, createInput("b1", "2024-06-02", "11:00 AM"))
	require.NoError(t, err)
	_, err = l.UpdateStatus(ctx, admin, b2.ID, domain.StatusCancelled)
	require.NoError(t, err)

	_, err = l.CreateBooking(ctx, createInput("b1", "2024-06-02", "11:00 AM"))
	assert.NoError(t, err)
}
