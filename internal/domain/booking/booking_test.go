package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/barberflow/salon-api/internal/domain/booking"
	"github.com/barberflow/salon-api/internal/httperr"
	"github.com/barberflow/salon-api/internal/models"
)

func TestCanTransition_Matrix(t *testing.T) {
	cases := []struct {
		from, to domain.Status
		ok       bool
	}{
		{domain.StatusPending, domain.StatusConfirmed, true},
		{domain.StatusPending, domain.StatusCancelled, true},
		{domain.StatusPending, domain.StatusCompleted, false},
		{domain.StatusConfirmed, domain.StatusCompleted, true},
		{domain.StatusConfirmed, domain.StatusCancelled, true},
		{domain.StatusConfirmed, domain.StatusPending, false},
		{domain.StatusCompleted, domain.StatusCancelled, false},
		{domain.StatusCompleted, domain.StatusConfirmed, false},
		{domain.StatusCancelled, domain.StatusPending, false},
		{domain.StatusCancelled, domain.StatusConfirmed, false},
	}

	for _, tc := range cases {
		err := domain.CanTransition(tc.from, tc.to)
		if tc.ok {
			assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
		} else {
			assert.True(t, httperr.IsBusiness(err, "invalid_transition"), "%s -> %s", tc.from, tc.to)
		}
	}
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	err := domain.CanTransition(domain.StatusPending, domain.Status("WAT"))
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestTerminal(t *testing.T) {
	assert.False(t, domain.StatusPending.Terminal())
	assert.False(t, domain.StatusConfirmed.Terminal())
	assert.True(t, domain.StatusCompleted.Terminal())
	assert.True(t, domain.StatusCancelled.Terminal())
}

func rated(barberID string, r int) models.Booking {
	return models.Booking{BarberID: barberID, Status: string(domain.StatusCompleted), Rating: &r}
}

func TestAggregateRating(t *testing.T) {
	bookings := []models.Booking{
		rated("b1", 5),
		rated("b1", 4),
		rated("b1", 5),
		rated("b2", 1),                      // other barber, ignored
		{BarberID: "b1", Status: "PENDING"}, // unrated, ignored
	}

	agg, ok := domain.AggregateRating(bookings, "b1")
	assert.True(t, ok)
	assert.Equal(t, 4.7, agg)

	_, ok = domain.AggregateRating(bookings, "b3")
	assert.False(t, ok, "no ratings means no aggregate")
}

func TestSlotTaken_IgnoresCancelled(t *testing.T) {
	bookings := []models.Booking{
		{BarberID: "b1", Date: "2024-06-01", TimeSlot: "10:00 AM", Status: string(domain.StatusCancelled)},
	}

	assert.False(t, domain.SlotTaken(bookings, "b1", "2024-06-01", "10:00 AM"))

	bookings = append(bookings, models.Booking{
		BarberID: "b1", Date: "2024-06-01", TimeSlot: "10:00 AM", Status: string(domain.StatusPending),
	})
	assert.True(t, domain.SlotTaken(bookings, "b1", "2024-06-01", "10:00 AM"))
}

func TestAvailability_DayOffBlanksGrid(t *testing.T) {
	barber := &models.Barber{ID: "b1", OffDays: []string{"2024-06-03"}, Active: true}

	slots := domain.Availability(nil, barber, "2024-06-03")
	assert.Len(t, slots, len(models.TimeSlots))
	for _, s := range slots {
		assert.False(t, s.IsAvailable)
	}

	slots = domain.Availability(nil, barber, "2024-06-04")
	for _, s := range slots {
		assert.True(t, s.IsAvailable)
	}
}
