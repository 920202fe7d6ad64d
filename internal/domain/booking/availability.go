package booking

import "github.com/barberflow/salon-api/internal/models"

type TimeSlot struct {
	Time        string `json:"time"`
	IsAvailable bool   `json:"is_available"`
}

// SlotTaken reports whether a non-cancelled booking already occupies the
// (barber, date, slot) triple. This is the slot-uniqueness predicate used both
// by creation and by availability reads.
func SlotTaken(bookings []models.Booking, barberID, date, slot string) bool {
	for _, b := range bookings {
		if b.BarberID == barberID &&
			b.Date == date &&
			b.TimeSlot == slot &&
			Status(b.Status) != StatusCancelled {
			return true
		}
	}
	return false
}

// Availability derives the slot grid for a barber on a date. A slot is
// unavailable when occupied by a non-cancelled booking or when the date is in
// the barber's day-off set. Pure function over the snapshot it is handed;
// nothing is cached.
func Availability(bookings []models.Booking, barber *models.Barber, date string) []TimeSlot {
	dayOff := barber.HasDayOff(date)

	out := make([]TimeSlot, 0, len(models.TimeSlots))
	for _, slot := range models.TimeSlots {
		available := !dayOff && !SlotTaken(bookings, barber.ID, date, slot)
		out = append(out, TimeSlot{Time: slot, IsAvailable: available})
	}
	return out
}
