package models

import "time"

// Booking references catalog records by id only. TotalPrice is a snapshot of
// the service price at creation time and never changes afterwards.
type Booking struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	BarberID   string    `json:"barber_id"`
	ServiceID  string    `json:"service_id"`
	Date       string    `json:"date"`      // YYYY-MM-DD
	TimeSlot   string    `json:"time_slot"` // one of TimeSlots
	Status     string    `json:"status"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
	Rating     *int      `json:"rating,omitempty"`
}

// TimeSlots is the fixed set of bookable time labels. A booking's TimeSlot is
// always one of these.
var TimeSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM",
	"05:00 PM", "06:00 PM",
}

// IsTimeSlot reports whether label is a member of TimeSlots.
func IsTimeSlot(label string) bool {
	for _, s := range TimeSlots {
		if s == label {
			return true
		}
	}
	return false
}
