package booking

import (
	"math"

	"github.com/barberflow/salon-api/internal/models"
)

// MinRating and MaxRating bound a customer rating on a completed booking.
const (
	MinRating = 1
	MaxRating = 5
)

// AggregateRating computes a barber's rating as the arithmetic mean of every
// rating given across their bookings, rounded to one decimal place. Returns
// ok=false when no booking for the barber carries a rating.
func AggregateRating(bookings []models.Booking, barberID string) (float64, bool) {
	var sum, count float64
	for _, b := range bookings {
		if b.BarberID != barberID || b.Rating == nil {
			continue
		}
		sum += float64(*b.Rating)
		count++
	}
	if count == 0 {
		return 0, false
	}
	return math.Round(sum/count*10) / 10, true
}
