package models

// Role determines which operations an identity may perform.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleBarber   Role = "BARBER"
	RoleAdmin    Role = "ADMIN"
)

// Identity is the actor attached to every mutating request. It is issued by
// the (mock) identity provider and carried in the JWT.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar"`
}

// Barber is a staff record in the roster. OffDays holds ISO dates
// (YYYY-MM-DD) on which the barber cannot be booked.
type Barber struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Avatar      string   `json:"avatar"`
	Rating      float64  `json:"rating"`
	Specialties []string `json:"specialties"`
	Earnings    float64  `json:"earnings"`
	OffDays     []string `json:"off_days"`
	Active      bool     `json:"active"`
}

// HasDayOff reports whether date is in the barber's day-off set.
func (b *Barber) HasDayOff(date string) bool {
	for _, d := range b.OffDays {
		if d == date {
			return true
		}
	}
	return false
}
