package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/barberflow/salon-api/internal/httperr"
	"github.com/barberflow/salon-api/internal/models"
	"github.com/barberflow/salon-api/internal/state"
)

// Store owns the service catalog and the staff roster. Deletions are soft:
// records flip to inactive so historical bookings keep resolving their
// references. Every mutation is mirrored to the durable store.
type Store struct {
	mu       sync.RWMutex
	store    state.Store
	services []models.Service
	barbers  []models.Barber
}

func New(ctx context.Context, st state.Store) *Store {
	c := &Store{store: st}

	if !state.LoadJSON(ctx, st, state.KeyServices, &c.services) {
		c.services = seedServices()
	}
	if !state.LoadJSON(ctx, st, state.KeyBarbers, &c.barbers) {
		c.barbers = seedBarbers()
	}

	return c
}

func (c *Store) persistServices(ctx context.Context) {
	state.SaveJSON(ctx, c.store, state.KeyServices, c.services)
}

func (c *Store) persistBarbers(ctx context.Context) {
	state.SaveJSON(ctx, c.store, state.KeyBarbers, c.barbers)
}

// ======================================================
// SERVICES
// ======================================================

// ListServices returns active services only.
func (c *Store) ListServices() []models.Service {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Service, 0, len(c.services))
	for _, s := range c.services {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}

// GetService resolves by id, tombstones included, so booking references never
// dangle.
func (c *Store) GetService(id string) (models.Service, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, s := range c.services {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Service{}, httperr.ErrBusiness("service_not_found")
}

type ServiceInput struct {
	Name        string
	Description string
	Price       float64
	DurationMin int
	Icon        string
}

func (c *Store) AddService(ctx context.Context, in ServiceInput) (models.Service, error) {
	if in.Name == "" || in.Price <= 0 || in.DurationMin <= 0 {
		return models.Service{}, httperr.ErrBusiness("invalid_service")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	svc := models.Service{
		ID:          "s-" + uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		DurationMin: in.DurationMin,
		Icon:        in.Icon,
		Active:      true,
	}
	c.services = append(c.services, svc)
	c.persistServices(ctx)

	return svc, nil
}

type ServiceUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	DurationMin *int
	Icon        *string
}

func (c *Store) UpdateService(ctx context.Context, id string, up ServiceUpdate) (models.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.services {
		if c.services[i].ID != id || !c.services[i].Active {
			continue
		}

		s := &c.services[i]
		if up.Name != nil {
			s.Name = *up.Name
		}
		if up.Description != nil {
			s.Description = *up.Description
		}
		if up.Price != nil {
			if *up.Price <= 0 {
				return models.Service{}, httperr.ErrBusiness("invalid_service")
			}
			s.Price = *up.Price
		}
		if up.DurationMin != nil {
			if *up.DurationMin <= 0 {
				return models.Service{}, httperr.ErrBusiness("invalid_service")
			}
			s.DurationMin = *up.DurationMin
		}
		if up.Icon != nil {
			s.Icon = *up.Icon
		}

		c.persistServices(ctx)
		return *s, nil
	}

	return models.Service{}, httperr.ErrBusiness("service_not_found")
}

// DeleteService tombstones the record. Bookings that already reference it
// keep a resolvable, labeled entry instead of a dangling id.
func (c *Store) DeleteService(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.services {
		if c.services[i].ID == id && c.services[i].Active {
			c.services[i].Active = false
			c.persistServices(ctx)
			return nil
		}
	}
	return httperr.ErrBusiness("service_not_found")
}

// ======================================================
// STAFF ROSTER
// ======================================================

func (c *Store) ListBarbers() []models.Barber {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Barber, 0, len(c.barbers))
	for _, b := range c.barbers {
		if b.Active {
			out = append(out, b)
		}
	}
	return out
}

func (c *Store) GetBarber(id string) (models.Barber, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, b := range c.barbers {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Barber{}, httperr.ErrBusiness("barber_not_found")
}

type BarberInput struct {
	Name        string
	Email       string
	Avatar      string
	Specialties []string
}

// AddBarber creates a staff record with the roster defaults: rating 5.0,
// zero earnings, empty day-off set.
func (c *Store) AddBarber(ctx context.Context, in BarberInput) (models.Barber, error) {
	if in.Name == "" || in.Email == "" {
		return models.Barber{}, httperr.ErrBusiness("invalid_barber")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	b := models.Barber{
		ID:          "b-" + uuid.NewString(),
		Name:        in.Name,
		Email:       in.Email,
		Avatar:      in.Avatar,
		Rating:      5.0,
		Specialties: in.Specialties,
		Earnings:    0,
		OffDays:     []string{},
		Active:      true,
	}
	if b.Specialties == nil {
		b.Specialties = []string{}
	}

	c.barbers = append(c.barbers, b)
	c.persistBarbers(ctx)

	return b, nil
}

func (c *Store) DeleteBarber(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.barbers {
		if c.barbers[i].ID == id && c.barbers[i].Active {
			c.barbers[i].Active = false
			c.persistBarbers(ctx)
			return nil
		}
	}
	return httperr.ErrBusiness("barber_not_found")
}

type ProfileUpdate struct {
	Name        *string
	Email       *string
	Avatar      *string
	Specialties *[]string
	Earnings    *float64
}

// UpdateProfile merges a partial update into a staff record, keeping the
// roster's view of the entity consistent with the session's.
func (c *Store) UpdateProfile(ctx context.Context, barberID string, up ProfileUpdate) (models.Barber, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.barbers {
		if c.barbers[i].ID != barberID || !c.barbers[i].Active {
			continue
		}

		b := &c.barbers[i]
		if up.Name != nil {
			b.Name = *up.Name
		}
		if up.Email != nil {
			b.Email = *up.Email
		}
		if up.Avatar != nil {
			b.Avatar = *up.Avatar
		}
		if up.Specialties != nil {
			b.Specialties = *up.Specialties
		}
		if up.Earnings != nil {
			if *up.Earnings < 0 {
				return models.Barber{}, httperr.ErrBusiness("invalid_barber")
			}
			b.Earnings = *up.Earnings
		}

		c.persistBarbers(ctx)
		return *b, nil
	}

	return models.Barber{}, httperr.ErrBusiness("barber_not_found")
}

// SetBarberRating is the ledger's narrow write grant into the roster: the
// rating field and nothing else.
func (c *Store) SetBarberRating(ctx context.Context, barberID string, rating float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.barbers {
		if c.barbers[i].ID == barberID {
			c.barbers[i].Rating = rating
			c.persistBarbers(ctx)
			return nil
		}
	}
	return httperr.ErrBusiness("barber_not_found")
}

// ToggleDayOff flips membership of date in the barber's day-off set and
// returns the updated record.
func (c *Store) ToggleDayOff(ctx context.Context, barberID, date string) (models.Barber, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.barbers {
		if c.barbers[i].ID != barberID || !c.barbers[i].Active {
			continue
		}

		b := &c.barbers[i]
		removed := false
		for j, d := range b.OffDays {
			if d == date {
				b.OffDays = append(b.OffDays[:j], b.OffDays[j+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			b.OffDays = append(b.OffDays, date)
		}

		c.persistBarbers(ctx)
		return *b, nil
	}

	return models.Barber{}, httperr.ErrBusiness("barber_not_found")
}
