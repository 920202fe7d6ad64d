package session

import (
	"github.com/barberflow/salon-api/internal/catalog"
	"github.com/barberflow/salon-api/internal/httperr"
	"github.com/barberflow/salon-api/internal/models"
)

// AdminUserID is the fixed administrator identity. The ledger targets it
// with new-booking notifications.
const AdminUserID = "admin-1"

// Provider is the mock identity provider: login by role hands back a fixed
// identity (admin, customer) or promotes the first active staff record.
// A real deployment swaps this for credentialed authentication; the rest of
// the system only needs the resulting userId and role.
type Provider struct {
	catalog *catalog.Store
}

func NewProvider(cat *catalog.Store) *Provider {
	return &Provider{catalog: cat}
}

func (p *Provider) Login(role models.Role) (models.Identity, error) {
	switch role {
	case models.RoleAdmin:
		return models.Identity{
			ID:     AdminUserID,
			Name:   "Salon Owner",
			Email:  "admin@yoursbeauty.com",
			Role:   models.RoleAdmin,
			Avatar: "https://picsum.photos/seed/admin/200",
		}, nil

	case models.RoleCustomer:
		return models.Identity{
			ID:     "u1",
			Name:   "Alex Customer",
			Email:  "alex@example.com",
			Role:   models.RoleCustomer,
			Avatar: "https://picsum.photos/seed/customer/200",
		}, nil

	case models.RoleBarber:
		barbers := p.catalog.ListBarbers()
		if len(barbers) == 0 {
			return models.Identity{}, httperr.ErrBusiness("barber_not_found")
		}
		b := barbers[0]
		return models.Identity{
			ID:     b.ID,
			Name:   b.Name,
			Email:  b.Email,
			Role:   models.RoleBarber,
			Avatar: b.Avatar,
		}, nil
	}

	return models.Identity{}, httperr.ErrBusiness("invalid_role")
}
