package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barberflow/salon-api/internal/audit"
	"github.com/barberflow/salon-api/internal/catalog"
	"github.com/barberflow/salon-api/internal/httperr"
	"github.com/barberflow/salon-api/internal/httpresp"
	"github.com/barberflow/salon-api/internal/ledger"
	"github.com/barberflow/salon-api/internal/middleware"
	"github.com/barberflow/salon-api/internal/models"
	"github.com/barberflow/salon-api/internal/validators"
)

type BarberHandler struct {
	catalog *catalog.Store
	ledger  *ledger.Ledger
	audit   *audit.Dispatcher
}

func NewBarberHandler(cat *catalog.Store, l *ledger.Ledger, a *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{catalog: cat, ledger: l, audit: a}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Avatar      string   `json:"avatar"`
	Specialties []string `json:"specialties"`
}

type UpdateProfileRequest struct {
	Name        *string   `json:"name,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Avatar      *string   `json:"avatar,omitempty"`
	Specialties *[]string `json:"specialties,omitempty"`
	Earnings    *float64  `json:"earnings,omitempty"`
}

type ToggleDayOffRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	httpresp.List(c, h.catalog.ListBarbers())
}

func (h *BarberHandler) Create(c *gin.Context) {
	actor := middleware.Identity(c)

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	b, err := h.catalog.AddBarber(c.Request.Context(), catalog.BarberInput{
		Name:        req.Name,
		Email:       req.Email,
		Avatar:      req.Avatar,
		Specialties: req.Specialties,
	})
	if err != nil {
		httperr.From(c, err, "Unable to add barber.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actor.ID,
		Action:   "barber_added",
		Entity:   "barber",
		EntityID: b.ID,
	})

	httpresp.Created(c, b)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	actor := middleware.Identity(c)
	id := c.Param("id")

	if err := h.catalog.DeleteBarber(c.Request.Context(), id); err != nil {
		httperr.From(c, err, "Unable to remove barber.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actor.ID,
		Action:   "barber_removed",
		Entity:   "barber",
		EntityID: id,
	})

	c.Status(204)
}

// UpdateProfile merges a partial update into the acting barber's own roster
// record. Admins may edit any barber via the id param.
func (h *BarberHandler) UpdateProfile(c *gin.Context) {
	actor := middleware.Identity(c)

	targetID := c.Param("id")
	if targetID == "" {
		targetID = actor.ID
	}
	if actor.Role != models.RoleAdmin && targetID != actor.ID {
		httperr.Forbidden(c, "forbidden", "You may only edit your own profile.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	// Earnings are an admin-maintained roster field.
	if req.Earnings != nil && actor.Role != models.RoleAdmin {
		httperr.Forbidden(c, "forbidden", "Earnings are managed by the administrator.")
		return
	}

	if req.Email != nil && !validators.IsEmailDomainValid(*req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	b, err := h.catalog.UpdateProfile(c.Request.Context(), targetID, catalog.ProfileUpdate{
		Name:        req.Name,
		Email:       req.Email,
		Avatar:      req.Avatar,
		Specialties: req.Specialties,
		Earnings:    req.Earnings,
	})
	if err != nil {
		httperr.From(c, err, "Unable to update profile.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actor.ID,
		Action:   "profile_updated",
		Entity:   "barber",
		EntityID: b.ID,
	})

	httpresp.OK(c, b)
}

// ToggleDayOff flips the barber's availability for a calendar date. The
// response carries the updated record so the client can refresh its cached
// session profile.
func (h *BarberHandler) ToggleDayOff(c *gin.Context) {
	actor := middleware.Identity(c)
	barberID := c.Param("id")

	var req ToggleDayOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.ledger.ToggleDayOff(c.Request.Context(), actor, barberID, req.Date)
	if err != nil {
		httperr.From(c, err, "Unable to toggle day off.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actor.ID,
		Action:   "day_off_toggled",
		Entity:   "barber",
		EntityID: b.ID,
		Metadata: map[string]any{"date": req.Date},
	})

	httpresp.OK(c, b)
}
