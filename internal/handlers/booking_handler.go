package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barberflow/salon-api/internal/audit"
	"github.com/barberflow/salon-api/internal/catalog"
	domain "github.com/barberflow/salon-api/internal/domain/booking"
	"github.com/barberflow/salon-api/internal/httperr"
	"github.com/barberflow/salon-api/internal/httpresp"
	"github.com/barberflow/salon-api/internal/ledger"
	"github.com/barberflow/salon-api/internal/middleware"
	"github.com/barberflow/salon-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	ledger  *ledger.Ledger
	catalog *catalog.Store
	audit   *audit.Dispatcher
}

func NewBookingHandler(l *ledger.Ledger, cat *catalog.Store, a *audit.Dispatcher) *BookingHandler {
	return &BookingHandler{ledger: l, catalog: cat, audit: a}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarberID  string `json:"barber_id" binding:"required"`
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`      // YYYY-MM-DD
	TimeSlot  string `json:"time_slot" binding:"required"` // e.g. "10:00 AM"
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RateBookingRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	actor := middleware.Identity(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	// Price is snapshotted from the catalog at booking time, never taken
	// from the client.
	svc, err := h.catalog.GetService(req.ServiceID)
	if err != nil || !svc.Active {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	b, err := h.ledger.CreateBooking(c.Request.Context(), ledger.CreateInput{
		CustomerID: actor.ID,
		BarberID:   req.BarberID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		TimeSlot:   req.TimeSlot,
		Price:      svc.Price,
	})
	if err != nil {
		httperr.From(c, err, "Unable to create booking.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actor.ID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
	})

	httpresp.Created(c, b)
}

// ======================================================
// LIST (role-scoped)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	actor := middleware.Identity(c)

	var out []models.Booking
	switch actor.Role {
	case models.RoleAdmin:
		out = h.ledger.List()
	case models.RoleBarber:
		out = h.ledger.ListByBarber(actor.ID)
	default:
		out = h.ledger.ListByCustomer(actor.ID)
	}

	httpresp.List(c, out)
}

func (h *BookingHandler) Get(c *gin.Context) {
	actor := middleware.Identity(c)

	b, err := h.ledger.Get(c.Param("id"))
	if err != nil {
		httperr.From(c, err, "Booking not found.")
		return
	}

	if actor.Role != models.RoleAdmin && b.CustomerID != actor.ID && b.BarberID != actor.ID {
		httperr.Forbidden(c, "forbidden", "Not your booking.")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	actor := middleware.Identity(c)
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.ledger.UpdateStatus(c.Request.Context(), actor, id, domain.Status(req.Status))
	if err != nil {
		httperr.From(c, err, "Unable to update booking status.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actor.ID,
		Action:   "booking_status_" + req.Status,
		Entity:   "booking",
		EntityID: b.ID,
	})

	httpresp.OK(c, b)
}

// ======================================================
// RATING
// ======================================================

func (h *BookingHandler) Rate(c *gin.Context) {
	actor := middleware.Identity(c)
	id := c.Param("id")

	var req RateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.ledger.RateBooking(c.Request.Context(), actor, id, req.Rating)
	if err != nil {
		httperr.From(c, err, "Unable to rate booking.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actor.ID,
		Action:   "booking_rated",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]any{"rating": req.Rating},
	})

	httpresp.OK(c, b)
}

// ======================================================
// AVAILABILITY (public, drives the booking wizard)
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	barberID := c.Query("barber_id")
	date := c.Query("date")

	if barberID == "" || date == "" {
		httperr.BadRequest(c, "missing_params", "barber_id and date are required.")
		return
	}

	slots, err := h.ledger.Availability(barberID, date)
	if err != nil {
		httperr.From(c, err, "Unable to compute availability.")
		return
	}

	httpresp.OK(c, gin.H{
		"barber_id": barberID,
		"date":      date,
		"slots":     slots,
	})
}
