package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barberflow/salon-api/internal/audit"
	"github.com/barberflow/salon-api/internal/catalog"
	"github.com/barberflow/salon-api/internal/httperr"
	"github.com/barberflow/salon-api/internal/httpresp"
	"github.com/barberflow/salon-api/internal/middleware"
)

type ServiceHandler struct {
	catalog *catalog.Store
	audit   *audit.Dispatcher
}

func NewServiceHandler(cat *catalog.Store, a *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{catalog: cat, audit: a}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
	Icon        string  `json:"icon"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	Icon        *string  `json:"icon,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	httpresp.List(c, h.catalog.ListServices())
}

func (h *ServiceHandler) Create(c *gin.Context) {
	actor := middleware.Identity(c)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	svc, err := h.catalog.AddService(c.Request.Context(), catalog.ServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Icon:        req.Icon,
	})
	if err != nil {
		httperr.From(c, err, "Unable to create service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actor.ID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: svc.ID,
	})

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	actor := middleware.Identity(c)
	id := c.Param("id")

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	svc, err := h.catalog.UpdateService(c.Request.Context(), id, catalog.ServiceUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Icon:        req.Icon,
	})
	if err != nil {
		httperr.From(c, err, "Unable to update service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actor.ID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: svc.ID,
	})

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	actor := middleware.Identity(c)
	id := c.Param("id")

	if err := h.catalog.DeleteService(c.Request.Context(), id); err != nil {
		httperr.From(c, err, "Unable to delete service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actor.ID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: id,
	})

	c.Status(204)
}
