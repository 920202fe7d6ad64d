package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barberflow/salon-api/internal/httpresp"
	"github.com/barberflow/salon-api/internal/middleware"
	"github.com/barberflow/salon-api/internal/notify"
)

type NotificationHandler struct {
	log *notify.Log
}

func NewNotificationHandler(log *notify.Log) *NotificationHandler {
	return &NotificationHandler{log: log}
}

// List returns the acting user's notifications, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	actor := middleware.Identity(c)
	httpresp.List(c, h.log.ListFor(actor.ID))
}

// MarkAllRead marks the acting user's notifications as read. Other users'
// entries are never touched.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor := middleware.Identity(c)
	h.log.MarkAllRead(actor.ID)
	c.Status(204)
}
