package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberflow/salon-api/internal/audit"
	"github.com/barberflow/salon-api/internal/httpresp"
)

type AuditLogsHandler struct {
	logger *audit.Logger
}

func NewAuditLogsHandler(logger *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	httpresp.List(c, h.logger.List(limit))
}
