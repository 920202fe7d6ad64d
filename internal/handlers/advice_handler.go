package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barberflow/salon-api/internal/advice"
	"github.com/barberflow/salon-api/internal/httperr"
	"github.com/barberflow/salon-api/internal/httpresp"
)

type AdviceHandler struct {
	client *advice.Client
}

func NewAdviceHandler(client *advice.Client) *AdviceHandler {
	return &AdviceHandler{client: client}
}

type AdviceRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// GetAdvice proxies the style-advice collaborator. Provider failures come
// back as the fallback text with a 200, never as an error: advice is
// cosmetic and must not disturb the booking flow.
func (h *AdviceHandler) GetAdvice(c *gin.Context) {
	var req AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	text := h.client.GetAdvice(c.Request.Context(), req.Prompt)
	httpresp.OK(c, gin.H{"advice": text})
}
