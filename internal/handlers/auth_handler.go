package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/barberflow/salon-api/internal/config"
	"github.com/barberflow/salon-api/internal/httperr"
	"github.com/barberflow/salon-api/internal/httpresp"
	"github.com/barberflow/salon-api/internal/middleware"
	"github.com/barberflow/salon-api/internal/models"
	"github.com/barberflow/salon-api/internal/session"
)

type AuthHandler struct {
	provider *session.Provider
	config   *config.Config
}

func NewAuthHandler(provider *session.Provider, cfg *config.Config) *AuthHandler {
	return &AuthHandler{provider: provider, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Role models.Role `json:"role" binding:"required"`
}

// --------- Handlers ---------

// Login hands out a mock identity for the requested role plus a signed
// token. There are no credentials; this is the stand-in identity provider.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	identity, err := h.provider.Login(req.Role)
	if err != nil {
		httperr.From(c, err, "Unable to log in with that role.")
		return
	}

	token, err := h.generateToken(identity)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Unable to issue session token.")
		return
	}

	httpresp.OK(c, gin.H{
		"user":  identity,
		"token": token,
	})
}

// Me returns the acting identity as recorded in the token.
func (h *AuthHandler) Me(c *gin.Context) {
	httpresp.OK(c, middleware.Identity(c))
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(identity models.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":  identity.ID,
		"name": identity.Name,
		"role": string(identity.Role),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
