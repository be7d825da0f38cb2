package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jesquared/prophealth/internal/domain/models"
	"github.com/jesquared/prophealth/internal/service/portfolio"
	"github.com/jesquared/prophealth/internal/service/session"
)

// TokenHeader carries the session token on authenticated requests.
const TokenHeader = "X-Session-Token"

// AuthHandler exposes the access-portal endpoints.
type AuthHandler struct {
	sessions  *session.Manager
	portfolio *portfolio.Service
	logger    *zap.Logger
}

// NewAuthHandler constructs the auth HTTP adapter.
func NewAuthHandler(sessions *session.Manager, portfolioSvc *portfolio.Service, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{sessions: sessions, portfolio: portfolioSvc, logger: logger}
}

// Login handles the access-portal submission and issues a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields or invalid email"})
		return
	}

	token, err := h.sessions.Login(req)
	if err != nil {
		if errors.Is(err, session.ErrAccessDenied) {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid access code"})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to start session"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token})
}

// Logout ends the session and clears the transient dashboard state; all
// portfolio data lives and dies with the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetHeader(TokenHeader)
	if err := h.sessions.Logout(token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown session"})
		return
	}

	h.portfolio.Reset()
	c.Status(http.StatusNoContent)
}

// RequireSession is the middleware guarding the dashboard routes.
func (h *AuthHandler) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if _, err := h.sessions.Validate(token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session required"})
			return
		}
		c.Next()
	}
}
