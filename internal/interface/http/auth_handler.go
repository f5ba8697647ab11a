package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmfrazier/pawtrack/internal/domain/auth"
	apperrors "github.com/jmfrazier/pawtrack/pkg/errors"
)

// AuthHandler wires registration and the two token flows to the transport.
type AuthHandler struct {
	svc    auth.Service
	logger *slog.Logger
}

// NewAuthHandler constructs the auth HTTP handler.
func NewAuthHandler(svc auth.Service, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		logger: logger.With("component", "http.auth"),
	}
}

// CreateUser handles POST /users.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	view, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		// The validator's rejection shape is part of the API contract and is
		// serialized verbatim instead of through the error envelope.
		var vErr *auth.ValidationError
		if errors.As(err, &vErr) {
			h.logger.Warn("registration rejected", "location", vErr.Location, "message", vErr.Message)
			c.JSON(http.StatusUnprocessableEntity, vErr)
			return
		}
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "internal_error", "Internal server error", err))
		return
	}

	c.JSON(http.StatusCreated, view)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case apperrors.IsCode(err, "invalid_input"):
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		case apperrors.IsCode(err, "invalid_credentials"):
			abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "invalid username or password", err))
		default:
			abortWithError(c, NewHTTPError(http.StatusInternalServerError, "internal_error", "Internal server error", err))
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Refresh handles POST /auth/refresh. The old token is presented as a bearer
// credential; the reply carries a brand-new token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing or invalid authorization header", nil))
		return
	}

	resp, err := h.svc.Refresh(c.Request.Context(), token)
	if err != nil {
		if apperrors.IsCode(err, "invalid_token") {
			abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "invalid token", err))
			return
		}
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "internal_error", "Internal server error", err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Secret is the protected demo endpoint behind the authorization gate.
func (h *AuthHandler) Secret(c *gin.Context) {
	if _, ok := getClaims(c); !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing identity", nil))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": "It's a secret to everyone!"})
}
