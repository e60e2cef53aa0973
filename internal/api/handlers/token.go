package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/price-alert-api/internal/config"
	"github.com/donaldgifford/price-alert-api/internal/csrf"
)

// TokenHandler issues anti-forgery tokens for mutating endpoints.
type TokenHandler struct {
	cfg config.SecurityConfig
	log *slog.Logger
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(cfg config.SecurityConfig, log *slog.Logger) *TokenHandler {
	return &TokenHandler{cfg: cfg, log: log}
}

// Token handles GET /csrf-token. It reuses the client's existing secret
// cookie when present so previously issued tokens stay valid, and mints a
// fresh secret otherwise.
func (h *TokenHandler) Token(c echo.Context) error {
	var secret string
	if cookie, err := c.Cookie(h.cfg.CSRFCookieName); err == nil && cookie.Value != "" {
		secret = cookie.Value
	} else {
		s, err := csrf.NewSecret()
		if err != nil {
			h.log.Error("generating csrf secret", "error", err)
			return internalError(c)
		}
		secret = s
	}

	token, err := csrf.Create(secret)
	if err != nil {
		h.log.Error("generating csrf token", "error", err)
		return internalError(c)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cfg.CSRFCookieName,
		Value:    secret,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.SecureCookie,
		SameSite: http.SameSiteStrictMode,
	})

	h.log.Info("csrf token generated", "ip", c.RealIP())

	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"csrfToken": token,
		"message": "Include this token in " + h.cfg.CSRFHeaderName +
			" header for protected requests",
		"timestamp": timestamp(),
	})
}

func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Success:   false,
		Error:     "Internal server error",
		Timestamp: timestamp(),
	})
}
