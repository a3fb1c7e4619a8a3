package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-sessiongate/sessiongate/internal/auth"
	"github.com/go-sessiongate/sessiongate/internal/config"
	"github.com/go-sessiongate/sessiongate/internal/core"
	"github.com/go-sessiongate/sessiongate/internal/directory"
	"github.com/go-sessiongate/sessiongate/internal/metrics"

	"github.com/gin-gonic/gin"
)

// External rate limit messages, matching the limiter class that fired.
const (
	originBlockedMessage  = "Too many requests from your network."
	accountBlockedMessage = "Too many login attempts for this account."
)

// AuthHandler owns the session cookie boundary: it feeds credentials
// to the auth provider and translates results into HTTP responses and
// cookie writes.
type AuthHandler struct {
	provider core.AuthProvider
	config   *config.Config
	metrics  metrics.Recorder
}

// NewAuthHandler creates the auth endpoint handler set.
func NewAuthHandler(p core.AuthProvider, cfg *config.Config, m metrics.Recorder) *AuthHandler {
	return &AuthHandler{
		provider: p,
		config:   cfg,
		metrics:  m,
	}
}

type loginRequest struct {
	Email string `json:"email"`
	Pass  string `json:"pass"`
}

// Login handles POST /api/login.
// 200 {ok:true} + session cookie, 401 {message}, or 429 {error} with a
// Retry-After header.
func (h *AuthHandler) Login(c *gin.Context) {
	log.Printf("[http] Login endpoint hit")

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	result, err := h.provider.Login(c.Request.Context(), req.Email, req.Pass, c.ClientIP())
	if err != nil {
		if errors.Is(err, auth.ErrEmptyPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": auth.InvalidCredentialsMessage})
			return
		}
		// Configuration or dependency failure; the generic message
		// leaks nothing about the cause.
		log.Printf("[http] Login failed with internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	switch result.Status {
	case core.LoginBlockedOrigin:
		h.tooManyRequests(c, originBlockedMessage, result.RetryAfterSeconds)
	case core.LoginBlockedAccount:
		h.tooManyRequests(c, accountBlockedMessage, result.RetryAfterSeconds)
	case core.LoginSucceeded:
		h.setSessionCookie(c, result.Token.TokenString)
	default:
		c.JSON(http.StatusUnauthorized, gin.H{"message": auth.InvalidCredentialsMessage})
	}
}

// Logout handles POST /api/logout. The session cookie is always
// cleared on success; without an existing session the call reports 401
// and leaves nothing to clear.
func (h *AuthHandler) Logout(c *gin.Context) {
	log.Printf("[http] Starting sequence to log out user")

	tokenString, _ := c.Cookie(h.config.SessionCookieName)
	if !h.provider.IsAuthenticated(c.Request.Context(), tokenString) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	h.clearSessionCookie(c)
	h.metrics.RecordLogout()
	log.Printf("[http] Logged out user")
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me handles GET /api/me: resolves the current session to its account
// with the credential hash redacted.
func (h *AuthHandler) Me(c *gin.Context) {
	tokenString, _ := c.Cookie(h.config.SessionCookieName)
	if !h.provider.IsAuthenticated(c.Request.Context(), tokenString) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	user, err := h.provider.CurrentUser(c.Request.Context(), tokenString)
	if err != nil {
		if errors.Is(err, directory.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) tooManyRequests(c *gin.Context, message string, retryAfter int) {
	c.Header("Retry-After", strconv.Itoa(retryAfter))
	c.JSON(http.StatusTooManyRequests, gin.H{"error": message})
}

// setSessionCookie stores the token with the attributes that keep it
// script-inaccessible and bounded to the token lifetime: HttpOnly,
// Secure in production, SameSite=Strict, path-scoped, max-age matching
// expiry.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		h.config.SessionCookieName,
		token,
		int(h.config.SessionLifetime.Seconds()),
		"/",
		"",
		h.config.IsProduction,
		true,
	)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// clearSessionCookie overwrites the cookie with an empty, immediately
// expired value.
func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.config.SessionCookieName, "", -1, "/", "", h.config.IsProduction, true)
}
