package main

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// authEnabled reports whether a password hash was configured.
func (h *Handler) authEnabled() bool {
	return len(h.passwordHash) > 0
}

// login verifies the password and returns the session token.
// POST /api/login (public, no auth required).
func (h *Handler) login(c *gin.Context) {
	if !h.authEnabled() {
		apiError(c, http.StatusNotFound, "authentication is not enabled")
		return
	}

	var body struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(body.Password)); err != nil {
		log.Warn().Str("ip", c.ClientIP()).Msg("failed login")
		apiError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": h.token})
}

// authMiddleware validates the Bearer token. It lets every request through
// when auth is disabled.
func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.authEnabled() {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apiError(c, http.StatusUnauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		if subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) != 1 {
			apiError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Next()
	}
}
