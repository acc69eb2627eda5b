package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"lg/fitcalc-api/internal/profile"
)

// getProfile returns the active profile.
// GET /api/profile. 404 when none has been saved; the client should send the
// user to data entry.
func (h *Handler) getProfile(c *gin.Context) {
	p, ok := h.engine.Profile()
	if !ok {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

// getProfileDefaults returns the values the data-entry form starts from.
// GET /api/profile/defaults.
func (h *Handler) getProfileDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, profile.Default())
}

// putProfile replaces the whole profile. There is no partial update: fields
// missing from the body are saved as their zero value and then fail
// validation where that matters.
// PUT /api/profile.
func (h *Handler) putProfile(c *gin.Context) {
	var body profile.Profile
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Allergies == nil {
		body.Allergies = []string{}
	}

	if fields := profile.Validate(body); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile", "fields": fields})
		return
	}

	if err := h.engine.SetProfile(c.Request.Context(), body); err != nil {
		log.Error().Err(err).Msg("save profile")
		apiError(c, http.StatusInternalServerError, "failed to save profile")
		return
	}

	c.JSON(http.StatusOK, body)
}

// deleteProfile removes the profile. Deleting when none exists is a no-op.
// DELETE /api/profile. Returns 204.
func (h *Handler) deleteProfile(c *gin.Context) {
	if err := h.engine.ClearProfile(c.Request.Context()); err != nil {
		log.Error().Err(err).Msg("clear profile")
		apiError(c, http.StatusInternalServerError, "failed to clear profile")
		return
	}
	c.Status(http.StatusNoContent)
}
