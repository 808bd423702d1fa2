package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wrdo/hunt/internal/models"
	"github.com/wrdo/hunt/internal/services"
)

// SettingsHandler handles per-user preference endpoints
type SettingsHandler struct {
	settingsSvc *services.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsSvc *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsSvc: settingsSvc,
	}
}

// Get handles GET /api/settings
// @Summary Get the user's dashboard preferences
// @Description Returns saved preferences, or the defaults if none were saved
// @Tags settings
// @Produce json
// @Success 200 {object} models.Settings
// @Router /api/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	settings, err := h.settingsSvc.GetSettings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Update handles PUT /api/settings
// @Summary Update the user's dashboard preferences
// @Description Applies a partial update; omitted fields keep their values
// @Tags settings
// @Accept json
// @Produce json
// @Param request body models.UpdateSettingsRequest true "Fields to update"
// @Success 200 {object} models.Settings
// @Failure 400 {object} models.ErrorResponse
// @Router /api/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	settings, err := h.settingsSvc.UpdateSettings(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
