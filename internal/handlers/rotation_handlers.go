package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wrdo/hunt/internal/models"
	"github.com/wrdo/hunt/internal/services"
)

// RotationHandler handles rotation-lab config and backtest endpoints
type RotationHandler struct {
	rotationSvc *services.RotationService
}

// NewRotationHandler creates a new RotationHandler
func NewRotationHandler(rotationSvc *services.RotationService) *RotationHandler {
	return &RotationHandler{
		rotationSvc: rotationSvc,
	}
}

// GetConfig handles GET /api/rotation/config
// @Summary Get the user's rotation parameters
// @Description Returns saved parameters, or the defaults if none were saved
// @Tags rotation
// @Produce json
// @Success 200 {object} models.RotationConfig
// @Router /api/rotation/config [get]
func (h *RotationHandler) GetConfig(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	cfg, err := h.rotationSvc.GetConfig(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// SaveConfig handles PUT /api/rotation/config
// @Summary Save rotation parameters
// @Tags rotation
// @Accept json
// @Produce json
// @Param request body models.UpdateRotationConfigRequest true "Parameters to save"
// @Success 200 {object} models.RotationConfig
// @Failure 400 {object} models.ErrorResponse
// @Router /api/rotation/config [put]
func (h *RotationHandler) SaveConfig(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req models.UpdateRotationConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	cfg, err := h.rotationSvc.SaveConfig(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// RunBacktest handles POST /api/rotation/backtests
// @Summary Run a rotation backtest
// @Description Runs the SMA-crossover rotation over the ETF universe and persists the result
// @Tags rotation
// @Accept json
// @Produce json
// @Param request body models.UpdateRotationConfigRequest true "Parameters for this run"
// @Success 201 {object} models.BacktestResult
// @Failure 400 {object} models.ErrorResponse
// @Router /api/rotation/backtests [post]
func (h *RotationHandler) RunBacktest(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req models.UpdateRotationConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	result, err := h.rotationSvc.RunBacktest(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ListBacktests handles GET /api/rotation/backtests
// @Summary List the user's backtest history
// @Description Equity curves are omitted; fetch a single run for the full series
// @Tags rotation
// @Produce json
// @Success 200 {array} models.BacktestResult
// @Router /api/rotation/backtests [get]
func (h *RotationHandler) ListBacktests(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	runs, err := h.rotationSvc.ListBacktests(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, runs)
}

// GetBacktest handles GET /api/rotation/backtests/:id
// @Summary Get one backtest run with its equity curve
// @Tags rotation
// @Produce json
// @Param id path string true "Backtest ID"
// @Success 200 {object} models.BacktestResult
// @Failure 404 {object} models.ErrorResponse
// @Router /api/rotation/backtests/{id} [get]
func (h *RotationHandler) GetBacktest(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	result, err := h.rotationSvc.GetBacktest(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
