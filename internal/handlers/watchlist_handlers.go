package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wrdo/hunt/internal/models"
	"github.com/wrdo/hunt/internal/services"
)

// WatchlistHandler handles watchlist CRUD endpoints
type WatchlistHandler struct {
	watchlistSvc *services.WatchlistService
}

// NewWatchlistHandler creates a new WatchlistHandler
func NewWatchlistHandler(watchlistSvc *services.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistSvc: watchlistSvc,
	}
}

// Create handles POST /api/watchlists
// @Summary Create a watchlist
// @Tags watchlists
// @Accept json
// @Produce json
// @Param request body models.CreateWatchlistRequest true "Watchlist to create"
// @Success 201 {object} models.WatchlistWithSymbols
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/watchlists [post]
func (h *WatchlistHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req models.CreateWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	w, err := h.watchlistSvc.CreateWatchlist(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

// List handles GET /api/watchlists
// @Summary List the user's watchlists
// @Tags watchlists
// @Produce json
// @Success 200 {array} models.Watchlist
// @Router /api/watchlists [get]
func (h *WatchlistHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	lists, err := h.watchlistSvc.ListWatchlists(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

// Get handles GET /api/watchlists/:id
// @Summary Get a watchlist with symbols and quotes
// @Tags watchlists
// @Produce json
// @Param id path int true "Watchlist ID"
// @Success 200 {object} models.WatchlistWithSymbols
// @Failure 404 {object} models.ErrorResponse
// @Router /api/watchlists/{id} [get]
func (h *WatchlistHandler) Get(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := watchlistID(c)
	if !ok {
		return
	}

	w, err := h.watchlistSvc.GetWatchlist(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// Update handles PUT /api/watchlists/:id
// @Summary Rename a watchlist
// @Tags watchlists
// @Accept json
// @Produce json
// @Param id path int true "Watchlist ID"
// @Param request body models.UpdateWatchlistRequest true "New name"
// @Success 200 {object} models.Watchlist
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/watchlists/{id} [put]
func (h *WatchlistHandler) Update(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := watchlistID(c)
	if !ok {
		return
	}

	var req models.UpdateWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	w, err := h.watchlistSvc.RenameWatchlist(c.Request.Context(), id, userID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// Delete handles DELETE /api/watchlists/:id
// @Summary Delete a watchlist
// @Tags watchlists
// @Param id path int true "Watchlist ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /api/watchlists/{id} [delete]
func (h *WatchlistHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := watchlistID(c)
	if !ok {
		return
	}

	if err := h.watchlistSvc.DeleteWatchlist(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddSymbol handles POST /api/watchlists/:id/symbols
// @Summary Add a symbol to a watchlist
// @Tags watchlists
// @Accept json
// @Produce json
// @Param id path int true "Watchlist ID"
// @Param request body models.AddSymbolRequest true "Symbol to add"
// @Success 201 {object} models.WatchlistSymbol
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/watchlists/{id}/symbols [post]
func (h *WatchlistHandler) AddSymbol(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := watchlistID(c)
	if !ok {
		return
	}

	var req models.AddSymbolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	sym, err := h.watchlistSvc.AddSymbol(c.Request.Context(), id, userID, req.Symbol)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sym)
}

// RemoveSymbol handles DELETE /api/watchlists/:id/symbols/:symbol
// @Summary Remove a symbol from a watchlist
// @Tags watchlists
// @Param id path int true "Watchlist ID"
// @Param symbol path string true "Symbol to remove"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /api/watchlists/{id}/symbols/{symbol} [delete]
func (h *WatchlistHandler) RemoveSymbol(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := watchlistID(c)
	if !ok {
		return
	}

	if err := h.watchlistSvc.RemoveSymbol(c.Request.Context(), id, userID, c.Param("symbol")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func watchlistID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid watchlist ID")
		return 0, false
	}
	return id, true
}
