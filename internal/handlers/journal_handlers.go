package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wrdo/hunt/internal/models"
	"github.com/wrdo/hunt/internal/services"
)

// JournalHandler handles trading-journal CRUD endpoints
type JournalHandler struct {
	journalSvc *services.JournalService
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(journalSvc *services.JournalService) *JournalHandler {
	return &JournalHandler{
		journalSvc: journalSvc,
	}
}

// Create handles POST /api/journal
// @Summary Create a journal entry
// @Tags journal
// @Accept json
// @Produce json
// @Param request body models.CreateJournalRequest true "Entry to create"
// @Success 201 {object} models.JournalEntry
// @Failure 400 {object} models.ErrorResponse
// @Router /api/journal [post]
func (h *JournalHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req models.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	entry, err := h.journalSvc.CreateEntry(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// List handles GET /api/journal
// @Summary List the user's journal entries, newest first
// @Tags journal
// @Produce json
// @Success 200 {array} models.JournalEntry
// @Router /api/journal [get]
func (h *JournalHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	entries, err := h.journalSvc.ListEntries(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Get handles GET /api/journal/:id
// @Summary Get a journal entry
// @Tags journal
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} models.JournalEntry
// @Failure 404 {object} models.ErrorResponse
// @Router /api/journal/{id} [get]
func (h *JournalHandler) Get(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	entry, err := h.journalSvc.GetEntry(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Update handles PUT /api/journal/:id
// @Summary Update a journal entry
// @Description Applies a partial update; omitted fields keep their values
// @Tags journal
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param request body models.UpdateJournalRequest true "Fields to update"
// @Success 200 {object} models.JournalEntry
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/journal/{id} [put]
func (h *JournalHandler) Update(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	var req models.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	entry, err := h.journalSvc.UpdateEntry(c.Request.Context(), id, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /api/journal/:id
// @Summary Delete a journal entry
// @Tags journal
// @Param id path int true "Entry ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /api/journal/{id} [delete]
func (h *JournalHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	if err := h.journalSvc.DeleteEntry(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func entryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid entry ID")
		return 0, false
	}
	return id, true
}
