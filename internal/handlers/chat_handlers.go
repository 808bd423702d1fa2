package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wrdo/hunt/internal/models"
	"github.com/wrdo/hunt/internal/services"
)

// ChatHandler handles AI-chat session and message endpoints
type ChatHandler struct {
	chatSvc *services.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatSvc *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatSvc: chatSvc,
	}
}

// CreateSession handles POST /api/chat/sessions
// @Summary Start a chat session
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.CreateChatSessionRequest true "Session title"
// @Success 201 {object} models.ChatSession
// @Failure 400 {object} models.ErrorResponse
// @Router /api/chat/sessions [post]
func (h *ChatHandler) CreateSession(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req models.CreateChatSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	session, err := h.chatSvc.CreateSession(c.Request.Context(), userID, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// ListSessions handles GET /api/chat/sessions
// @Summary List the user's chat sessions
// @Tags chat
// @Produce json
// @Success 200 {array} models.ChatSession
// @Router /api/chat/sessions [get]
func (h *ChatHandler) ListSessions(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	sessions, err := h.chatSvc.ListSessions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetSession handles GET /api/chat/sessions/:id
// @Summary Get a chat session
// @Tags chat
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.ChatSession
// @Failure 404 {object} models.ErrorResponse
// @Router /api/chat/sessions/{id} [get]
func (h *ChatHandler) GetSession(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	session, err := h.chatSvc.GetSession(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// DeleteSession handles DELETE /api/chat/sessions/:id
// @Summary Delete a chat session and its messages
// @Tags chat
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /api/chat/sessions/{id} [delete]
func (h *ChatHandler) DeleteSession(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.chatSvc.DeleteSession(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetMessages handles GET /api/chat/sessions/:id/messages
// @Summary Get a session's messages in order
// @Tags chat
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {array} models.ChatMessage
// @Failure 404 {object} models.ErrorResponse
// @Router /api/chat/sessions/{id}/messages [get]
func (h *ChatHandler) GetMessages(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	messages, err := h.chatSvc.GetMessages(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// PostMessage handles POST /api/chat/sessions/:id/messages
// @Summary Send a message and get the analyst reply
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.PostChatMessageRequest true "Message content"
// @Success 201 {object} models.PostChatMessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/chat/sessions/{id}/messages [post]
func (h *ChatHandler) PostMessage(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req models.PostChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.chatSvc.PostMessage(c.Request.Context(), c.Param("id"), userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
