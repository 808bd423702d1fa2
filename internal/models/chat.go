package models

import "time"

// ChatRole identifies who authored a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatSession is one AI-chat conversation thread.
type ChatSession struct {
	ID        string    `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatMessage is a single message within a session.
type ChatMessage struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateChatSessionRequest represents the request body for starting a session
type CreateChatSessionRequest struct {
	Title string `json:"title"`
}

// PostChatMessageRequest represents the request body for sending a message
type PostChatMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// PostChatMessageResponse returns the stored user message and the reply.
type PostChatMessageResponse struct {
	Message ChatMessage `json:"message"`
	Reply   ChatMessage `json:"reply"`
}
