package models

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WSMessage is the envelope every WebSocket frame uses: {type, data}.
type WSMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}
