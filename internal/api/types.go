package api

import "fmt"

// APIError represents an error response from the trading backend.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend api error %d: %s", e.StatusCode, e.Message)
}

// IsRetryable returns true if the error should trigger a retry.
func (e *APIError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// StatusResponse is the realtime status endpoint's reply.
type StatusResponse struct {
	Success       bool              `json:"success"`
	Connections   map[string]bool   `json:"connections"`    // kind → active server-side
	WebSocketURLs map[string]string `json:"websocket_urls"` // kind → relative WS URL
	Error         string            `json:"error,omitempty"`
}

// ConnectResponse is the connection negotiation endpoint's reply.
type ConnectResponse struct {
	Success      bool   `json:"success"`
	WebSocketURL string `json:"websocket_url,omitempty"` // Relative, e.g. /ws/market-data/
	Message      string `json:"message,omitempty"`
	Error        string `json:"error,omitempty"`
}

// StreamingResponse is the streaming control endpoint's reply.
type StreamingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
