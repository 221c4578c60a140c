package config

import "time"

// DashboardConfig is the root configuration for a dashboard client instance.
type DashboardConfig struct {
	Server        ServerConfig        `yaml:"server"`
	Connections   ConnectionsConfig   `yaml:"connections"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Status        StatusConfig        `yaml:"status"`
	Dispatch      DispatchConfig      `yaml:"dispatch"`
}

// ServerConfig holds trading backend endpoint settings.
type ServerConfig struct {
	BaseURL       string        `yaml:"base_url"`       // e.g. http://localhost:8000
	StatusPath    string        `yaml:"status_path"`    // GET realtime status
	ConnectPath   string        `yaml:"connect_path"`   // POST connection negotiation
	StreamingPath string        `yaml:"streaming_path"` // POST streaming control
	CSRFToken     string        `yaml:"csrf_token"`     // Explicit token; takes precedence over the cookie
	CSRFCookie    string        `yaml:"csrf_cookie"`    // Cookie name to fall back to
	Timeout       time.Duration `yaml:"timeout"`
	MaxRetries    int           `yaml:"max_retries"`
}

// ConnectionsConfig holds WebSocket connection manager settings.
type ConnectionsConfig struct {
	ReconnectDelay       time.Duration `yaml:"reconnect_delay"`
	MaxReconnectAttempts int           `yaml:"max_reconnect_attempts"` // Shared across all channels
	PingInterval         time.Duration `yaml:"ping_interval"`
	PingTimeout          time.Duration `yaml:"ping_timeout"`
	WriteTimeout         time.Duration `yaml:"write_timeout"`
	MessageBufferSize    int           `yaml:"message_buffer_size"`
}

// NotificationsConfig holds toast notification settings.
type NotificationsConfig struct {
	TTL        time.Duration `yaml:"ttl"`         // Auto-dismiss timeout
	BufferSize int           `yaml:"buffer_size"` // Initial event buffer capacity
}

// StatusConfig holds backend status poller settings.
type StatusConfig struct {
	PollInterval time.Duration `yaml:"poll_interval"`
}

// DispatchConfig holds message dispatcher settings.
type DispatchConfig struct {
	BufferSize int `yaml:"buffer_size"`
}
