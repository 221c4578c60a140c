package realtime

import (
	"errors"
	"time"
)

// Errors
var (
	ErrNotConnected    = errors.New("not connected")
	ErrStaleConnection = errors.New("connection stale (no ping)")
	ErrAlreadyClosed   = errors.New("already closed")
)

// Kind identifies one of the named real-time channels.
type Kind string

const (
	KindMarketData     Kind = "marketData"
	KindTradingSignals Kind = "tradingSignals"
	KindNotifications  Kind = "notifications"
)

// Kinds returns all known channel kinds.
func Kinds() []Kind {
	return []Kind{KindMarketData, KindTradingSignals, KindNotifications}
}

// TimestampedMessage wraps raw frame data with its receive timestamp.
type TimestampedMessage struct {
	Data       []byte
	ReceivedAt time.Time
}

// Inbound is a raw frame handed from the manager to the dispatcher.
type Inbound struct {
	Kind       Kind
	Data       []byte
	ReceivedAt time.Time
}

// ClientConfig configures a single WebSocket client.
type ClientConfig struct {
	URL          string        // Full dial URL (e.g. ws://localhost:8000/ws/market-data/)
	PingInterval time.Duration // Keepalive ping cadence
	PingTimeout  time.Duration // Max silence before the connection counts as stale
	WriteTimeout time.Duration // Write deadline for sends
	BufferSize   int           // Message channel buffer size
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		PingInterval: 30 * time.Second,
		PingTimeout:  60 * time.Second,
		WriteTimeout: 5 * time.Second,
		BufferSize:   1000,
	}
}

// ManagerConfig configures the connection manager.
type ManagerConfig struct {
	ReconnectDelay       time.Duration // Fixed wait between a close and the reattempt
	MaxReconnectAttempts int           // Shared ceiling across all kinds; never reset
	PingInterval         time.Duration
	PingTimeout          time.Duration
	WriteTimeout         time.Duration
	MessageBufferSize    int // Buffer size for the outbound frame channel
}

// DefaultManagerConfig returns sensible defaults.
func DefaultManagerConfig() ManagerConfig {
	return ManagerConfig{
		ReconnectDelay:       3 * time.Second,
		MaxReconnectAttempts: 5,
		PingInterval:         30 * time.Second,
		PingTimeout:          60 * time.Second,
		WriteTimeout:         5 * time.Second,
		MessageBufferSize:    1000,
	}
}

// ManagerStats provides a point-in-time view of the manager.
type ManagerStats struct {
	ConnectedCount    int
	ReconnectAttempts int // Monotonic, shared across kinds
	FramesForwarded   int64
	FramesDropped     int64
}
