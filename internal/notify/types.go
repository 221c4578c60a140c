package notify

import (
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notification for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is one toast. It exists only between Push and expiry/dismissal.
type Notification struct {
	ID        uuid.UUID
	Title     string
	Message   string
	Severity  Severity
	Category  string // Optional tag, display styling only
	CreatedAt time.Time
}

// EventKind describes a notification lifecycle transition.
type EventKind string

const (
	EventShown     EventKind = "shown"
	EventExpired   EventKind = "expired"
	EventDismissed EventKind = "dismissed"
)

// Event is delivered to observers on every lifecycle transition.
type Event struct {
	Kind         EventKind
	Notification Notification
}

// Config holds notification center settings.
type Config struct {
	TTL        time.Duration // Auto-dismiss timeout
	BufferSize int           // Initial event ring capacity
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		TTL:        5 * time.Second,
		BufferSize: 64,
	}
}
