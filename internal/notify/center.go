package notify

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// entry pairs a live notification with its expiry timer so dismissal and
// teardown can cancel it.
type entry struct {
	n     Notification
	timer *time.Timer
}

// Center owns all live notifications.
type Center struct {
	cfg    Config
	logger *slog.Logger

	mu     sync.Mutex
	active map[uuid.UUID]*entry
	closed bool

	events *Ring[Event]
}

// NewCenter creates a notification center.
func NewCenter(cfg Config, logger *slog.Logger) *Center {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultConfig().TTL
	}
	if cfg.BufferSize < 1 {
		cfg.BufferSize = DefaultConfig().BufferSize
	}

	return &Center{
		cfg:    cfg,
		logger: logger,
		active: make(map[uuid.UUID]*entry),
		events: NewRing[Event](cfg.BufferSize),
	}
}

// Push shows a notification and schedules its expiry. Returns the stored
// notification, zero-valued if the center is already closed.
func (c *Center) Push(title, msg string, severity Severity, category string) Notification {
	n := Notification{
		ID:        uuid.New(),
		Title:     title,
		Message:   msg,
		Severity:  severity,
		Category:  category,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Notification{}
	}

	e := &entry{n: n}
	e.timer = time.AfterFunc(c.cfg.TTL, func() { c.remove(n.ID, EventExpired) })
	c.active[n.ID] = e
	c.mu.Unlock()

	c.events.Push(Event{Kind: EventShown, Notification: n})

	c.logger.Debug("notification shown",
		"id", n.ID,
		"severity", severity,
		"title", title,
	)

	return n
}

// Dismiss removes a notification immediately. Safe to call after the
// notification already expired or was dismissed.
func (c *Center) Dismiss(id uuid.UUID) {
	c.remove(id, EventDismissed)
}

// remove takes a notification out of the active set. Expiry and dismissal
// race here; whichever arrives second finds nothing and does nothing.
func (c *Center) remove(id uuid.UUID, kind EventKind) {
	c.mu.Lock()
	e, ok := c.active[id]
	if ok {
		delete(c.active, id)
	}
	c.mu.Unlock()

	if !ok {
		return
	}

	e.timer.Stop()
	c.events.Push(Event{Kind: kind, Notification: e.n})
}

// Active returns live notifications, oldest first.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, 0, len(c.active))
	for _, e := range c.active {
		out = append(out, e.n)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Events returns the observer ring of lifecycle events.
func (c *Center) Events() *Ring[Event] {
	return c.events
}

// Close cancels every outstanding expiry timer and closes the event ring.
func (c *Center) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	for id, e := range c.active {
		e.timer.Stop()
		delete(c.active, id)
	}
	c.mu.Unlock()

	c.events.Close()
	c.logger.Debug("notification center closed")
}
