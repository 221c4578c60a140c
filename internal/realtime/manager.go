package realtime

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/shajishali/trading-dashboard/internal/api"
	"github.com/shajishali/trading-dashboard/internal/dashboard"
	"github.com/shajishali/trading-dashboard/internal/notify"
)

// connState holds one live connection. Replacing a kind's connection closes
// the previous state and stops its read loop.
type connState struct {
	kind    Kind
	client  Client
	stopped chan struct{}
}

// Manager owns the named WebSocket connections and the reconnect policy.
//
// The retry budget is one shared counter across all kinds, never reset by a
// successful reconnection. One channel burning through the budget starves the
// others; that coarse fleet-wide circuit breaking is the intended policy here.
type Manager struct {
	cfg     ManagerConfig
	backend *api.Client
	view    *dashboard.View
	toasts  *notify.Center
	logger  *slog.Logger

	mu         sync.Mutex
	conns      map[Kind]*connState
	timers     map[Kind]*time.Timer // Pending reconnects, invalidated on Close
	reconnects int
	closed     bool

	inbound   chan Inbound
	forwarded atomic.Int64
	dropped   atomic.Int64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewManager creates a connection manager.
func NewManager(cfg ManagerConfig, backend *api.Client, view *dashboard.View, toasts *notify.Center, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		cfg:     cfg,
		backend: backend,
		view:    view,
		toasts:  toasts,
		logger:  logger,
		conns:   make(map[Kind]*connState),
		timers:  make(map[Kind]*time.Timer),
		inbound: make(chan Inbound, cfg.MessageBufferSize),
	}
}

// Start queries the backend's realtime status and establishes every kind it
// reports active. Per-kind establishment failures are toasted and logged but
// do not fail Start; a failed status query does.
func (m *Manager) Start(ctx context.Context) error {
	m.ctx, m.cancel = context.WithCancel(ctx)

	status, err := m.backend.GetRealtimeStatus(m.ctx)
	if err != nil {
		m.toasts.Push("Connection Error", "Failed to query realtime status", notify.SeverityError, "connection")
		return fmt.Errorf("realtime status: %w", err)
	}

	for kind, wsURL := range status.WebSocketURLs {
		m.view.SetWebSocketURL(kind, wsURL)
	}

	active := 0
	for kind, isActive := range status.Connections {
		if !isActive {
			continue
		}
		active++
		if err := m.Establish(m.ctx, Kind(kind)); err != nil {
			m.logger.Warn("failed to establish connection", "kind", kind, "error", err)
		}
	}

	m.logger.Info("connection manager started", "active_kinds", active)

	return nil
}

// Establish negotiates a connection for the kind over HTTP and dials the
// WebSocket URL the backend hands back. The kind is not validated locally; an
// unrecognized kind is sent through and fails server-side.
func (m *Manager) Establish(ctx context.Context, kind Kind) error {
	resp, err := m.backend.NegotiateConnection(ctx, string(kind))
	if err != nil {
		m.logger.Error("connection negotiation failed", "kind", kind, "error", err)
		m.toasts.Push("Connection Error",
			fmt.Sprintf("Failed to establish %s connection", kind),
			notify.SeverityError, "connection")
		return err
	}

	clientCfg := ClientConfig{
		URL:          dialWSURL(m.backend.BaseURL(), resp.WebSocketURL),
		PingInterval: m.cfg.PingInterval,
		PingTimeout:  m.cfg.PingTimeout,
		WriteTimeout: m.cfg.WriteTimeout,
		BufferSize:   m.cfg.MessageBufferSize,
	}

	cl := NewClient(clientCfg, m.logger.With("kind", kind))
	if err := cl.Connect(ctx); err != nil {
		m.logger.Error("websocket dial failed", "kind", kind, "url", clientCfg.URL, "error", err)
		m.toasts.Push("Connection Error",
			fmt.Sprintf("Failed to establish %s connection", kind),
			notify.SeverityError, "connection")
		return err
	}

	conn := &connState{kind: kind, client: cl, stopped: make(chan struct{})}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		cl.Close()
		return ErrAlreadyClosed
	}
	// One socket per kind: a new connection invalidates any prior handle.
	if old := m.conns[kind]; old != nil {
		close(old.stopped)
		old.client.Close()
	}
	m.conns[kind] = conn
	m.mu.Unlock()

	m.view.SetWebSocketURL(string(kind), resp.WebSocketURL)
	m.view.SetConnectionStatus(string(kind), true)
	m.toasts.Push("Connected",
		fmt.Sprintf("%s connection established", kind),
		notify.SeveritySuccess, "connection")

	m.wg.Add(1)
	go m.readLoop(conn)

	m.logger.Info("connection established", "kind", kind, "url", clientCfg.URL)

	return nil
}

// ControlStreaming starts or stops per-symbol market data streaming. On
// success the view's start/stop control pair is flipped without verifying the
// server's streaming state actually matches.
func (m *Manager) ControlStreaming(ctx context.Context, action, symbol string) error {
	resp, err := m.backend.ControlStreaming(ctx, action, symbol)
	if err != nil {
		m.logger.Error("streaming control failed", "action", action, "symbol", symbol, "error", err)
		m.toasts.Push("Streaming Error",
			fmt.Sprintf("Failed to %s streaming for %s", action, symbol),
			notify.SeverityError, "streaming")
		return err
	}

	msg := resp.Message
	if msg == "" {
		msg = fmt.Sprintf("Streaming %s for %s", action, symbol)
	}
	m.toasts.Push("Streaming", msg, notify.SeveritySuccess, "streaming")
	m.view.SetStreaming(symbol, action == "start")

	return nil
}

// Messages returns the channel of raw inbound frames for the dispatcher.
func (m *Manager) Messages() <-chan Inbound {
	return m.inbound
}

// Stats returns current statistics.
func (m *Manager) Stats() ManagerStats {
	m.mu.Lock()
	connected := 0
	for _, c := range m.conns {
		if c.client.IsConnected() {
			connected++
		}
	}
	reconnects := m.reconnects
	m.mu.Unlock()

	return ManagerStats{
		ConnectedCount:    connected,
		ReconnectAttempts: reconnects,
		FramesForwarded:   m.forwarded.Load(),
		FramesDropped:     m.dropped.Load(),
	}
}

// Close tears the manager down: every socket is closed, the registry is
// cleared, and pending reconnect timers are stopped so nothing fires into a
// torn-down manager.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true

	for kind, t := range m.timers {
		t.Stop()
		delete(m.timers, kind)
	}

	conns := make([]*connState, 0, len(m.conns))
	for kind, c := range m.conns {
		conns = append(conns, c)
		delete(m.conns, kind)
	}
	m.mu.Unlock()

	for _, c := range conns {
		close(c.stopped)
		c.client.Close()
		m.view.SetConnectionStatus(string(c.kind), false)
	}

	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()
	close(m.inbound)

	m.logger.Info("connection manager closed")
}

// readLoop forwards a connection's frames until the socket dies or the
// manager shuts down.
func (m *Manager) readLoop(conn *connState) {
	defer m.wg.Done()

	for {
		select {
		case <-m.ctx.Done():
			return

		case <-conn.stopped:
			return

		case err := <-conn.client.Errors():
			m.logger.Warn("connection error", "kind", conn.kind, "error", err)
			// A clean close is not an error event, just a close.
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				m.toasts.Push("Connection Error",
					fmt.Sprintf("%s connection error", conn.kind),
					notify.SeverityError, "connection")
			}
			m.handleClose(conn)
			return

		case msg, ok := <-conn.client.Messages():
			if !ok {
				m.handleClose(conn)
				return
			}

			in := Inbound{
				Kind:       conn.kind,
				Data:       msg.Data,
				ReceivedAt: msg.ReceivedAt,
			}

			select {
			case m.inbound <- in:
				m.forwarded.Add(1)
			case <-m.ctx.Done():
				return
			default:
				m.dropped.Add(1)
				m.logger.Warn("inbound buffer full, dropping frame", "kind", conn.kind)
			}
		}
	}
}

// handleClose runs for every socket close, clean or not: clear the handle,
// flip the displayed status, schedule a reconnect.
func (m *Manager) handleClose(conn *connState) {
	m.mu.Lock()
	if m.conns[conn.kind] == conn {
		delete(m.conns, conn.kind)
	}
	closed := m.closed
	m.mu.Unlock()

	conn.client.Close()
	m.view.SetConnectionStatus(string(conn.kind), false)

	if closed {
		return
	}
	m.scheduleReconnect(conn.kind)
}

// scheduleReconnect consumes one unit of the shared retry budget and arms a
// single reattempt after the fixed delay. At the ceiling it toasts a terminal
// failure and stops for good.
func (m *Manager) scheduleReconnect(kind Kind) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}

	if m.reconnects >= m.cfg.MaxReconnectAttempts {
		m.mu.Unlock()
		m.logger.Error("reconnect budget exhausted", "kind", kind, "attempts", m.cfg.MaxReconnectAttempts)
		m.toasts.Push("Connection Lost",
			"Maximum reconnect attempts reached",
			notify.SeverityError, "connection")
		return
	}

	m.reconnects++
	attempt := m.reconnects

	timer := time.AfterFunc(m.cfg.ReconnectDelay, func() {
		m.mu.Lock()
		delete(m.timers, kind)
		closed := m.closed
		m.mu.Unlock()
		if closed {
			return
		}

		m.logger.Info("attempting reconnection", "kind", kind, "attempt", attempt)
		if err := m.Establish(m.ctx, kind); err != nil {
			m.logger.Warn("reconnection failed", "kind", kind, "attempt", attempt, "error", err)
		}
	})
	m.timers[kind] = timer
	m.mu.Unlock()

	m.logger.Info("reconnect scheduled",
		"kind", kind,
		"attempt", attempt,
		"delay", m.cfg.ReconnectDelay,
	)
}

// dialWSURL composes the dial URL from the backend host and the negotiated
// relative path. The scheme is fixed: the backend does not terminate TLS on
// its websocket endpoints.
func dialWSURL(baseURL, relative string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "ws://" + relative
	}
	return "ws://" + u.Host + relative
}
