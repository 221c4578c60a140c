package status

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shajishali/trading-dashboard/internal/api"
	"github.com/shajishali/trading-dashboard/internal/dashboard"
)

// Config holds poller configuration.
type Config struct {
	Interval time.Duration // Poll interval (default: 30s)
	Timeout  time.Duration // Per-request timeout (default: 10s)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Interval: 30 * time.Second,
		Timeout:  10 * time.Second,
	}
}

// Poller periodically fetches the backend's realtime status and refreshes the
// advertised WebSocket URLs on the view. Server-side state that contradicts
// what the dashboard displays is logged, not acted on: reconnection stays the
// manager's job.
type Poller struct {
	cfg     Config
	backend *api.Client
	view    *dashboard.View
	logger  *slog.Logger

	polls    atomic.Int64
	failures atomic.Int64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a status poller.
func New(cfg Config, backend *api.Client, view *dashboard.View, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		cfg:     cfg,
		backend: backend,
		view:    view,
		logger:  logger,
	}
}

// Start begins the polling loop.
func (p *Poller) Start(ctx context.Context) error {
	p.ctx, p.cancel = context.WithCancel(ctx)

	p.wg.Add(1)
	go p.run()

	p.logger.Info("status poller started", "interval", p.cfg.Interval)
	return nil
}

// Stop gracefully shuts down the poller.
func (p *Poller) Stop(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("status poller stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Polls returns how many status fetches completed, and how many failed.
func (p *Poller) Polls() (total, failed int64) {
	return p.polls.Load(), p.failures.Load()
}

func (p *Poller) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	// Poll immediately on start.
	p.poll()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.poll()
		}
	}
}

// poll fetches one status snapshot and applies it to the view.
func (p *Poller) poll() {
	ctx, cancel := context.WithTimeout(p.ctx, p.cfg.Timeout)
	defer cancel()

	p.polls.Add(1)

	resp, err := p.backend.GetRealtimeStatus(ctx)
	if err != nil {
		p.failures.Add(1)
		p.logger.Warn("status poll failed", "error", err)
		return
	}

	for kind, u := range resp.WebSocketURLs {
		p.view.SetWebSocketURL(kind, u)
	}

	for kind, serverConnected := range resp.Connections {
		displayed := p.view.Connection(kind).Status == dashboard.StatusConnected
		if serverConnected != displayed {
			p.logger.Warn("status drift",
				"kind", kind,
				"server_connected", serverConnected,
				"displayed_connected", displayed,
			)
		}
	}
}
