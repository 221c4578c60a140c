package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shajishali/trading-dashboard/internal/dashboard"
	"github.com/shajishali/trading-dashboard/internal/message"
	"github.com/shajishali/trading-dashboard/internal/notify"
	"github.com/shajishali/trading-dashboard/internal/realtime"
)

// Router decodes inbound frames and applies them to the view and the
// notification center.
type Router struct {
	view    *dashboard.View
	toasts  *notify.Center
	sounder Sounder
	logger  *slog.Logger

	input <-chan realtime.Inbound

	// Lifecycle
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu              sync.RWMutex
	received        int64
	dispatched      int64
	parseErrors     int64
	unknownMessages int64
}

// NewRouter creates a message router. sounder may be nil when no audio output
// is available.
func NewRouter(input <-chan realtime.Inbound, view *dashboard.View, toasts *notify.Center, sounder Sounder, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}

	return &Router{
		view:    view,
		toasts:  toasts,
		sounder: sounder,
		logger:  logger,
		input:   input,
	}
}

// Start begins routing messages from the input channel.
func (r *Router) Start(ctx context.Context) error {
	r.ctx, r.cancel = context.WithCancel(ctx)

	r.wg.Add(1)
	go r.routeLoop()

	r.logger.Info("message router started")
	return nil
}

// Stop gracefully shuts down the router.
func (r *Router) Stop(ctx context.Context) error {
	r.logger.Info("stopping message router")

	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.logger.Info("message router stopped")
	case <-ctx.Done():
		r.logger.Warn("message router stop timed out")
	}

	return nil
}

// Stats returns current statistics.
func (r *Router) Stats() RouterStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RouterStats{
		Received:        r.received,
		Dispatched:      r.dispatched,
		ParseErrors:     r.parseErrors,
		UnknownMessages: r.unknownMessages,
	}
}

// routeLoop is the main routing goroutine.
func (r *Router) routeLoop() {
	defer r.wg.Done()

	for {
		select {
		case <-r.ctx.Done():
			return
		case in, ok := <-r.input:
			if !ok {
				r.logger.Info("input channel closed")
				return
			}
			r.Dispatch(in)
		}
	}
}

// Dispatch decodes and applies a single frame. Decode failures are logged and
// counted; the frame's connection is never affected.
func (r *Router) Dispatch(in realtime.Inbound) {
	r.mu.Lock()
	r.received++
	r.mu.Unlock()

	msg, err := message.Decode(in.Data)
	if err != nil {
		r.logger.Warn("failed to decode message",
			"kind", in.Kind,
			"error", err,
		)
		r.mu.Lock()
		r.parseErrors++
		r.mu.Unlock()
		return
	}

	if u, ok := msg.(message.Unknown); ok {
		r.logger.Warn("unknown message type",
			"kind", in.Kind,
			"type", u.TypeTag,
		)
		r.mu.Lock()
		r.unknownMessages++
		r.mu.Unlock()
		return
	}

	r.apply(in.Kind, msg)

	r.mu.Lock()
	r.dispatched++
	r.mu.Unlock()
}

// apply performs a variant's effect on the view and notification center.
func (r *Router) apply(kind realtime.Kind, msg message.Message) {
	switch m := msg.(type) {
	case message.ConnectionEstablished:
		r.logger.Info("channel confirmed",
			"kind", kind,
			"message", m.Message,
		)
		r.toasts.Push("Connected", m.Message, notify.SeveritySuccess, "connection")

	case message.MarketUpdate:
		r.view.ApplyMarketUpdate(m)

	case message.PriceAlert:
		r.toasts.Push("Price Alert", m.Message, notify.SeverityWarning, "alerts")
		r.playAlertSound()

	case message.NewSignal:
		r.view.ApplySignal(m)
		r.toasts.Push("New Signal",
			fmt.Sprintf("%s: %s signal", m.Symbol, m.SignalType),
			notify.SeverityInfo, "signals")

	case message.SignalUpdate:
		if !r.view.ApplySignalUpdate(m) {
			r.logger.Warn("update for unlisted signal",
				"signal_id", m.SignalID,
			)
		}

	case message.NewNotification:
		severity := notify.SeverityInfo
		if m.Priority == "high" {
			severity = notify.SeverityError
		}
		r.toasts.Push(m.Title, m.Message, severity, m.Category)

	case message.PortfolioUpdate:
		r.view.ApplyPortfolioUpdate(m)

	default:
		r.logger.Warn("unhandled message variant",
			"kind", kind,
			"type", msg.MessageType(),
		)
	}
}

func (r *Router) playAlertSound() {
	if r.sounder == nil {
		return
	}
	if err := r.sounder.Play(AlertSound); err != nil {
		r.logger.Debug("alert sound unavailable", "error", err)
	}
}
