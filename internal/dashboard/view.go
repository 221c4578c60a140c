package dashboard

import (
	"sync"

	"github.com/shajishali/trading-dashboard/internal/message"
)

// Connection status display values.
const (
	StatusConnected    = "Connected"
	StatusDisconnected = "Disconnected"
)

// MarketTile is the rendered state of one symbol's price tile.
type MarketTile struct {
	Symbol        string
	PriceText     string // "$50000"
	ChangeText    string // "-1.5"
	ChangeTone    Tone
	VolumeText    string // "1,000,000"
	TimestampText string
}

// SignalEntry is one row of the signals list, keyed by signal ID.
type SignalEntry struct {
	ID         int64
	Symbol     string
	SignalType string
	PriceText  string
	UpdateInfo string // Patched in place by signal_update
}

// PortfolioSummary is the rendered aggregate portfolio state.
type PortfolioSummary struct {
	TotalValueText         string // "$10,000"
	DailyChangeText        string // "-$250"
	DailyChangeTone        Tone
	DailyChangePercentText string // "-2.5%"
	DailyChangePercentTone Tone
}

// ConnectionPanel is the rendered state of one connection kind.
type ConnectionPanel struct {
	Status       string // "Connected" / "Disconnected"
	WebSocketURL string // Advertised dial URL, display only
}

// StreamingToggle says which of the start/stop control pair is visible.
type StreamingToggle struct {
	StartVisible bool
	StopVisible  bool
}

// View is the explicitly-owned replacement for the web dashboard's DOM: every
// update lands here, consumers read rendered snapshots.
type View struct {
	mu          sync.RWMutex
	markets     map[string]MarketTile
	signals     []SignalEntry
	signalIdx   map[int64]int // signal ID → index into signals
	portfolio   PortfolioSummary
	connections map[string]ConnectionPanel
	streaming   map[string]bool
}

// NewView creates an empty view.
func NewView() *View {
	return &View{
		markets:     make(map[string]MarketTile),
		signalIdx:   make(map[int64]int),
		connections: make(map[string]ConnectionPanel),
		streaming:   make(map[string]bool),
	}
}

// ApplyMarketUpdate renders a tick onto the symbol's tile.
func (v *View) ApplyMarketUpdate(m message.MarketUpdate) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.markets[m.Symbol] = MarketTile{
		Symbol:        m.Symbol,
		PriceText:     formatPrice(m.Price),
		ChangeText:    formatChange(m.Change),
		ChangeTone:    toneOf(m.Change),
		VolumeText:    formatVolume(m.Volume),
		TimestampText: m.Timestamp,
	}
}

// ApplySignal appends a signal entry, or re-renders it if the ID is already
// listed.
func (v *View) ApplySignal(s message.NewSignal) {
	v.mu.Lock()
	defer v.mu.Unlock()

	entry := SignalEntry{
		ID:         s.ID,
		Symbol:     s.Symbol,
		SignalType: s.SignalType,
		PriceText:  formatPrice(s.Price),
	}

	if i, ok := v.signalIdx[s.ID]; ok {
		entry.UpdateInfo = v.signals[i].UpdateInfo
		v.signals[i] = entry
		return
	}

	v.signalIdx[s.ID] = len(v.signals)
	v.signals = append(v.signals, entry)
}

// ApplySignalUpdate patches an existing entry's update info. Returns false if
// no entry with that ID is listed.
func (v *View) ApplySignalUpdate(u message.SignalUpdate) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	i, ok := v.signalIdx[u.SignalID]
	if !ok {
		return false
	}
	v.signals[i].UpdateInfo = u.UpdateInfo
	return true
}

// ApplyPortfolioUpdate renders aggregate portfolio figures.
func (v *View) ApplyPortfolioUpdate(p message.PortfolioUpdate) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.portfolio = PortfolioSummary{
		TotalValueText:         formatAmount(p.TotalValue),
		DailyChangeText:        formatSignedAmount(p.DailyChange),
		DailyChangeTone:        toneOf(p.DailyChange),
		DailyChangePercentText: formatPercent(p.DailyChangePercent),
		DailyChangePercentTone: toneOf(p.DailyChangePercent),
	}
}

// SetConnectionStatus flips a kind's displayed status.
func (v *View) SetConnectionStatus(kind string, connected bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	panel := v.connections[kind]
	if connected {
		panel.Status = StatusConnected
	} else {
		panel.Status = StatusDisconnected
	}
	v.connections[kind] = panel
}

// SetWebSocketURL updates a kind's displayed dial URL.
func (v *View) SetWebSocketURL(kind, url string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	panel := v.connections[kind]
	panel.WebSocketURL = url
	v.connections[kind] = panel
}

// SetStreaming flips the start/stop control pair for a symbol. Idempotent:
// re-applying the same state changes nothing.
func (v *View) SetStreaming(symbol string, active bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.streaming[symbol] = active
}

// Market returns the rendered tile for a symbol.
func (v *View) Market(symbol string) (MarketTile, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	tile, ok := v.markets[symbol]
	return tile, ok
}

// Signals returns the signal list in arrival order.
func (v *View) Signals() []SignalEntry {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]SignalEntry, len(v.signals))
	copy(out, v.signals)
	return out
}

// Portfolio returns the rendered portfolio summary.
func (v *View) Portfolio() PortfolioSummary {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.portfolio
}

// Connection returns the rendered panel for a connection kind.
func (v *View) Connection(kind string) ConnectionPanel {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.connections[kind]
}

// Streaming reports which of a symbol's start/stop controls is visible.
func (v *View) Streaming(symbol string) StreamingToggle {
	v.mu.RLock()
	defer v.mu.RUnlock()

	active := v.streaming[symbol]
	return StreamingToggle{
		StartVisible: !active,
		StopVisible:  active,
	}
}
