// stubserver is a local stand-in for the trading backend. It serves the
// negotiation endpoints with CSRF protection and three WebSocket feeds that
// emit sample push messages, so the dashboard can be exercised without a real
// server.
// Usage: go run ./cmd/stubserver --addr :8000
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	csrfCookieName = "csrftoken"
	csrfHeaderName = "X-CSRFToken"
)

var channelKinds = map[string]string{
	"marketData":     "/ws/market-data/",
	"tradingSignals": "/ws/trading-signals/",
	"notifications":  "/ws/notifications/",
}

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	interval := flag.Duration("interval", 2*time.Second, "delay between emitted messages")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	s := &stub{
		logger:   logger,
		interval: *interval,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/realtime/status/", s.handleStatus)
	mux.HandleFunc("/api/realtime/connect/", s.handleConnect)
	mux.HandleFunc("/api/market-data/streaming/", s.handleStreaming)
	mux.HandleFunc("/ws/market-data/", s.feed("marketData", marketDataFrames))
	mux.HandleFunc("/ws/trading-signals/", s.feed("tradingSignals", signalFrames))
	mux.HandleFunc("/ws/notifications/", s.feed("notifications", notificationFrames))

	logger.Info("stub server listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

type stub struct {
	logger   *slog.Logger
	interval time.Duration
	upgrader websocket.Upgrader
}

// handleStatus reports every channel active and seeds the CSRF cookie, the
// same way the real backend primes a browser session.
func (s *stub) handleStatus(w http.ResponseWriter, r *http.Request) {
	if _, err := r.Cookie(csrfCookieName); err != nil {
		http.SetCookie(w, &http.Cookie{
			Name:  csrfCookieName,
			Value: uuid.NewString(),
			Path:  "/",
		})
	}

	connections := make(map[string]bool)
	urls := make(map[string]string)
	for kind, path := range channelKinds {
		connections[kind] = true
		urls[kind] = path
	}

	writeJSON(w, map[string]any{
		"success":        true,
		"connections":    connections,
		"websocket_urls": urls,
	})
}

func (s *stub) handleConnect(w http.ResponseWriter, r *http.Request) {
	if !s.checkCSRF(w, r) {
		return
	}
	r.ParseForm()
	kind := r.PostForm.Get("type")

	path, ok := channelKinds[kind]
	if !ok {
		writeJSON(w, map[string]any{
			"success": false,
			"error":   fmt.Sprintf("unknown connection type %q", kind),
		})
		return
	}

	s.logger.Info("connection negotiated", "type", kind)
	writeJSON(w, map[string]any{
		"success":       true,
		"websocket_url": path,
		"message":       kind + " connection ready",
	})
}

func (s *stub) handleStreaming(w http.ResponseWriter, r *http.Request) {
	if !s.checkCSRF(w, r) {
		return
	}
	r.ParseForm()
	action := r.PostForm.Get("action")
	symbol := r.PostForm.Get("symbol")

	if (action != "start" && action != "stop") || symbol == "" {
		writeJSON(w, map[string]any{
			"success": false,
			"error":   "action must be start or stop, symbol required",
		})
		return
	}

	verb := "started"
	if action == "stop" {
		verb = "stopped"
	}

	s.logger.Info("streaming control", "action", action, "symbol", symbol)
	writeJSON(w, map[string]any{
		"success": true,
		"message": fmt.Sprintf("streaming %s for %s", verb, symbol),
	})
}

// checkCSRF enforces the double-submit pattern: the header must match the
// cookie issued by the status endpoint.
func (s *stub) checkCSRF(w http.ResponseWriter, r *http.Request) bool {
	header := r.Header.Get(csrfHeaderName)
	if header == "" {
		http.Error(w, "missing CSRF token", http.StatusForbidden)
		return false
	}
	if cookie, err := r.Cookie(csrfCookieName); err == nil && cookie.Value != header {
		http.Error(w, "CSRF token mismatch", http.StatusForbidden)
		return false
	}
	return true
}

// feed upgrades the request and emits frames from gen until the client hangs
// up.
func (s *stub) feed(kind string, gen func() []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.logger.Warn("upgrade failed", "kind", kind, "error", err)
			return
		}
		defer conn.Close()

		s.logger.Info("feed connected", "kind", kind, "remote", r.RemoteAddr)

		confirm, _ := json.Marshal(map[string]any{
			"type":    "connection_established",
			"message": kind + " channel live",
		})
		if err := conn.WriteMessage(websocket.TextMessage, confirm); err != nil {
			return
		}

		// Drain client frames so pings keep being answered.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for range ticker.C {
			if err := conn.WriteMessage(websocket.TextMessage, gen()); err != nil {
				s.logger.Info("feed disconnected", "kind", kind, "remote", r.RemoteAddr)
				return
			}
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

var symbols = []string{"BTCUSD", "ETHUSD", "SOLUSD", "ADAUSD"}

func marketDataFrames() []byte {
	symbol := symbols[rand.IntN(len(symbols))]
	price := 100 + rand.Float64()*60000
	frame, _ := json.Marshal(map[string]any{
		"type":      "market_update",
		"symbol":    symbol,
		"price":     price,
		"change":    rand.Float64()*10 - 5,
		"volume":    float64(rand.IntN(5_000_000)),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
	return frame
}

var nextSignalID atomic.Int64

func signalFrames() []byte {
	// Alternate between announcing a signal and updating the previous one.
	if id := nextSignalID.Load(); id > 0 && rand.IntN(3) == 0 {
		frame, _ := json.Marshal(map[string]any{
			"type":        "signal_update",
			"signal_id":   id,
			"update_info": "target adjusted",
		})
		return frame
	}

	id := nextSignalID.Add(1)
	side := "BUY"
	if rand.IntN(2) == 1 {
		side = "SELL"
	}
	frame, _ := json.Marshal(map[string]any{
		"type":        "new_signal",
		"id":          id,
		"symbol":      symbols[rand.IntN(len(symbols))],
		"signal_type": side,
		"price":       100 + rand.Float64()*60000,
		"confidence":  rand.Float64(),
	})
	return frame
}

func notificationFrames() []byte {
	switch rand.IntN(3) {
	case 0:
		frame, _ := json.Marshal(map[string]any{
			"type":    "price_alert",
			"symbol":  "BTCUSD",
			"message": "BTCUSD crossed 60000",
			"price":   60000 + rand.Float64()*500,
		})
		return frame
	case 1:
		priority := "normal"
		if rand.IntN(4) == 0 {
			priority = "high"
		}
		frame, _ := json.Marshal(map[string]any{
			"type":     "new_notification",
			"title":    "Account Notice",
			"message":  "notification " + uuid.NewString()[:8],
			"priority": priority,
			"category": "account",
		})
		return frame
	default:
		change := rand.Float64()*1000 - 500
		frame, _ := json.Marshal(map[string]any{
			"type":                 "portfolio_update",
			"total_value":          10_000 + rand.Float64()*5000,
			"daily_change":         change,
			"daily_change_percent": change / 100,
		})
		return frame
	}
}
