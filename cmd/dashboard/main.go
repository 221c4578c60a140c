package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/shajishali/trading-dashboard/internal/api"
	"github.com/shajishali/trading-dashboard/internal/config"
	"github.com/shajishali/trading-dashboard/internal/dashboard"
	"github.com/shajishali/trading-dashboard/internal/dispatch"
	"github.com/shajishali/trading-dashboard/internal/notify"
	"github.com/shajishali/trading-dashboard/internal/realtime"
	"github.com/shajishali/trading-dashboard/internal/status"
	"github.com/shajishali/trading-dashboard/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/dashboard.local.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting dashboard",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"base_url", cfg.Server.BaseURL,
		"reconnect_delay", cfg.Connections.ReconnectDelay,
		"max_reconnect_attempts", cfg.Connections.MaxReconnectAttempts,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Create backend client
	backend := api.NewClient(
		cfg.Server.BaseURL,
		api.WithLogger(logger),
		api.WithTimeout(cfg.Server.Timeout),
		api.WithRetries(cfg.Server.MaxRetries, time.Second),
		api.WithCSRFToken(cfg.Server.CSRFToken),
		api.WithCSRFCookie(cfg.Server.CSRFCookie),
		api.WithPaths(cfg.Server.StatusPath, cfg.Server.ConnectPath, cfg.Server.StreamingPath),
	)

	view := dashboard.NewView()

	toasts := notify.NewCenter(notify.Config{
		TTL:        cfg.Notifications.TTL,
		BufferSize: cfg.Notifications.BufferSize,
	}, logger)

	// Connection manager
	manager := realtime.NewManager(realtime.ManagerConfig{
		ReconnectDelay:       cfg.Connections.ReconnectDelay,
		MaxReconnectAttempts: cfg.Connections.MaxReconnectAttempts,
		PingInterval:         cfg.Connections.PingInterval,
		PingTimeout:          cfg.Connections.PingTimeout,
		WriteTimeout:         cfg.Connections.WriteTimeout,
		MessageBufferSize:    cfg.Connections.MessageBufferSize,
	}, backend, view, toasts, logger)

	if err := manager.Start(ctx); err != nil {
		// The dashboard stays up on a failed initial status query; channels
		// can still be connected manually.
		logger.Warn("initial realtime status unavailable", "error", err)
	}

	// Message router
	router := dispatch.NewRouter(manager.Messages(), view, toasts, nil, logger)
	if err := router.Start(ctx); err != nil {
		logger.Error("failed to start message router", "error", err)
		os.Exit(1)
	}

	// Status poller
	poller := status.New(status.Config{
		Interval: cfg.Status.PollInterval,
		Timeout:  cfg.Server.Timeout,
	}, backend, view, logger)
	if err := poller.Start(ctx); err != nil {
		logger.Error("failed to start status poller", "error", err)
		os.Exit(1)
	}

	g, gctx := errgroup.WithContext(ctx)

	// Toast printer
	g.Go(func() error {
		return printToasts(toasts)
	})

	// Interactive command loop
	g.Go(func() error {
		runCommandLoop(gctx, os.Stdin, manager, view, toasts, logger)
		cancel()
		return nil
	})

	logger.Info("dashboard running")

	// Wait for shutdown
	<-ctx.Done()

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	manager.Close()
	router.Stop(shutdownCtx)
	poller.Stop(shutdownCtx)
	toasts.Close()

	g.Wait()

	logger.Info("dashboard stopped")
}

// printToasts renders notification events to stdout until the center closes.
func printToasts(toasts *notify.Center) error {
	events := toasts.Events()
	for {
		ev, ok := events.Next()
		if !ok {
			return nil
		}
		n := ev.Notification
		switch ev.Kind {
		case notify.EventShown:
			fmt.Printf("[%s] %s: %s (id %s)\n", n.Severity, n.Title, n.Message, n.ID)
		case notify.EventExpired:
			fmt.Printf("[toast expired] %s\n", n.Title)
		case notify.EventDismissed:
			fmt.Printf("[toast dismissed] %s\n", n.Title)
		}
	}
}

// runCommandLoop reads commands from r until EOF, quit, or context cancel.
func runCommandLoop(ctx context.Context, r *os.File, manager *realtime.Manager, view *dashboard.View, toasts *notify.Center, logger *slog.Logger) {
	scanner := bufio.NewScanner(r)
	printHelp()

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "connect":
			if len(fields) != 2 {
				fmt.Println("usage: connect <marketData|tradingSignals|notifications>")
				continue
			}
			if err := manager.Establish(ctx, realtime.Kind(fields[1])); err != nil {
				logger.Error("connect failed", "kind", fields[1], "error", err)
			}

		case "stream":
			if len(fields) != 3 || (fields[1] != "start" && fields[1] != "stop") {
				fmt.Println("usage: stream start|stop <symbol>")
				continue
			}
			if err := manager.ControlStreaming(ctx, fields[1], fields[2]); err != nil {
				logger.Error("streaming control failed", "error", err)
			}

		case "dismiss":
			if len(fields) != 2 {
				fmt.Println("usage: dismiss <toast-id>")
				continue
			}
			id, err := uuid.Parse(fields[1])
			if err != nil {
				fmt.Println("invalid toast id")
				continue
			}
			toasts.Dismiss(id)

		case "status":
			printStatus(manager, view, toasts)

		case "help":
			printHelp()

		case "quit", "exit":
			return

		default:
			fmt.Printf("unknown command %q (try help)\n", fields[0])
		}
	}
}

func printHelp() {
	fmt.Println("commands:")
	fmt.Println("  connect <marketData|tradingSignals|notifications>")
	fmt.Println("  stream start|stop <symbol>")
	fmt.Println("  dismiss <toast-id>")
	fmt.Println("  status")
	fmt.Println("  quit")
}

// printStatus renders the current view snapshot.
func printStatus(manager *realtime.Manager, view *dashboard.View, toasts *notify.Center) {
	stats := manager.Stats()
	fmt.Printf("connections: %d connected, %d reconnect attempts used\n",
		stats.ConnectedCount, stats.ReconnectAttempts)

	for _, kind := range realtime.Kinds() {
		panel := view.Connection(string(kind))
		statusText := panel.Status
		if statusText == "" {
			statusText = dashboard.StatusDisconnected
		}
		fmt.Printf("  %-15s %-12s %s\n", kind, statusText, panel.WebSocketURL)
	}

	if signals := view.Signals(); len(signals) > 0 {
		fmt.Println("signals:")
		for _, s := range signals {
			line := fmt.Sprintf("  #%d %s %s @ %s", s.ID, s.Symbol, s.SignalType, s.PriceText)
			if s.UpdateInfo != "" {
				line += " (" + s.UpdateInfo + ")"
			}
			fmt.Println(line)
		}
	}

	p := view.Portfolio()
	if p.TotalValueText != "" {
		fmt.Printf("portfolio: %s, daily %s (%s)\n",
			p.TotalValueText, p.DailyChangeText, p.DailyChangePercentText)
	}

	if active := toasts.Active(); len(active) > 0 {
		fmt.Println("toasts:")
		for _, n := range active {
			fmt.Printf("  [%s] %s: %s (id %s)\n", n.Severity, n.Title, n.Message, n.ID)
		}
	}
}
