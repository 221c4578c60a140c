package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultStatusPath           = "/api/realtime/status/"
	DefaultConnectPath          = "/api/realtime/connect/"
	DefaultStreamingPath        = "/api/market-data/streaming/"
	DefaultCSRFCookie           = "csrftoken"
	DefaultTimeout              = 30 * time.Second
	DefaultMaxRetries           = 3
	DefaultReconnectDelay       = 3 * time.Second
	DefaultMaxReconnectAttempts = 5
	DefaultPingInterval         = 30 * time.Second
	DefaultPingTimeout          = 60 * time.Second
	DefaultWriteTimeout         = 5 * time.Second
	DefaultMessageBufferSize    = 1000
	DefaultNotificationTTL      = 5 * time.Second
	DefaultNotificationBuffer   = 64
	DefaultStatusPollInterval   = 1 * time.Minute
	DefaultDispatchBufferSize   = 1000
)

func (c *DashboardConfig) applyDefaults() {
	// Server defaults
	if c.Server.StatusPath == "" {
		c.Server.StatusPath = DefaultStatusPath
	}
	if c.Server.ConnectPath == "" {
		c.Server.ConnectPath = DefaultConnectPath
	}
	if c.Server.StreamingPath == "" {
		c.Server.StreamingPath = DefaultStreamingPath
	}
	if c.Server.CSRFCookie == "" {
		c.Server.CSRFCookie = DefaultCSRFCookie
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = DefaultTimeout
	}
	if c.Server.MaxRetries == 0 {
		c.Server.MaxRetries = DefaultMaxRetries
	}

	// Connections defaults
	if c.Connections.ReconnectDelay == 0 {
		c.Connections.ReconnectDelay = DefaultReconnectDelay
	}
	if c.Connections.MaxReconnectAttempts == 0 {
		c.Connections.MaxReconnectAttempts = DefaultMaxReconnectAttempts
	}
	if c.Connections.PingInterval == 0 {
		c.Connections.PingInterval = DefaultPingInterval
	}
	if c.Connections.PingTimeout == 0 {
		c.Connections.PingTimeout = DefaultPingTimeout
	}
	if c.Connections.WriteTimeout == 0 {
		c.Connections.WriteTimeout = DefaultWriteTimeout
	}
	if c.Connections.MessageBufferSize == 0 {
		c.Connections.MessageBufferSize = DefaultMessageBufferSize
	}

	// Notifications defaults
	if c.Notifications.TTL == 0 {
		c.Notifications.TTL = DefaultNotificationTTL
	}
	if c.Notifications.BufferSize == 0 {
		c.Notifications.BufferSize = DefaultNotificationBuffer
	}

	// Status poller defaults
	if c.Status.PollInterval == 0 {
		c.Status.PollInterval = DefaultStatusPollInterval
	}

	// Dispatch defaults
	if c.Dispatch.BufferSize == 0 {
		c.Dispatch.BufferSize = DefaultDispatchBufferSize
	}
}
