package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
func (c *DashboardConfig) Validate() error {
	if c.Server.BaseURL == "" {
		return errors.New("server.base_url is required")
	}
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("server.base_url is not a valid URL: %q", c.Server.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server.base_url scheme must be http or https, got %q", u.Scheme)
	}

	if err := validatePath("server.status_path", c.Server.StatusPath); err != nil {
		return err
	}
	if err := validatePath("server.connect_path", c.Server.ConnectPath); err != nil {
		return err
	}
	if err := validatePath("server.streaming_path", c.Server.StreamingPath); err != nil {
		return err
	}

	if c.Server.MaxRetries < 0 {
		return errors.New("server.max_retries must be >= 0")
	}

	if c.Connections.ReconnectDelay <= 0 {
		return errors.New("connections.reconnect_delay must be > 0")
	}
	if c.Connections.MaxReconnectAttempts < 1 {
		return errors.New("connections.max_reconnect_attempts must be >= 1")
	}
	if c.Connections.MessageBufferSize < 1 {
		return errors.New("connections.message_buffer_size must be >= 1")
	}

	if c.Notifications.TTL <= 0 {
		return errors.New("notifications.ttl must be > 0")
	}
	if c.Notifications.BufferSize < 1 {
		return errors.New("notifications.buffer_size must be >= 1")
	}

	if c.Status.PollInterval <= 0 {
		return errors.New("status.poll_interval must be > 0")
	}

	if c.Dispatch.BufferSize < 1 {
		return errors.New("dispatch.buffer_size must be >= 1")
	}

	return nil
}

func validatePath(field, path string) error {
	if path == "" {
		return fmt.Errorf("%s is required", field)
	}
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%s must start with /, got %q", field, path)
	}
	return nil
}
