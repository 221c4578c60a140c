package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// GetRealtimeStatus queries which connection kinds are active server-side and
// the WebSocket URL each kind should dial.
func (c *Client) GetRealtimeStatus(ctx context.Context) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.getWithRetry(ctx, c.statusPath, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("status query rejected: %s", resp.Error)
	}
	return &resp, nil
}

// NegotiateConnection requests establishment of a named real-time connection.
// The kind is sent through unchanged; an unrecognized kind fails server-side.
func (c *Client) NegotiateConnection(ctx context.Context, kind string) (*ConnectResponse, error) {
	form := url.Values{}
	form.Set("type", kind)

	body, err := c.doPostForm(ctx, c.connectPath, form)
	if err != nil {
		return nil, err
	}

	var resp ConnectResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("connection rejected: %s", resp.Error)
	}
	return &resp, nil
}

// ControlStreaming starts or stops market-data streaming for a symbol.
func (c *Client) ControlStreaming(ctx context.Context, action, symbol string) (*StreamingResponse, error) {
	form := url.Values{}
	form.Set("action", action)
	form.Set("symbol", symbol)

	body, err := c.doPostForm(ctx, c.streamingPath, form)
	if err != nil {
		return nil, err
	}

	var resp StreamingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("streaming control rejected: %s", resp.Error)
	}
	return &resp, nil
}
