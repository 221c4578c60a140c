// Package message defines the backend's push message schema.
//
// Every inbound WebSocket frame is a JSON object carrying a "type" tag that
// selects one of seven known variants. Anything else decodes into Unknown and
// is dropped by the dispatcher.
//
// Conventions:
//   - Prices and portfolio amounts: float64, as sent by the backend
//   - Timestamps: preformatted display strings
//   - Signal IDs: int64
package message
