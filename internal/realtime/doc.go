// Package realtime implements the real-time connection manager.
//
// The manager:
//   - Owns one WebSocket connection per channel kind (market data, trading
//     signals, notifications), negotiated over HTTP before dialing
//   - Projects connection status and streaming toggles onto the dashboard view
//   - Reconnects on close with a fixed delay under a single retry budget
//     shared by all kinds
//   - Forwards raw inbound frames to the message dispatcher
package realtime
