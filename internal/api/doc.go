// Package api provides the HTTP client for the trading backend's real-time
// negotiation endpoints.
//
// Endpoints:
//   - GET  status:    which connection kinds are active and their WebSocket URLs
//   - POST connect:   negotiate a named real-time connection
//   - POST streaming: start/stop per-symbol market data streaming
//
// State-changing requests carry a CSRF token header, resolved from an
// explicitly configured token or the backend's CSRF cookie.
package api
