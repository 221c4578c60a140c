// Package notify implements the toast notification center.
//
// Notifications are ephemeral: each one auto-expires after a fixed TTL or on
// explicit dismissal, whichever comes first. There is no queue and no
// backpressure — any number of notifications can be live at once, and observer
// delivery rides a growable ring so bursts never block or drop.
package notify
