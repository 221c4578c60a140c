// Package dispatch routes decoded push messages to the dashboard view and
// the notification center. It consumes the realtime manager's inbound channel
// and applies each variant's effect; frames that fail to decode are counted
// and logged without disturbing the connection they arrived on.
package dispatch
