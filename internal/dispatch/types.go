package dispatch

// Sounder plays a named alert sound. Playback is best effort: a failing or
// absent sound device never blocks message handling.
type Sounder interface {
	Play(name string) error
}

// AlertSound is the sound requested for price alerts.
const AlertSound = "price-alert"

// RouterStats contains runtime statistics.
type RouterStats struct {
	Received        int64
	Dispatched      int64
	ParseErrors     int64
	UnknownMessages int64
}
