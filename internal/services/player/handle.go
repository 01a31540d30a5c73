// Package player adapts an embedded video player behind a narrow Handle
// interface: position polling, transport controls and adaptive quality
// policy. The package owns none of the playback state machine; it mirrors
// the states the player reports.
package player

// State mirrors the embedded player's own state machine:
// unstarted → buffering ⇄ playing ⇄ paused → ended.
type State int

const (
	StateUnstarted State = iota
	StateBuffering
	StatePlaying
	StatePaused
	StateEnded
)

// String returns the lowercase state name
func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "unstarted"
	case StateBuffering:
		return "buffering"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Quality is the playback quality hint passed to the player. The player is
// free to ignore it.
type Quality string

const (
	QualityAuto   Quality = "auto"
	QualityLow    Quality = "small"
	QualityMedium Quality = "medium"
	QualityHigh   Quality = "hd720"
)

// Handle is the surface of the embedded player instance. Exactly one
// Session owns a Handle; ownership is handed over at construction and never
// shared.
type Handle interface {
	CurrentTime() (float64, error)
	Duration() (float64, error)
	State() State

	Play() error
	Pause() error
	SeekTo(seconds float64) error

	Volume() int // 0-100
	SetVolume(percent int) error
	Muted() bool
	SetMuted(muted bool) error

	SetQuality(q Quality) error
}
