package player

import (
	"fmt"
	"sync"
)

// SkipStep is the relative skip distance in seconds
const SkipStep = 10.0

// FullscreenController abstracts the container's fullscreen capability.
// Exit can also happen externally (the browser's Escape handling), which is
// reported back through Transport.FullscreenChanged.
type FullscreenController interface {
	Enter() error
	Exit() error
}

// Transport translates UI gestures into calls on the player handle: toggle,
// absolute and relative seeks, volume coupled to mute state, and fullscreen
// tracking.
type Transport struct {
	handle Handle
	fs     FullscreenController

	mu         sync.Mutex
	preMuteVol int
	fullscreen bool
}

// NewTransport creates a transport over the handle. fs may be nil when the
// container has no fullscreen capability.
func NewTransport(handle Handle, fs FullscreenController) *Transport {
	return &Transport{handle: handle, fs: fs, preMuteVol: 100}
}

// TogglePlay reads the current playing flag and invokes the complement
func (t *Transport) TogglePlay() error {
	if t.handle.State() == StatePlaying {
		return t.handle.Pause()
	}
	return t.handle.Play()
}

// SeekTo seeks to an absolute position, clamped to [0, duration]
func (t *Transport) SeekTo(seconds float64) error {
	return t.handle.SeekTo(t.clamp(seconds))
}

// Skip seeks relative to the current position, clamped to [0, duration].
// Positive steps skip forward.
func (t *Transport) Skip(delta float64) error {
	position, err := t.handle.CurrentTime()
	if err != nil {
		return fmt.Errorf("reading position for skip: %w", err)
	}
	return t.handle.SeekTo(t.clamp(position + delta))
}

// SkipForward skips ahead by SkipStep seconds
func (t *Transport) SkipForward() error { return t.Skip(SkipStep) }

// SkipBack skips back by SkipStep seconds
func (t *Transport) SkipBack() error { return t.Skip(-SkipStep) }

// SetVolume sets the volume (0-100). Volume zero implies muted; raising the
// volume from zero unmutes.
func (t *Transport) SetVolume(percent int) error {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	if err := t.handle.SetVolume(percent); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if percent == 0 {
		return t.handle.SetMuted(true)
	}
	t.preMuteVol = percent
	if t.handle.Muted() {
		return t.handle.SetMuted(false)
	}
	return nil
}

// ToggleMute mutes, or unmutes restoring the pre-mute volume
func (t *Transport) ToggleMute() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.handle.Muted() {
		if err := t.handle.SetMuted(false); err != nil {
			return err
		}
		restore := t.preMuteVol
		if restore == 0 {
			restore = 100
		}
		return t.handle.SetVolume(restore)
	}

	if vol := t.handle.Volume(); vol > 0 {
		t.preMuteVol = vol
	}
	return t.handle.SetMuted(true)
}

// ToggleFullscreen enters or exits fullscreen on the container
func (t *Transport) ToggleFullscreen() error {
	if t.fs == nil {
		return nil
	}

	t.mu.Lock()
	active := t.fullscreen
	t.mu.Unlock()

	var err error
	if active {
		err = t.fs.Exit()
	} else {
		err = t.fs.Enter()
	}
	if err != nil {
		return err
	}
	t.FullscreenChanged(!active)
	return nil
}

// FullscreenChanged records a fullscreen state change. Called both from
// ToggleFullscreen and by the owner when the exit was triggered externally.
func (t *Transport) FullscreenChanged(active bool) {
	t.mu.Lock()
	t.fullscreen = active
	t.mu.Unlock()
}

// Fullscreen reports the tracked fullscreen state
func (t *Transport) Fullscreen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fullscreen
}

// clamp bounds a position to [0, duration]; an unknown duration only
// enforces the lower bound
func (t *Transport) clamp(seconds float64) float64 {
	if seconds < 0 {
		return 0
	}
	duration, err := t.handle.Duration()
	if err != nil || duration <= 0 {
		return seconds
	}
	if seconds > duration {
		return duration
	}
	return seconds
}
