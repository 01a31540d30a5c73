package player

import (
	"math"
	"sync"
	"time"
)

// DefaultAutoHideDelay is how long controls remain visible on a touch
// layout after the last interaction while playing
const DefaultAutoHideDelay = 3 * time.Second

// Config carries the session's collaborators and tuning. Zero values fall
// back to sensible defaults.
type Config struct {
	Battery             BatteryProvider
	Network             NetworkProvider
	Fullscreen          FullscreenController
	ConstrainedViewport bool

	PollInterval  time.Duration
	AutoHideDelay time.Duration
	Mobile        bool

	// OnSample fires for every position sample, in order
	OnSample func(Sample)
	// OnStateChange fires when the mirrored player state changes
	OnStateChange func(State)
	// OnControlsVisible fires when the touch controls show or auto-hide
	OnControlsVisible func(bool)
}

// Session owns one player handle for its lifetime. It composes the position
// poller, the transport surface and the adaptive policy, and mirrors the
// player's reported state. Close releases everything; the session must not
// be used afterwards.
type Session struct {
	*Transport

	handle Handle
	policy *Policy
	poller *Poller
	config Config

	mu        sync.Mutex
	state     State
	lastPos   float64
	lastDur   float64
	controls  bool
	hideTimer *time.Timer
	closed    bool
}

// NewSession wires a session around the handle. The caller hands the handle
// over and must not drive it directly afterwards.
func NewSession(handle Handle, config Config) *Session {
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultPollInterval
	}
	if config.AutoHideDelay <= 0 {
		config.AutoHideDelay = DefaultAutoHideDelay
	}

	s := &Session{
		handle:    handle,
		policy:    NewPolicy(config.Battery, config.Network, config.ConstrainedViewport),
		config:    config,
		state:     handle.State(),
		controls:  true,
		Transport: NewTransport(handle, config.Fullscreen),
	}
	s.poller = NewPoller(handle, s.policy.PollInterval(config.PollInterval), s.onSample)
	return s
}

// Start applies the quality hint and begins position sampling. It returns
// whether autoplay is permitted under the current power conditions; the
// caller decides whether to act on it.
func (s *Session) Start() (autoplay bool, err error) {
	if err := s.handle.SetQuality(s.policy.QualityHint()); err != nil {
		return false, err
	}
	s.poller.Start()
	return s.policy.AllowAutoplay(), nil
}

// Policy exposes the session's adaptive policy
func (s *Session) Policy() *Policy { return s.policy }

// State returns the last mirrored player state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Position returns the last sampled position and duration
func (s *Session) Position() (position, duration float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPos, s.lastDur
}

// SeekToTimestamp seeks to exactly the stored moment of a bookmark or link
func (s *Session) SeekToTimestamp(seconds float64) error {
	return s.SeekTo(seconds)
}

// NearTimestamp reports whether the last sampled position is within the
// highlight window of the given moment
func (s *Session) NearTimestamp(seconds float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return math.Abs(s.lastPos-seconds) <= nearThresholdSecond
}

// Interact shows the touch controls and restarts the auto-hide countdown.
// On non-mobile layouts controls are always visible and this is a no-op.
func (s *Session) Interact() {
	if !s.config.Mobile {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	changed := s.setControlsLocked(true)
	if s.hideTimer != nil {
		s.hideTimer.Stop()
		s.hideTimer = nil
	}
	// Controls only auto-hide while playback runs; a paused player keeps
	// them on screen
	if s.state == StatePlaying {
		s.hideTimer = time.AfterFunc(s.config.AutoHideDelay, s.autoHide)
	}
	s.mu.Unlock()

	if changed {
		s.notifyControls(true)
	}
}

// ControlsVisible reports the touch-control visibility. Always true on
// non-mobile layouts.
func (s *Session) ControlsVisible() bool {
	if !s.config.Mobile {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controls
}

// Close stops the poller and any pending timers. Idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.hideTimer != nil {
		s.hideTimer.Stop()
		s.hideTimer = nil
	}
	s.mu.Unlock()

	s.poller.Stop()
}

func (s *Session) onSample(sample Sample) {
	s.mu.Lock()
	s.lastPos = sample.Position
	s.lastDur = sample.Duration
	previous := s.state
	current := s.handle.State()
	s.state = current
	s.mu.Unlock()

	if s.config.OnSample != nil {
		s.config.OnSample(sample)
	}
	if current != previous {
		s.stateChanged(previous, current)
	}

	// Low-power conditions can change mid-session; keep the sampling rate
	// aligned with the policy
	s.poller.SetInterval(s.policy.PollInterval(s.config.PollInterval))
}

func (s *Session) stateChanged(previous, current State) {
	if s.config.OnStateChange != nil {
		s.config.OnStateChange(current)
	}
	if !s.config.Mobile {
		return
	}
	// Leaving the playing state cancels the countdown and pins the controls
	if previous == StatePlaying && current != StatePlaying {
		s.mu.Lock()
		if s.hideTimer != nil {
			s.hideTimer.Stop()
			s.hideTimer = nil
		}
		changed := s.setControlsLocked(true)
		s.mu.Unlock()
		if changed {
			s.notifyControls(true)
		}
	}
}

func (s *Session) autoHide() {
	s.mu.Lock()
	if s.closed || s.state != StatePlaying {
		s.mu.Unlock()
		return
	}
	changed := s.setControlsLocked(false)
	s.mu.Unlock()
	if changed {
		s.notifyControls(false)
	}
}

// setControlsLocked updates visibility; callers hold s.mu and notify on a
// true return after releasing it
func (s *Session) setControlsLocked(visible bool) bool {
	if s.controls == visible {
		return false
	}
	s.controls = visible
	return true
}

func (s *Session) notifyControls(visible bool) {
	if s.config.OnControlsVisible != nil {
		s.config.OnControlsVisible(visible)
	}
}
