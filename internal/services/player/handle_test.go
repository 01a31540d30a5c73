package player

import (
	"errors"
	"sync"
)

// fakeHandle is a scriptable in-memory player used across the package tests
type fakeHandle struct {
	mu       sync.Mutex
	position float64
	duration float64
	state    State
	volume   int
	muted    bool
	quality  Quality

	readErr   error
	seeks     []float64
	playCalls int
	pauses    int
}

func newFakeHandle(duration float64) *fakeHandle {
	return &fakeHandle{duration: duration, volume: 100, state: StateUnstarted}
}

func (f *fakeHandle) CurrentTime() (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return 0, f.readErr
	}
	return f.position, nil
}

func (f *fakeHandle) Duration() (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return 0, f.readErr
	}
	return f.duration, nil
}

func (f *fakeHandle) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeHandle) Play() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.playCalls++
	f.state = StatePlaying
	return nil
}

func (f *fakeHandle) Pause() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pauses++
	f.state = StatePaused
	return nil
}

func (f *fakeHandle) SeekTo(seconds float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seeks = append(f.seeks, seconds)
	f.position = seconds
	return nil
}

func (f *fakeHandle) Volume() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.volume
}

func (f *fakeHandle) SetVolume(percent int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.volume = percent
	return nil
}

func (f *fakeHandle) Muted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.muted
}

func (f *fakeHandle) SetMuted(muted bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.muted = muted
	return nil
}

func (f *fakeHandle) SetQuality(q Quality) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quality = q
	return nil
}

func (f *fakeHandle) setPosition(seconds float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.position = seconds
}

func (f *fakeHandle) setState(s State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = s
}

func (f *fakeHandle) setReadErr(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if on {
		f.readErr = errors.New("player not ready")
	} else {
		f.readErr = nil
	}
}

func (f *fakeHandle) lastSeek() (float64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.seeks) == 0 {
		return 0, false
	}
	return f.seeks[len(f.seeks)-1], true
}
