package player

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStartAppliesQualityHint(t *testing.T) {
	handle := newFakeHandle(300)
	session := NewSession(handle, Config{
		Battery:      stubBattery{BatteryStatus{Level: 0.1, Charging: false}, true},
		PollInterval: 10 * time.Millisecond,
	})
	defer session.Close()

	autoplay, err := session.Start()
	require.NoError(t, err)
	assert.False(t, autoplay)
	assert.Equal(t, QualityLow, handle.quality)
}

func TestSessionAutoplayWithoutSignals(t *testing.T) {
	handle := newFakeHandle(300)
	session := NewSession(handle, Config{PollInterval: 10 * time.Millisecond})
	defer session.Close()

	autoplay, err := session.Start()
	require.NoError(t, err)
	assert.True(t, autoplay)
	assert.Equal(t, QualityAuto, handle.quality)
}

func TestSessionSeekToTimestampUsesExactTime(t *testing.T) {
	handle := newFakeHandle(300)
	handle.setPosition(250)
	session := NewSession(handle, Config{PollInterval: 10 * time.Millisecond})
	defer session.Close()

	require.NoError(t, session.SeekToTimestamp(83.5))
	got, ok := handle.lastSeek()
	require.True(t, ok)
	assert.Equal(t, 83.5, got)
}

func TestSessionNearTimestamp(t *testing.T) {
	handle := newFakeHandle(300)
	handle.setPosition(62)
	session := NewSession(handle, Config{PollInterval: 5 * time.Millisecond})
	defer session.Close()

	_, err := session.Start()
	require.NoError(t, err)
	waitFor(t, func() bool {
		pos, _ := session.Position()
		return pos == 62
	})

	assert.True(t, session.NearTimestamp(62))
	assert.True(t, session.NearTimestamp(60))
	assert.True(t, session.NearTimestamp(67))
	assert.False(t, session.NearTimestamp(67.5))
	assert.False(t, session.NearTimestamp(50))
}

func TestSessionMirrorsStateChanges(t *testing.T) {
	handle := newFakeHandle(300)

	var mu sync.Mutex
	var transitions []State
	session := NewSession(handle, Config{
		PollInterval: 5 * time.Millisecond,
		OnStateChange: func(s State) {
			mu.Lock()
			transitions = append(transitions, s)
			mu.Unlock()
		},
	})
	defer session.Close()

	_, err := session.Start()
	require.NoError(t, err)

	handle.setState(StatePlaying)
	waitFor(t, func() bool { return session.State() == StatePlaying })

	handle.setState(StateEnded)
	waitFor(t, func() bool { return session.State() == StateEnded })

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []State{StatePlaying, StateEnded}, transitions)
}

func TestSessionMobileControlsAutoHide(t *testing.T) {
	handle := newFakeHandle(300)
	handle.setState(StatePlaying)

	session := NewSession(handle, Config{
		Mobile:        true,
		PollInterval:  5 * time.Millisecond,
		AutoHideDelay: 30 * time.Millisecond,
	})
	defer session.Close()

	_, err := session.Start()
	require.NoError(t, err)
	require.True(t, session.ControlsVisible())

	session.Interact()
	waitFor(t, func() bool { return !session.ControlsVisible() })

	// The next tap brings them back and restarts the countdown
	session.Interact()
	assert.True(t, session.ControlsVisible())
	waitFor(t, func() bool { return !session.ControlsVisible() })
}

func TestSessionControlsStayWhilePaused(t *testing.T) {
	handle := newFakeHandle(300)
	handle.setState(StatePaused)

	session := NewSession(handle, Config{
		Mobile:        true,
		PollInterval:  5 * time.Millisecond,
		AutoHideDelay: 20 * time.Millisecond,
	})
	defer session.Close()

	_, err := session.Start()
	require.NoError(t, err)

	session.Interact()
	time.Sleep(60 * time.Millisecond)
	assert.True(t, session.ControlsVisible())
}

func TestSessionDesktopControlsAlwaysVisible(t *testing.T) {
	session := NewSession(newFakeHandle(300), Config{PollInterval: 10 * time.Millisecond})
	defer session.Close()

	session.Interact()
	assert.True(t, session.ControlsVisible())
}

func TestSessionCloseStopsSampling(t *testing.T) {
	handle := newFakeHandle(300)
	recorder := &sampleRecorder{}

	session := NewSession(handle, Config{
		PollInterval: 5 * time.Millisecond,
		OnSample:     recorder.record,
	})

	_, err := session.Start()
	require.NoError(t, err)
	waitFor(t, func() bool { return recorder.count() >= 1 })

	session.Close()
	session.Close()

	settled := recorder.count()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, settled, recorder.count())
}
