package player

import (
	"sync"
	"time"
)

// DefaultPollInterval is the nominal position sampling rate
const DefaultPollInterval = time.Second

// Sample is one reading of the player's position
type Sample struct {
	Position float64
	Duration float64
	At       time.Time
}

// Poller periodically samples the player's current time and duration and
// forwards each sample to its listener. Samples are strictly time-ordered:
// one goroutine, one ticker, no reentrancy. Failed reads produce no sample
// for that tick.
type Poller struct {
	handle   Handle
	listener func(Sample)

	mu       sync.Mutex
	started  bool
	interval time.Duration
	reset    chan time.Duration
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewPoller creates a poller; interval <= 0 uses DefaultPollInterval
func NewPoller(handle Handle, interval time.Duration, listener func(Sample)) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		handle:   handle,
		listener: listener,
		interval: interval,
		reset:    make(chan time.Duration, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins sampling. Starting twice is a no-op.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true
	go p.run(p.interval)
}

// SetInterval changes the sampling rate, taking effect on the next tick.
// Used by the adaptive policy to relax polling under low power.
func (p *Poller) SetInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	p.mu.Lock()
	p.interval = interval
	started := p.started
	p.mu.Unlock()
	if !started {
		return
	}
	select {
	case p.reset <- interval:
	default:
		// A pending reset already carries a newer interval soon enough
	}
}

// Stop halts sampling and waits for the loop to exit. Idempotent.
func (p *Poller) Stop() {
	p.mu.Lock()
	started := p.started
	p.mu.Unlock()
	if !started {
		return
	}
	p.stopOnce.Do(func() {
		close(p.stop)
		<-p.done
	})
}

func (p *Poller) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer close(p.done)

	for {
		select {
		case <-ticker.C:
			p.sample()
		case d := <-p.reset:
			ticker.Reset(d)
		case <-p.stop:
			return
		}
	}
}

func (p *Poller) sample() {
	position, err := p.handle.CurrentTime()
	if err != nil {
		// Reads can fail transiently while the player rebuffers; skip the tick
		return
	}
	duration, err := p.handle.Duration()
	if err != nil {
		return
	}
	p.listener(Sample{Position: position, Duration: duration, At: time.Now()})
}
