package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type State uint8

const (
	Closed State = iota + 1
	Open
	HalfOpen
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	}
	return "unknown"
}

var ErrOpen = errors.New("circuit breaker is open")

type Config struct {
	// Window is the number of recent calls tracked while closed.
	Window int
	// FailureRatio of the window that opens the breaker.
	FailureRatio float64
	// Cooldown before an open breaker lets a probe call through.
	Cooldown time.Duration
	// Probes is the number of successful half-open calls needed to close.
	Probes int
}

type Breaker struct {
	mu       sync.Mutex
	cfg      Config
	state    State
	window   []bool
	pos      int
	openedAt time.Time
	probes   int
	inFlight int
	now      func() time.Time
}

func New(cfg Config) *Breaker {
	if cfg.Window <= 0 {
		cfg.Window = 1
	}
	if cfg.Probes <= 0 {
		cfg.Probes = 1
	}
	return &Breaker{
		cfg:    cfg,
		state:  Closed,
		window: make([]bool, cfg.Window),
		now:    time.Now,
	}
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Call runs fn unless the breaker is open and records its outcome. While
// half-open at most Probes calls run at a time; the rest get ErrOpen.
func (b *Breaker) Call(fn func() error) error {
	b.mu.Lock()
	if b.state == Open {
		if b.now().Sub(b.openedAt) < b.cfg.Cooldown {
			b.mu.Unlock()
			return ErrOpen
		}
		b.state = HalfOpen
		b.probes = 0
	}
	probe := b.state == HalfOpen
	if probe {
		if b.probes+b.inFlight >= b.cfg.Probes {
			b.mu.Unlock()
			return ErrOpen
		}
		b.inFlight++
	}
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()
	if probe {
		b.inFlight--
	}
	b.record(err != nil)
	return err
}

func (b *Breaker) record(failed bool) {
	switch b.state {
	case Open:
		// outcome of a call admitted before the breaker tripped
		return
	case HalfOpen:
		if failed {
			b.trip()
			return
		}
		if b.probes++; b.probes >= b.cfg.Probes {
			b.reset()
		}
		return
	}

	b.window[b.pos] = failed
	b.pos = (b.pos + 1) % len(b.window)
	fails := 0
	for _, f := range b.window {
		if f {
			fails++
		}
	}
	if float64(fails)/float64(len(b.window)) >= b.cfg.FailureRatio {
		b.trip()
	}
}

func (b *Breaker) trip() {
	b.state = Open
	b.openedAt = b.now()
	b.probes = 0
}

func (b *Breaker) reset() {
	for i := range b.window {
		b.window[i] = false
	}
	b.pos = 0
	b.probes = 0
	b.state = Closed
}
