package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// DefaultPollWindow is how long the Source waits for a key before emitting a Tick.
const DefaultPollWindow = 250 * time.Millisecond

// ErrInputClosed is returned by ChanPoller once the producer side is closed.
var ErrInputClosed = errors.New("input closed")

// KeyPoller waits up to timeout for one decoded key. ok is false when the
// window elapsed without input.
type KeyPoller interface {
	Poll(ctx context.Context, timeout time.Duration) (k Key, ok bool, err error)
}

// Source turns a KeyPoller into the event stream: an Input event for every
// key and a Tick for every quiet window.
type Source struct {
	Poller KeyPoller
	Window time.Duration
}

// Run emits events into out until ctx ends or polling fails. A poll failure
// is returned to the caller and ends the stream.
func (s *Source) Run(ctx context.Context, out chan<- Event) error {
	if s == nil || s.Poller == nil {
		return errors.New("event source has no poller")
	}
	window := s.Window
	if window <= 0 {
		window = DefaultPollWindow
	}

	for {
		k, ok, err := s.Poller.Poll(ctx, window)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("poll input: %w", err)
		}

		ev := TickEvent()
		if ok {
			ev = InputEvent(k)
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// ChanPoller is a KeyPoller fed by another goroutine, typically the terminal
// front end that owns raw key decoding.
type ChanPoller struct {
	keys chan Key
	done chan struct{}
	once sync.Once
}

// NewChanPoller returns a poller that buffers up to buffer pending keys.
func NewChanPoller(buffer int) *ChanPoller {
	if buffer < 0 {
		buffer = 0
	}
	return &ChanPoller{
		keys: make(chan Key, buffer),
		done: make(chan struct{}),
	}
}

// Push hands a key to the poller. It blocks while the buffer is full and
// gives up when ctx ends or the poller is closed.
func (p *ChanPoller) Push(ctx context.Context, k Key) error {
	select {
	case <-p.done:
		return ErrInputClosed
	default:
	}
	select {
	case p.keys <- k:
		return nil
	case <-p.done:
		return ErrInputClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close marks the input as gone. Subsequent polls fail with ErrInputClosed.
func (p *ChanPoller) Close() {
	p.once.Do(func() { close(p.done) })
}

// Poll implements KeyPoller.
func (p *ChanPoller) Poll(ctx context.Context, timeout time.Duration) (Key, bool, error) {
	// Buffered keys win over a pending close.
	select {
	case k := <-p.keys:
		return k, true, nil
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case k := <-p.keys:
		return k, true, nil
	case <-p.done:
		return KeyNone, false, ErrInputClosed
	case <-ctx.Done():
		return KeyNone, false, ctx.Err()
	case <-timer.C:
		return KeyNone, false, nil
	}
}

var _ KeyPoller = (*ChanPoller)(nil)
