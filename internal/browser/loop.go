package browser

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/cryogon/Rizumu/internal/logging"
	"github.com/cryogon/Rizumu/internal/rizumu"
)

// Gateway fetches listings from the library server.
type Gateway interface {
	FetchItems(ctx context.Context, category string) ([]rizumu.Item, error)
	FetchSongs(ctx context.Context, itemID int64) ([]rizumu.Song, error)
}

// Renderer draws a snapshot. Render is called from the Loop goroutine and
// must not block.
type Renderer interface {
	Render(Snapshot)
}

// DefaultEventBuffer is the capacity of the Loop's event queue.
const DefaultEventBuffer = 64

// Loop is the single consumer of the event stream. It owns the Machine and
// runs fetches in the background so input stays responsive.
type Loop struct {
	machine  *Machine
	gateway  Gateway
	renderer Renderer
	events   chan Event
	wg       sync.WaitGroup
}

// NewLoop wires a Loop. buffer sizes the event queue; values below one use
// DefaultEventBuffer.
func NewLoop(m *Machine, g Gateway, r Renderer, buffer int) *Loop {
	if buffer < 1 {
		buffer = DefaultEventBuffer
	}
	return &Loop{
		machine:  m,
		gateway:  g,
		renderer: r,
		events:   make(chan Event, buffer),
	}
}

// Events is the channel producers send into.
func (l *Loop) Events() chan<- Event {
	return l.events
}

// Run dispatches events until a quit key (nil) or ctx cancellation
// (ctx.Err()). In-flight fetches are cancelled and awaited before returning.
func (l *Loop) Run(ctx context.Context) error {
	if l.machine == nil || l.gateway == nil || l.renderer == nil {
		return errors.New("loop is missing a machine, gateway or renderer")
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		l.wg.Wait()
	}()

	l.renderer.Render(l.machine.Snapshot())
	l.dispatch(runCtx, l.machine.Start())
	l.renderer.Render(l.machine.Snapshot())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-l.events:
			eff := l.machine.Apply(ev)
			if eff.Quit {
				logging.Debug("quit requested")
				return nil
			}
			if eff.Discarded {
				logging.Debug("discarding stale result",
					zap.Stringer("kind", ev.Kind),
					zap.Uint64("seq", ev.Seq),
				)
			}
			l.dispatch(runCtx, eff)
			l.renderer.Render(l.machine.Snapshot())
		}
	}
}

func (l *Loop) dispatch(ctx context.Context, eff Effect) {
	if eff.Fetch == nil {
		return
	}
	req := *eff.Fetch
	l.wg.Add(1)
	go l.fetch(ctx, req)
}

func (l *Loop) fetch(ctx context.Context, req FetchRequest) {
	defer l.wg.Done()

	ev := Event{Seq: req.Seq}
	switch req.Kind {
	case FetchItems:
		ev.Kind = EventItemsLoaded
		logging.Debug("fetching items", zap.String("category", req.Category), zap.Uint64("seq", req.Seq))
		ev.Items, ev.Err = l.gateway.FetchItems(ctx, req.Category)
	case FetchSongs:
		ev.Kind = EventSongsLoaded
		logging.Debug("fetching songs", zap.Int64("item_id", req.ItemID), zap.Uint64("seq", req.Seq))
		ev.Songs, ev.Err = l.gateway.FetchSongs(ctx, req.ItemID)
	default:
		return
	}

	if ctx.Err() != nil {
		return
	}
	if ev.Err != nil {
		logging.Warn("fetch failed",
			zap.Stringer("kind", ev.Kind),
			zap.Uint64("seq", req.Seq),
			zap.Error(ev.Err),
		)
	}

	select {
	case l.events <- ev:
	case <-ctx.Done():
	}
}
