package app

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/cryogon/Rizumu/internal/browser"
	"github.com/cryogon/Rizumu/internal/logging"
)

// keyBuffer is how many key presses may queue between the UI and the source.
const keyBuffer = 64

// pipeline runs the event source and the dispatch loop in the background.
type pipeline struct {
	wg        sync.WaitGroup
	mu        sync.Mutex
	sourceErr error
	loopErr   error
}

// startPipeline launches the source and the loop. stop is called as soon as
// either one returns, so a quit key or a fatal poll error tears everything
// down. It returns immediately.
func startPipeline(ctx context.Context, source *browser.Source, loop *browser.Loop, stop func()) *pipeline {
	p := &pipeline{}
	p.wg.Add(2)

	go func() {
		defer p.wg.Done()
		defer stop()
		err := source.Run(ctx, loop.Events())
		if err != nil && ctx.Err() == nil {
			logging.Error("event source failed", zap.Error(err))
		}
		p.mu.Lock()
		p.sourceErr = err
		p.mu.Unlock()
	}()

	go func() {
		defer p.wg.Done()
		defer stop()
		err := loop.Run(ctx)
		if err == nil {
			logging.Info("quit requested")
		}
		p.mu.Lock()
		p.loopErr = err
		p.mu.Unlock()
	}()

	return p
}

// wait blocks until both goroutines returned and reports the first fatal
// error. Cancellation and a requested quit are not errors.
func (p *pipeline) wait() error {
	p.wg.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, err := range []error{p.sourceErr, p.loopErr} {
		if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			continue
		}
		return err
	}
	return nil
}
