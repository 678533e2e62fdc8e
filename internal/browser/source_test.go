package browser

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedPoller struct {
	keys []Key
	err  error
}

func (p *scriptedPoller) Poll(_ context.Context, _ time.Duration) (Key, bool, error) {
	if len(p.keys) > 0 {
		k := p.keys[0]
		p.keys = p.keys[1:]
		if k == KeyNone {
			return KeyNone, false, nil
		}
		return k, true, nil
	}
	return KeyNone, false, p.err
}

func TestSourceEmitsInputAndTick(t *testing.T) {
	poller := &scriptedPoller{
		keys: []Key{KeyNext, KeyNone, KeyActivate},
		err:  errors.New("terminal gone"),
	}
	out := make(chan Event, 8)
	src := &Source{Poller: poller, Window: time.Millisecond}

	err := src.Run(context.Background(), out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal gone")

	close(out)
	var got []Event
	for ev := range out {
		got = append(got, ev)
	}
	assert.Equal(t, []Event{InputEvent(KeyNext), TickEvent(), InputEvent(KeyActivate)}, got)
}

func TestSourceIdleTicks(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1100*time.Millisecond)
	defer cancel()

	out := make(chan Event, 16)
	src := &Source{Poller: NewChanPoller(1)}
	err := src.Run(ctx, out)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(out)
	ticks := 0
	for ev := range out {
		assert.Equal(t, EventTick, ev.Kind)
		ticks++
	}
	assert.GreaterOrEqual(t, ticks, 3)
}

func TestSourceWithoutPoller(t *testing.T) {
	src := &Source{}
	assert.Error(t, src.Run(context.Background(), make(chan Event)))
}

func TestChanPollerDeliversPushedKeys(t *testing.T) {
	p := NewChanPoller(4)
	ctx := context.Background()

	require.NoError(t, p.Push(ctx, KeyLeft))
	require.NoError(t, p.Push(ctx, KeyActivate))

	k, ok, err := p.Poll(ctx, time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, KeyLeft, k)

	k, ok, err = p.Poll(ctx, time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, KeyActivate, k)

	_, ok, err = p.Poll(ctx, 10*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChanPollerClose(t *testing.T) {
	p := NewChanPoller(1)
	ctx := context.Background()
	require.NoError(t, p.Push(ctx, KeyQuit))
	p.Close()
	p.Close()

	k, ok, err := p.Poll(ctx, time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, KeyQuit, k)

	_, _, err = p.Poll(ctx, time.Second)
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.ErrorIs(t, p.Push(ctx, KeyNext), ErrInputClosed)
}

func TestChanPollerPushHonoursContext(t *testing.T) {
	p := NewChanPoller(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Push(ctx, KeyNext), context.Canceled)
}

func TestSourceFailsWhenInputCloses(t *testing.T) {
	p := NewChanPoller(0)
	p.Close()
	src := &Source{Poller: p, Window: 10 * time.Millisecond}
	err := src.Run(context.Background(), make(chan Event, 1))
	assert.ErrorIs(t, err, ErrInputClosed)
}
