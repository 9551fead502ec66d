package core

import (
	"context"
	"sync"
)

// Locomotive drives one worker line: it takes inputs until inputCh closes
// or ctx ends, runs each through engine and forwards the first value engine
// emits to outCh. When ctx ends mid-flight the pending input goes to
// onCancel (if set). An engine must not block on send once ctx is done; a
// buffered channel of one is enough.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- Out,
	engine func(ctx context.Context, input In) <-chan Out,
	onCancel func(ctx context.Context, in In), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				cancelled(ctx, onCancel, in)
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					cancelled(ctx, onCancel, in)
					return
				}

				select {
				case <-ctx.Done():
					cancelled(ctx, onCancel, in)
					return
				case outCh <- pr:
				}
			}
		}
	}
}

// Run starts lines locomotives over the same input and merges their output.
// The returned channel closes once every line has stopped. Output order is
// not input order.
func Run[In, Out any](ctx context.Context, inputCh <-chan In,
	engine func(ctx context.Context, input In) <-chan Out,
	onCancel func(ctx context.Context, in In), lines int) <-chan Out {

	out := make(chan Out)
	wg := &sync.WaitGroup{}

	for range max(lines, 1) {
		wg.Add(1)
		go Locomotive(ctx, inputCh, out, engine, onCancel, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func cancelled[In any](ctx context.Context, onCancel func(ctx context.Context, in In), in In) {
	if onCancel != nil {
		onCancel(ctx, in)
	}
}
