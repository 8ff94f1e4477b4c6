package frame

import (
	"context"
	"time"
)

// Drive ticks q every interval until ctx is done. Functions received on
// inbox run on the same goroutine as the ticks, which is how input from
// other goroutines reaches the animation state. A nil inbox is allowed.
func Drive(ctx context.Context, q *Queue, interval time.Duration, inbox <-chan func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn, ok := <-inbox:
			if !ok {
				inbox = nil
				continue
			}
			fn()
		case <-ticker.C:
			// select выбирает случайно, если готовы оба канала
			if err := ctx.Err(); err != nil {
				return err
			}
			q.Tick()
		}
	}
}

// DriveFrames ticks q n times, one tick per interval, then returns nil.
// It stops early with the context error if ctx is done first.
func DriveFrames(ctx context.Context, q *Queue, n int, interval time.Duration) error {
	if n <= 0 {
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ticks := 0
	var count Callback
	count = func() {
		ticks++
		if ticks >= n {
			cancel()
			return
		}
		q.Request(count)
	}
	q.Request(count)

	err := Drive(ctx, q, interval, nil)
	if ticks >= n {
		return nil
	}
	return err
}
