// Package frame provides the per-frame callback primitive the animations
// are driven by, in the spirit of requestAnimationFrame.
package frame

// ID identifies a requested callback. Zero is never issued.
type ID uint64

// Callback runs once on the next frame.
type Callback func()

// Scheduler hands out one-shot frame callbacks.
type Scheduler interface {
	Request(cb Callback) ID
	Cancel(id ID)
}

// Queue is a Scheduler ticked by its host. Callbacks requested while a tick
// is running are deferred to the following tick, so a callback that
// re-requests itself runs exactly once per frame. Not safe for concurrent
// use: the host ticks it from its loop goroutine.
type Queue struct {
	next    ID
	pending map[ID]Callback
	order   []ID
	frames  uint64
}

func NewQueue() *Queue {
	return &Queue{pending: make(map[ID]Callback)}
}

func (q *Queue) Request(cb Callback) ID {
	q.next++
	id := q.next
	q.pending[id] = cb
	q.order = append(q.order, id)
	return id
}

// Cancel drops a pending callback. Unknown or already-run IDs are ignored.
func (q *Queue) Cancel(id ID) {
	delete(q.pending, id)
}

// Tick runs every callback that was pending when it started and returns
// how many ran.
func (q *Queue) Tick() int {
	q.frames++
	batch := q.order
	q.order = nil

	ran := 0
	for _, id := range batch {
		cb, ok := q.pending[id]
		if !ok {
			continue // отменён
		}
		delete(q.pending, id)
		cb()
		ran++
	}
	return ran
}

// Pending returns the number of callbacks waiting for the next tick.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Frames returns how many ticks have run.
func (q *Queue) Frames() uint64 {
	return q.frames
}
