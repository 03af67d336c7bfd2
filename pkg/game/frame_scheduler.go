package game

import (
	"sync"
	"time"
)

// FrameCallback receives the timestamp of the frame it runs in.
type FrameCallback func(now time.Time)

// FrameScheduler is a one-shot per-frame callback queue, the equivalent of
// requestAnimationFrame on top of the Ebitengine tick.
//
// A callback requested while RunFrame is executing is deferred to the next
// RunFrame, so a callback that re-requests itself runs exactly once per frame.
type FrameScheduler struct {
	mu      sync.Mutex
	nextID  int
	pending map[int]FrameCallback
	order   []int
}

// NewFrameScheduler creates an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{
		pending: make(map[int]FrameCallback),
	}
}

// RequestFrame schedules cb for the next RunFrame and returns a handle for
// CancelFrame. Handles are never 0.
func (fs *FrameScheduler) RequestFrame(cb FrameCallback) int {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.nextID++
	id := fs.nextID
	fs.pending[id] = cb
	fs.order = append(fs.order, id)
	return id
}

// CancelFrame drops a pending callback. Unknown or already-run handles are ignored.
func (fs *FrameScheduler) CancelFrame(id int) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	delete(fs.pending, id)
}

// Pending returns the number of callbacks waiting for the next frame.
func (fs *FrameScheduler) Pending() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.pending)
}

// RunFrame runs every callback requested before this call, in request order.
// Returns how many callbacks ran.
func (fs *FrameScheduler) RunFrame(now time.Time) int {
	fs.mu.Lock()
	order := fs.order
	fs.order = nil
	batch := make([]FrameCallback, 0, len(order))
	for _, id := range order {
		if cb, ok := fs.pending[id]; ok {
			batch = append(batch, cb)
			delete(fs.pending, id)
		}
	}
	fs.mu.Unlock()

	// 回调在锁外执行，回调内可以再次 RequestFrame
	for _, cb := range batch {
		cb(now)
	}
	return len(batch)
}
