package engine

import "sort"

// FrameID identifies a scheduled frame callback. Zero means none.
type FrameID uint64

// FrameFunc receives the frame timestamp in milliseconds.
type FrameFunc func(now float64)

// Scheduler is the host's per-frame callback primitive.
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
	Now() float64
}

// FrameQueue is a Scheduler for hosts that pump frames themselves: callbacks
// requested now run on the next Fire.
type FrameQueue struct {
	clock   func() float64
	next    FrameID
	pending map[FrameID]FrameFunc
}

// NewFrameQueue returns a queue reading timestamps from clock.
func NewFrameQueue(clock func() float64) *FrameQueue {
	return &FrameQueue{
		clock:   clock,
		pending: make(map[FrameID]FrameFunc),
	}
}

// RequestFrame queues fn for the next Fire.
func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	q.next++
	q.pending[q.next] = fn
	return q.next
}

// CancelFrame drops a queued callback. Unknown ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	delete(q.pending, id)
}

// Now returns the current clock reading.
func (q *FrameQueue) Now() float64 {
	return q.clock()
}

// Pending returns the number of queued callbacks.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Fire runs every callback queued before the call, in request order, and
// returns how many ran. Callbacks requested while firing wait for the next
// Fire.
func (q *FrameQueue) Fire(now float64) int {
	if len(q.pending) == 0 {
		return 0
	}

	ids := make([]FrameID, 0, len(q.pending))
	for id := range q.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	due := q.pending
	q.pending = make(map[FrameID]FrameFunc)

	for _, id := range ids {
		due[id](now)
	}
	return len(ids)
}
