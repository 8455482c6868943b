package event

import (
	"sync/atomic"

	"github.com/lixenwraith/pong/parameter"
)

// EventQueue is a fixed-size lock-free ring of game events
// Any goroutine may Push; exactly one goroutine (the frame loop) drains
// When full the oldest unread event is overwritten and counted as dropped
type EventQueue struct {
	slots [parameter.EventQueueSize]slot
	head  atomic.Uint64 // next sequence to read
	tail  atomic.Uint64 // next sequence to claim

	dropped atomic.Uint64
}

// slot pairs an event with its publish flag; readers skip slots still being written
type slot struct {
	ev    GameEvent
	ready atomic.Bool
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims the next sequence and publishes ev into it
func (q *EventQueue) Push(ev GameEvent) {
	seq := q.tail.Add(1) - 1
	s := &q.slots[seq&parameter.EventBufferMask]
	s.ev = ev
	s.ready.Store(true)

	// Reader fell a full ring behind: move it past the overwritten slot
	for {
		head := q.head.Load()
		if seq+1-head <= parameter.EventQueueSize {
			return
		}
		if q.head.CompareAndSwap(head, seq+1-parameter.EventQueueSize) {
			q.dropped.Add(1)
			return
		}
	}
}

// DrainInto appends all published events in FIFO order to dst and returns it
// Passing the previous frame's slice truncated to zero avoids per-frame allocation
func (q *EventQueue) DrainInto(dst []GameEvent) []GameEvent {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail-head > parameter.EventQueueSize {
		head = tail - parameter.EventQueueSize
	}

	for ; head < tail; head++ {
		s := &q.slots[head&parameter.EventBufferMask]
		if !s.ready.Load() {
			break // writer mid-publish; picked up next drain
		}
		dst = append(dst, s.ev)
		s.ev = GameEvent{}
		s.ready.Store(false)
	}
	q.head.Store(head)
	return dst
}

// Consume returns all pending events, nil when there are none
func (q *EventQueue) Consume() []GameEvent {
	events := q.DrainInto(nil)
	if len(events) == 0 {
		return nil
	}
	return events
}

// Len returns the approximate number of pending events
func (q *EventQueue) Len() int {
	pending := q.tail.Load() - q.head.Load()
	if int64(pending) < 0 {
		return 0
	}
	if pending > parameter.EventQueueSize {
		return parameter.EventQueueSize
	}
	return int(pending)
}

// Dropped returns how many events were overwritten before being drained
func (q *EventQueue) Dropped() uint64 {
	return q.dropped.Load()
}
