package parameter

import "time"

// Game Loop Timing
const (
	// TickRate is the fixed logical simulation rate
	TickRate = 60

	// TickInterval is the wall time between simulation ticks (~60 Hz)
	TickInterval = time.Second / TickRate

	// EscapeExitWindow is the maximum gap between two escape presses that exits
	EscapeExitWindow = 500 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1
)
