// worker/slot.go
package worker

import "sync/atomic"

// Slot admits at most one in-flight operation. Callers that fail to
// acquire it report busy instead of queueing.
type Slot struct {
	busy atomic.Bool
}

// TryAcquire claims the slot. It returns false if another operation
// already holds it.
func (s *Slot) TryAcquire() bool {
	return s.busy.CompareAndSwap(false, true)
}

// Release frees the slot for the next caller.
func (s *Slot) Release() {
	s.busy.Store(false)
}
