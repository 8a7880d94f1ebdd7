package worker

import (
	"sync"
	"testing"
)

func TestSlot_SingleAdmission(t *testing.T) {
	var s Slot

	if !s.TryAcquire() {
		t.Fatal("expected first acquire to succeed")
	}
	if s.TryAcquire() {
		t.Fatal("expected second acquire to fail while held")
	}

	s.Release()
	if !s.TryAcquire() {
		t.Fatal("expected acquire to succeed after release")
	}
}

func TestSlot_ConcurrentAcquire(t *testing.T) {
	var s Slot
	var wg sync.WaitGroup

	wins := make(chan struct{}, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.TryAcquire() {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	if count != 1 {
		t.Fatalf("expected exactly one winner, got %d", count)
	}
}
