package notify

import (
	"sync"
	"testing"
)

func TestRingPushNext(t *testing.T) {
	r := NewRing[int](4)

	for i := 0; i < 3; i++ {
		if !r.Push(i) {
			t.Fatalf("Push(%d) returned false", i)
		}
	}

	for i := 0; i < 3; i++ {
		got, ok := r.Next()
		if !ok || got != i {
			t.Errorf("Next() = %d,%v, want %d,true", got, ok, i)
		}
	}
}

func TestRingGrows(t *testing.T) {
	r := NewRing[int](2)

	for i := 0; i < 100; i++ {
		if !r.Push(i) {
			t.Fatalf("Push(%d) returned false", i)
		}
	}

	if r.Len() != 100 {
		t.Errorf("Len() = %d, want 100", r.Len())
	}
	if r.Cap() < 100 {
		t.Errorf("Cap() = %d, want >= 100", r.Cap())
	}

	// FIFO order survives growth.
	for i := 0; i < 100; i++ {
		got, ok := r.TryNext()
		if !ok || got != i {
			t.Fatalf("TryNext() = %d,%v, want %d,true", got, ok, i)
		}
	}
}

func TestRingGrowsWhileWrapped(t *testing.T) {
	r := NewRing[int](4)

	// Advance head so the live region wraps before growing.
	r.Push(0)
	r.Push(1)
	r.TryNext()
	r.TryNext()

	for i := 2; i < 20; i++ {
		r.Push(i)
	}

	for i := 2; i < 20; i++ {
		got, ok := r.TryNext()
		if !ok || got != i {
			t.Fatalf("TryNext() = %d,%v, want %d,true", got, ok, i)
		}
	}
}

func TestRingClose(t *testing.T) {
	r := NewRing[string](4)
	r.Push("pending")
	r.Close()

	if r.Push("late") {
		t.Error("Push after Close should return false")
	}

	// Pending items remain readable after close.
	got, ok := r.Next()
	if !ok || got != "pending" {
		t.Errorf("Next() = %q,%v, want pending,true", got, ok)
	}

	if _, ok := r.Next(); ok {
		t.Error("Next() on drained closed ring should return false")
	}
}

func TestRingCloseUnblocksWaiters(t *testing.T) {
	r := NewRing[int](4)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, ok := r.Next(); ok {
			t.Error("Next() should report closed")
		}
	}()

	r.Close()
	<-done
}

func TestRingConcurrentPush(t *testing.T) {
	r := NewRing[int](1)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				r.Push(i)
			}
		}()
	}
	wg.Wait()

	if r.Len() != 1600 {
		t.Errorf("Len() = %d, want 1600", r.Len())
	}
}
