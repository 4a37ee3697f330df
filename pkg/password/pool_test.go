package password

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type countingHasher struct {
	calls   atomic.Int32
	active  atomic.Int32
	maxSeen atomic.Int32
	delay   time.Duration
}

func (h *countingHasher) enter() {
	h.calls.Add(1)
	n := h.active.Add(1)
	for {
		m := h.maxSeen.Load()
		if n <= m || h.maxSeen.CompareAndSwap(m, n) {
			break
		}
	}
	time.Sleep(h.delay)
	h.active.Add(-1)
}

func (h *countingHasher) Hash(plaintext string) (string, error) {
	h.enter()
	return "hash:" + plaintext, nil
}

func (h *countingHasher) Verify(plaintext, hash string) bool {
	h.enter()
	return hash == "hash:"+plaintext
}

func TestPool_Verify(t *testing.T) {
	p := NewPool(&countingHasher{}, 2)
	ctx := context.Background()

	ok, err := p.Verify(ctx, "a", "hash:a")
	if err != nil || !ok {
		t.Errorf("Verify(match) = %v, %v; want true, nil", ok, err)
	}
	ok, err = p.Verify(ctx, "a", "hash:b")
	if err != nil || ok {
		t.Errorf("Verify(mismatch) = %v, %v; want false, nil", ok, err)
	}
}

func TestPool_CancelledContext(t *testing.T) {
	h := &countingHasher{}
	p := NewPool(h, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Hash(ctx, "a"); !errors.Is(err, context.Canceled) {
		t.Errorf("Hash error = %v, want context.Canceled", err)
	}
	if _, err := p.Verify(ctx, "a", "hash:a"); !errors.Is(err, context.Canceled) {
		t.Errorf("Verify error = %v, want context.Canceled", err)
	}
	if got := h.calls.Load(); got != 0 {
		t.Errorf("hasher called %d times after cancellation, want 0", got)
	}
}

func TestPool_BoundsConcurrency(t *testing.T) {
	h := &countingHasher{delay: 10 * time.Millisecond}
	p := NewPool(h, 2)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := p.Hash(context.Background(), "x"); err != nil {
				t.Errorf("Hash failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := h.maxSeen.Load(); got > 2 {
		t.Errorf("max concurrent hashes = %d, want <= 2", got)
	}
	if got := h.calls.Load(); got != 8 {
		t.Errorf("calls = %d, want 8", got)
	}
}

func TestPool_DefaultSize(t *testing.T) {
	if p := NewPool(&countingHasher{}, 0); p.Size() <= 0 {
		t.Errorf("Size() = %d, want > 0", p.Size())
	}
}
