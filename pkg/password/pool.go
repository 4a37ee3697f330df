package password

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// Pool runs a Hasher on a bounded number of slots so that bursts of logins
// queue for CPU instead of starving unrelated requests.
type Pool struct {
	hasher Hasher
	slots  *semaphore.Weighted
	size   int
}

// NewPool wraps h. A size <= 0 uses runtime.NumCPU().
func NewPool(h Hasher, size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	return &Pool{
		hasher: h,
		slots:  semaphore.NewWeighted(int64(size)),
		size:   size,
	}
}

// Size returns the number of concurrent hashing slots.
func (p *Pool) Size() int {
	return p.size
}

// Hash hashes plaintext once a slot is free. Hasher errors propagate unchanged.
func (p *Pool) Hash(ctx context.Context, plaintext string) (string, error) {
	if err := p.slots.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer p.slots.Release(1)

	hash, err := p.hasher.Hash(plaintext)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return hash, nil
}

// Verify checks plaintext against hash once a slot is free.
// The only possible error is the context's; a mismatch is (false, nil).
func (p *Pool) Verify(ctx context.Context, plaintext, hash string) (bool, error) {
	if err := p.slots.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer p.slots.Release(1)

	ok := p.hasher.Verify(plaintext, hash)
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return ok, nil
}
