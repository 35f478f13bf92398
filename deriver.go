package mpw

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Deriver bounds how many master key derivations run at once. Each one
// holds DerivationMemory bytes of scrypt state until it returns.
type Deriver struct {
	sem *semaphore.Weighted
}

// NewDeriver returns a Deriver that runs at most maxConcurrent derivations
// in parallel. Values below 1 are treated as 1.
func NewDeriver(maxConcurrent int64) *Deriver {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Deriver{sem: semaphore.NewWeighted(maxConcurrent)}
}

// DeriveMasterKey waits for a free slot, then behaves like the package
// level DeriveMasterKey. ctx only bounds the wait; a derivation that has
// started always runs to completion.
func (d *Deriver) DeriveMasterKey(ctx context.Context, fullName string, masterPassword []byte) (*MasterKey, error) {
	if err := d.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer d.sem.Release(1)

	return DeriveMasterKey(fullName, masterPassword)
}
