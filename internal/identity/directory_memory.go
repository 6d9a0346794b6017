package identity

import (
	"context"
	"sync"

	id "credlens/pkg/domain"
)

// MemoryDirectory keeps enrollments in process memory. Used in tests and
// local development runs.
type MemoryDirectory struct {
	mu   sync.RWMutex
	bvns map[id.UserID]id.BVN
}

func NewMemory() *MemoryDirectory {
	return &MemoryDirectory{bvns: make(map[id.UserID]id.BVN)}
}

func (d *MemoryDirectory) Lookup(_ context.Context, userID id.UserID) (id.BVN, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	bvn, ok := d.bvns[userID]
	if !ok {
		return "", ErrNoBVN
	}
	return bvn, nil
}

func (d *MemoryDirectory) Enroll(_ context.Context, userID id.UserID, bvn id.BVN) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bvns[userID] = bvn
	return nil
}
