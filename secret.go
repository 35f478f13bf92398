package mpw

import (
	"runtime"
	"sync"
)

// secret owns a fixed-size buffer of key material. The mutex makes copies
// of the enclosing handle a vet error.
type secret struct {
	mu     sync.RWMutex
	b      []byte
	locked bool
}

func (s *secret) init(b []byte) {
	s.b = b
	s.locked = lockMemory(b)
}

// view runs fn with the buffer under a read lock. fn must not retain b.
func (s *secret) view(fn func(b []byte) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.b == nil {
		return ErrReleased
	}
	return fn(s.b)
}

func (s *secret) release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.b == nil {
		return ErrReleased
	}

	Wipe(s.b)
	if s.locked {
		unlockMemory(s.b)
	}
	s.b = nil
	s.locked = false
	return nil
}

// Wipe overwrites b with zeros. Callers use it on master passwords they
// passed to DeriveMasterKey.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
