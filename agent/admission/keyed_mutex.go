package admission

import "sync"

// KeyedMutex serializes work per key. The orchestrator uses it to enforce
// the single-flight-per-conversation discipline: two turns for the same
// sender never interleave their read-modify-write sequences.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*keyLock)}
}

// Lock blocks until the key is free and returns the matching unlock. Lock
// entries are reference counted and removed once the last holder releases,
// so memory stays bounded by in-flight keys.
func (k *KeyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	entry, ok := k.locks[key]
	if !ok {
		entry = &keyLock{}
		k.locks[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		k.mu.Lock()
		entry.refs--
		if entry.refs <= 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
