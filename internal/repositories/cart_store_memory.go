package repositories

import "sync"

// MemoryCartStore is an in-memory CartStore. Carts stored here do not survive
// a restart; it is the default when no database is configured, and what the
// service tests use.
type MemoryCartStore struct {
	blobs map[string][]byte
	mu    sync.RWMutex
}

// NewMemoryCartStore creates an empty in-memory cart store.
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{blobs: make(map[string][]byte)}
}

// Load returns the blob stored under key.
func (s *MemoryCartStore) Load(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(blob))
	copy(cp, blob)
	return cp, true, nil
}

// Save overwrites the blob stored under key.
func (s *MemoryCartStore) Save(key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(blob))
	copy(cp, blob)
	s.blobs[key] = cp
	return nil
}
