package record

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore implementa Store em memória. É o backing padrão para
// desenvolvimento e testes. O mutex preserva a atomicidade da substituição
// de coleção quando o acesso é paralelizado.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[Collection][]json.RawMessage
	latency     Latency
}

// NewMemoryStore cria um novo MemoryStore
func NewMemoryStore(latency Latency) *MemoryStore {
	return &MemoryStore{
		collections: make(map[Collection][]json.RawMessage),
		latency:     latency,
	}
}

func (s *MemoryStore) Read(_ context.Context, collection Collection) ([]json.RawMessage, error) {
	s.latency.SleepRead()

	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneRecords(s.collections[collection]), nil
}

func (s *MemoryStore) Write(_ context.Context, collection Collection, records []json.RawMessage) error {
	s.latency.SleepWrite()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections[collection] = cloneRecords(records)
	return nil
}
