package stores

import (
	"context"
	"path"
	"sort"
	"sync"
)

type memoryCounterStore struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewMemoryCounterStore returns an in-process CounterStore with the same
// atomic-increment contract as the Redis adapter. Intended for tests and
// local development.
func NewMemoryCounterStore() CounterStore {
	return &memoryCounterStore{counters: make(map[string]int64)}
}

func (s *memoryCounterStore) Increment(_ context.Context, key string, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[key] += delta
	return s.counters[key], nil
}

func (s *memoryCounterStore) Get(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[key], nil
}

func (s *memoryCounterStore) GetMany(_ context.Context, keys []string) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make(map[string]int64, len(keys))
	for _, key := range keys {
		result[key] = s.counters[key]
	}
	return result, nil
}

func (s *memoryCounterStore) Scan(_ context.Context, pattern string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for key := range s.counters {
		// Keys contain no '/' so path.Match behaves as a plain glob here.
		matched, err := path.Match(pattern, key)
		if err != nil {
			return nil, err
		}
		if matched {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *memoryCounterStore) SetIfAbsent(_ context.Context, key string, value int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.counters[key]; exists {
		return false, nil
	}
	s.counters[key] = value
	return true, nil
}

func (s *memoryCounterStore) Ping(_ context.Context) error {
	return nil
}
