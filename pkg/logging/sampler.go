package logging

import (
	"sync"
)

// ErrorSampler reduces log noise from failures that repeat in background loops.
// It lets the first occurrence of a key through, then every Nth one.
type ErrorSampler struct {
	mu       sync.Mutex
	counts   map[string]int
	interval int
}

// NewErrorSampler creates a sampler logging every interval-th occurrence.
// Intervals below 1 fall back to 10.
func NewErrorSampler(interval int) *ErrorSampler {
	if interval < 1 {
		interval = 10
	}
	return &ErrorSampler{
		counts:   make(map[string]int),
		interval: interval,
	}
}

// ShouldLog records an occurrence of key and reports whether to log it.
// The returned count lets callers say how many were suppressed.
func (s *ErrorSampler) ShouldLog(key string) (bool, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts[key]++
	count := s.counts[key]
	return count == 1 || count%s.interval == 0, count
}

// Count returns how many times key has been seen since the last reset.
func (s *ErrorSampler) Count(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[key]
}

// Reset forgets key, typically once the failing operation succeeds again.
func (s *ErrorSampler) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counts, key)
}
