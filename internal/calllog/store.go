package calllog

import "sync"

const defaultCapacity = 256

// Store keeps the most recent calls in a fixed-size ring buffer.
// Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	calls []Call
	next  int
	full  bool
}

// NewStore creates a store retaining up to capacity calls. A non-positive
// capacity uses the default.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Store{calls: make([]Call, capacity)}
}

// Record appends a call, evicting the oldest when full. Nil calls are
// ignored.
func (s *Store) Record(call *Call) {
	if call == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[s.next] = *call
	s.next++
	if s.next == len(s.calls) {
		s.next = 0
		s.full = true
	}
}

// Recent returns up to limit calls, newest first. A non-positive limit
// returns everything retained.
func (s *Store) Recent(limit int) []Call {
	s.mu.RLock()
	defer s.mu.RUnlock()

	size := s.next
	if s.full {
		size = len(s.calls)
	}
	if limit <= 0 || limit > size {
		limit = size
	}

	out := make([]Call, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (s.next - i + len(s.calls)) % len(s.calls)
		out = append(out, s.calls[idx])
	}
	return out
}

// Len returns the number of retained calls.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.full {
		return len(s.calls)
	}
	return s.next
}
