package fringe

import "sync"

// Synchronized wraps a Fringe so several goroutines can share it.
// One mutex guards both the index and the backing store, so every method
// runs as a single atomic step.
type Synchronized[S comparable] struct {
	mu sync.Mutex
	f  *Fringe[S]
}

// NewSynchronized takes ownership of f. Callers must not use f directly afterwards.
func NewSynchronized[S comparable](f *Fringe[S]) *Synchronized[S] {
	return &Synchronized[S]{f: f}
}

// Add is Fringe.Add under the lock.
func (s *Synchronized[S]) Add(n *Node[S]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Add(n)
}

// Remove is Fringe.Remove under the lock.
func (s *Synchronized[S]) Remove() (*Node[S], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Remove()
}

// Replace is Fringe.Replace under the lock.
func (s *Synchronized[S]) Replace(n *Node[S]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Replace(n)
}

// AddOrReplace adds n, or replaces the live entry for its state when
// keep(old, n) reports that n should win. A nil keep prefers the lower Value.
// It returns whether n went in; on error it is always false.
// The lookup and the write happen under one lock hold.
func (s *Synchronized[S]) AddOrReplace(n *Node[S], keep func(old, n *Node[S]) bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n == nil {
		return false, ErrNilNode
	}
	if keep == nil {
		keep = func(old, n *Node[S]) bool { return n.Less(old) }
	}
	var err error
	if old, ok := s.f.index[n.state]; !ok {
		err = s.f.Add(n)
	} else if keep(old, n) {
		err = s.f.Replace(n)
	} else {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// Contains is Fringe.Contains under the lock.
func (s *Synchronized[S]) Contains(state S) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Contains(state)
}

// Get is Fringe.Get under the lock.
func (s *Synchronized[S]) Get(state S) (*Node[S], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Get(state)
}

// Len is Fringe.Len under the lock.
func (s *Synchronized[S]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Len()
}

// IsEmpty is Fringe.IsEmpty under the lock.
func (s *Synchronized[S]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.IsEmpty()
}

// Name returns the wrapped fringe's label.
func (s *Synchronized[S]) Name() string { return s.f.Name() }

// Stats is Fringe.Stats under the lock.
func (s *Synchronized[S]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Stats()
}
