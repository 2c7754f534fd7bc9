package fringe

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Fringe is a single-owner open list. It is not safe for concurrent use;
// wrap it with NewSynchronized when several goroutines share one.
type Fringe[S comparable] struct {
	policy Policy
	opts   Options
	log    zerolog.Logger
	index  map[S]*Node[S]
	store  store[S]
	stats  Stats
}

// New builds a fringe with the given removal policy.
// Returns ErrUnknownPolicy if p is not FIFO, LIFO or Priority.
func New[S comparable](p Policy, opts ...Option) (*Fringe[S], error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(p))
	}

	return newFringe(p, (*Node[S]).Less, opts), nil
}

// NewQueue returns a FIFO fringe.
func NewQueue[S comparable](opts ...Option) *Fringe[S] {
	return newFringe(FIFO, (*Node[S]).Less, opts)
}

// NewStack returns a LIFO fringe.
func NewStack[S comparable](opts ...Option) *Fringe[S] {
	return newFringe(LIFO, (*Node[S]).Less, opts)
}

// NewPriority returns a fringe that removes the smallest Value first.
func NewPriority[S comparable](opts ...Option) *Fringe[S] {
	return newFringe(Priority, (*Node[S]).Less, opts)
}

// NewWithLess returns a Priority fringe ordered by less instead of Value.
// Nodes that compare equal are removed in insertion order.
func NewWithLess[S comparable](less func(a, b *Node[S]) bool, opts ...Option) *Fringe[S] {
	if less == nil {
		less = (*Node[S]).Less
	}

	return newFringe(Priority, less, opts)
}

func newFringe[S comparable](p Policy, less func(a, b *Node[S]) bool, opts []Option) *Fringe[S] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Name == "" {
		o.Name = p.String()
	}

	return &Fringe[S]{
		policy: p,
		opts:   o,
		log:    o.Logger.With().Str("fringe", o.Name).Stringer("policy", p).Logger(),
		index:  make(map[S]*Node[S], o.Capacity),
		store:  newStore(p, less, o.Capacity),
	}
}

// Policy returns the removal order of f.
func (f *Fringe[S]) Policy() Policy { return f.policy }

// Name returns the label given by WithName, or the policy name.
func (f *Fringe[S]) Name() string { return f.opts.Name }

// Add inserts n as the live entry for n.State().
//
// Returns ErrNilNode, ErrStaleNode for a tombstoned node, or ErrDuplicate if
// the state is already live. With WithImplicitReplace the last case
// supersedes the live entry instead.
func (f *Fringe[S]) Add(n *Node[S]) error {
	if err := checkNode(n); err != nil {
		return err
	}
	if old, ok := f.index[n.state]; ok {
		if !f.opts.ImplicitReplace {
			return fmt.Errorf("%w: %v", ErrDuplicate, n.state)
		}
		f.supersede(old, n)

		return nil
	}
	f.insert(n)

	return nil
}

// Replace tombstones the live entry for n.State() and makes n the live one.
// Returns ErrNotFound if the state has no live entry. Replacing a node
// with itself does nothing.
func (f *Fringe[S]) Replace(n *Node[S]) error {
	if err := checkNode(n); err != nil {
		return err
	}
	old, ok := f.index[n.state]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, n.state)
	}
	f.supersede(old, n)

	return nil
}

// Remove pops the next live node according to the policy, dropping any
// tombstones ahead of it. Returns ErrEmpty when nothing live remains.
func (f *Fringe[S]) Remove() (*Node[S], error) {
	if len(f.index) == 0 {
		// only stale entries can be left
		f.stats.Discarded += uint64(f.store.len())
		f.store.reset()
		f.log.Debug().Msg("remove on empty fringe")

		return nil, ErrEmpty
	}
	for {
		n, ok := f.store.pop()
		if !ok {
			// index entries with nothing live behind them; drop them so
			// IsEmpty agrees with Remove from here on
			orphans := len(f.index)
			f.stats.Discarded += uint64(orphans)
			clear(f.index)
			f.log.Debug().Int("orphans", orphans).Msg("backing store exhausted")

			return nil, ErrEmpty
		}
		if n.removed {
			f.stats.Discarded++
			if f.index[n.state] == n {
				// tombstoned by another fringe sharing this node
				delete(f.index, n.state)
				f.log.Trace().Object("node", n).Msg("discard orphan")
				continue
			}
			f.log.Trace().Object("node", n).Msg("discard tombstone")
			continue
		}
		delete(f.index, n.state)
		f.stats.Removed++

		return n, nil
	}
}

// Contains reports whether state has a live entry.
func (f *Fringe[S]) Contains(state S) bool {
	_, ok := f.index[state]

	return ok
}

// Get returns the live node for state, or ErrNotFound.
func (f *Fringe[S]) Get(state S) (*Node[S], error) {
	n, ok := f.index[state]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, state)
	}

	return n, nil
}

// Len returns the number of live entries.
func (f *Fringe[S]) Len() int { return len(f.index) }

// IsEmpty reports whether no live entry remains, regardless of stale
// entries still waiting in the backing store.
func (f *Fringe[S]) IsEmpty() bool { return len(f.index) == 0 }

// Pending returns the backing-store size, tombstones included.
func (f *Fringe[S]) Pending() int { return f.store.len() }

// Clear drops every entry. Counters in Stats are kept.
func (f *Fringe[S]) Clear() {
	clear(f.index)
	f.store.reset()
}

// Stats returns a snapshot of the counters and current sizes.
func (f *Fringe[S]) Stats() Stats {
	s := f.stats
	s.Live = len(f.index)
	s.Pending = f.store.len()

	return s
}

func (f *Fringe[S]) insert(n *Node[S]) {
	f.index[n.state] = n
	f.store.push(n)
	f.stats.Added++
	if live := len(f.index); live > f.stats.MaxLive {
		f.stats.MaxLive = live
	}
	f.log.Trace().Object("node", n).Int("live", len(f.index)).Msg("add")
}

func (f *Fringe[S]) supersede(old, n *Node[S]) {
	if old == n {
		return
	}
	old.removed = true
	f.stats.Replaced++
	f.log.Trace().
		Interface("state", n.state).
		Float64("old_value", old.value).
		Float64("value", n.value).
		Msg("replace")
	f.insert(n)
}

func checkNode[S comparable](n *Node[S]) error {
	if n == nil {
		return ErrNilNode
	}
	if n.removed {
		return fmt.Errorf("%w: %v", ErrStaleNode, n.state)
	}

	return nil
}
