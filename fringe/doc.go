// Package fringe implements the open list of a search: the set of
// generated-but-not-yet-expanded nodes that BFS, DFS, IDS, uniform-cost,
// greedy and A* drivers pull from.
//
// What:
//
//   - Node[S] carries a state, its path cost, an ordering value and a
//     back-link to its parent (Path rebuilds the route from the root).
//   - Fringe[S] is one concrete open list parametrized by a removal Policy:
//     FIFO (queue), LIFO (stack) or Priority (min-heap on Value, or a custom
//     comparator via NewWithLess).
//   - Synchronized[S] guards a Fringe with a single mutex for shared use.
//   - Config / LoadConfig build a fringe from YAML.
//
// How:
//
//	index  map[S]*Node[S]   – live entries, source of truth for Contains/Get/Len
//	store  queue|stack|heap – every pushed node, tombstones included
//
// Replace marks the superseded node as tombstoned and pushes the new one.
// Remove pops the store, dropping tombstones, until it meets a live node.
// This is the lazy decrease-key technique: O(1) index work plus one push
// per Replace, and stale entries cost one extra pop each.
//
// Each state is live at most once. Add on a state that is already live
// fails with ErrDuplicate unless the fringe was built WithImplicitReplace.
//
// Complexity (n = backing-store size):
//
//   - FIFO/LIFO: Add, Replace O(1); Remove O(1) amortized.
//   - Priority:  Add, Replace O(log n); Remove O(log n) per popped entry.
//   - Contains, Get, Len, IsEmpty: O(1).
//
// Errors:
//
//   - ErrEmpty:         Remove found no live node.
//   - ErrNotFound:      Get/Replace on a state with no live node.
//   - ErrDuplicate:     Add on a state that is already live.
//   - ErrNilNode:       nil node passed in.
//   - ErrStaleNode:     tombstoned node offered again.
//   - ErrUnknownPolicy: undefined Policy value or name.
//   - ErrBadConfig:     Config failed validation.
//
// A Fringe is owned by one search run and is not safe for concurrent use.
//
// Example:
//
//	f := fringe.NewPriority[int]()
//	_ = f.Add(fringe.NewNode(7, 0, 12, nil))
//	n, err := f.Remove()
package fringe
