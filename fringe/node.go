package fringe

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Node is one frontier entry: a state plus the bookkeeping a search needs
// to order it and to walk back to the root.
//
// All fields are fixed at construction. The tombstone flag is the only
// mutable part and only a Fringe sets it.
type Node[S comparable] struct {
	state    S
	pathCost float64
	value    float64
	parent   *Node[S]
	removed  bool
}

// NewNode builds a node. parent is nil for the root.
func NewNode[S comparable](state S, pathCost, value float64, parent *Node[S]) *Node[S] {
	return &Node[S]{
		state:    state,
		pathCost: pathCost,
		value:    value,
		parent:   parent,
	}
}

// State returns the embedded state.
func (n *Node[S]) State() S { return n.state }

// PathCost returns the accumulated cost from the root.
func (n *Node[S]) PathCost() float64 { return n.pathCost }

// Value returns the ordering key used by Priority fringes.
func (n *Node[S]) Value() float64 { return n.value }

// Parent returns the predecessor on the path from the root, or nil.
func (n *Node[S]) Parent() *Node[S] { return n.parent }

// Removed reports whether a Fringe has tombstoned this node.
func (n *Node[S]) Removed() bool { return n.removed }

// Less orders nodes by Value only.
func (n *Node[S]) Less(other *Node[S]) bool { return n.value < other.value }

// Depth returns the number of parent links between n and the root.
func (n *Node[S]) Depth() int {
	d := 0
	for cur := n.parent; cur != nil; cur = cur.parent {
		d++
	}

	return d
}

// Path returns the states from the root to n, excluding the root and
// including n. A root node yields an empty slice.
func (n *Node[S]) Path() []S {
	path := make([]S, 0, n.Depth())
	for cur := n; cur.parent != nil; cur = cur.parent {
		path = append(path, cur.state)
	}
	// reverse to get root → n
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// String renders every field. The parent is shown by its state only.
func (n *Node[S]) String() string {
	if n == nil {
		return "<nil>"
	}
	parent := "<root>"
	if n.parent != nil {
		parent = fmt.Sprint(n.parent.state)
	}

	return fmt.Sprintf("Node{state: %v, pathCost: %g, value: %g, parent: %s, removed: %t}",
		n.state, n.pathCost, n.value, parent, n.removed)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (n *Node[S]) MarshalZerologObject(e *zerolog.Event) {
	e.Interface("state", n.state).
		Float64("path_cost", n.pathCost).
		Float64("value", n.value).
		Bool("removed", n.removed)
	if n.parent != nil {
		e.Interface("parent", n.parent.state)
	}
}
