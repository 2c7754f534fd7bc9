// Package fringe defines the node type, removal policies, functional options
// and sentinel errors shared by every fringe variant.
package fringe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for fringe operations.
var (
	// ErrEmpty is returned by Remove when no live entry remains.
	ErrEmpty = errors.New("fringe: no live nodes")

	// ErrNotFound is returned by Get and Replace when a state has no live entry.
	ErrNotFound = errors.New("fringe: state not found")

	// ErrDuplicate is returned by Add when the state already has a live entry.
	// Use Replace, or build the fringe WithImplicitReplace.
	ErrDuplicate = errors.New("fringe: state already live")

	// ErrNilNode is returned when a nil *Node is passed in.
	ErrNilNode = errors.New("fringe: node is nil")

	// ErrStaleNode is returned when a tombstoned node is offered again.
	ErrStaleNode = errors.New("fringe: node is tombstoned")

	// ErrUnknownPolicy is returned for a Policy value or name that is not defined.
	ErrUnknownPolicy = errors.New("fringe: unknown policy")

	// ErrBadConfig is returned when a Config fails validation.
	ErrBadConfig = errors.New("fringe: invalid config")
)

// Policy selects the order in which Remove yields live nodes.
type Policy int

const (
	// FIFO removes nodes in insertion order (breadth-first).
	FIFO Policy = iota
	// LIFO removes the most recently inserted live node (depth-first).
	LIFO
	// Priority removes the live node with the smallest Value (best-first).
	Priority
)

var policyNames = [...]string{
	FIFO:     "fifo",
	LIFO:     "lifo",
	Priority: "priority",
}

var policyAliases = map[string]Policy{
	"fifo":       FIFO,
	"queue":      FIFO,
	"bfs":        FIFO,
	"lifo":       LIFO,
	"stack":      LIFO,
	"dfs":        LIFO,
	"priority":   Priority,
	"heap":       Priority,
	"best-first": Priority,
}

// Valid reports whether p is one of the defined policies.
func (p Policy) Valid() bool { return p >= FIFO && p <= Priority }

// String returns the canonical lower-case name of p.
func (p Policy) String() string {
	if !p.Valid() {
		return fmt.Sprintf("policy(%d)", int(p))
	}

	return policyNames[p]
}

// ParsePolicy maps a name (case-insensitive, aliases accepted) to a Policy.
//
//	fifo | queue | bfs          → FIFO
//	lifo | stack | dfs          → LIFO
//	priority | heap | best-first → Priority
func ParsePolicy(s string) (Policy, error) {
	p, ok := policyAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}

	return p, nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(p))
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	v, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler so a policy can be written by name.
func (p *Policy) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: policy must be a scalar", ErrUnknownPolicy, value.Line)
	}

	return p.UnmarshalText([]byte(value.Value))
}

// Option configures a Fringe at construction time.
type Option func(*Options)

// Options holds the tunables applied by New and friends.
type Options struct {
	// Name labels log events and exported metrics. Defaults to the policy name.
	Name string

	// Capacity pre-sizes the index and the backing store. Zero means no hint.
	Capacity int

	// ImplicitReplace makes Add on a live state behave like Replace
	// instead of failing with ErrDuplicate.
	ImplicitReplace bool

	// Logger receives trace/debug events. Defaults to zerolog.Nop().
	Logger zerolog.Logger
}

// DefaultOptions returns Options with no name, no capacity hint,
// strict Add and a disabled logger.
func DefaultOptions() Options {
	return Options{
		Logger: zerolog.Nop(),
	}
}

// WithName sets the label used in logs and metrics.
func WithName(name string) Option {
	return func(o *Options) { o.Name = name }
}

// WithCapacity pre-sizes internal storage for roughly n live nodes.
// Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("fringe: WithCapacity(%d): capacity must be non-negative", n))
	}

	return func(o *Options) { o.Capacity = n }
}

// WithImplicitReplace lets Add supersede a live entry for the same state.
func WithImplicitReplace() Option {
	return func(o *Options) { o.ImplicitReplace = true }
}

// WithLogger routes fringe events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Stats is a point-in-time snapshot of fringe bookkeeping.
type Stats struct {
	Added     uint64 // nodes accepted by Add or Replace
	Replaced  uint64 // live nodes superseded and tombstoned
	Removed   uint64 // live nodes handed out by Remove
	Discarded uint64 // tombstoned entries physically dropped
	Live      int    // current live entries
	MaxLive   int    // high-water mark of Live
	Pending   int    // current backing-store entries, stale included
}

// Frontier is the capability set search drivers rely on.
// *Fringe and *Synchronized both satisfy it.
type Frontier[S comparable] interface {
	Add(n *Node[S]) error
	Remove() (*Node[S], error)
	Replace(n *Node[S]) error
	Contains(state S) bool
	Get(state S) (*Node[S], error)
	Len() int
	IsEmpty() bool
}
