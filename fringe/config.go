package fringe

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config describes a fringe in YAML:
//
//	name: ucs-open
//	policy: priority
//	capacity: 1024
//	implicit_replace: false
type Config struct {
	Name            string `yaml:"name"`
	Policy          Policy `yaml:"policy"`
	Capacity        int    `yaml:"capacity"`
	ImplicitReplace bool   `yaml:"implicit_replace"`
}

// LoadConfig decodes a Config from r. Unknown keys are rejected.
// An empty document yields the zero Config (FIFO, no name, no capacity).
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the policy and the capacity.
func (c Config) Validate() error {
	if !c.Policy.Valid() {
		return fmt.Errorf("%w: %w: %d", ErrBadConfig, ErrUnknownPolicy, int(c.Policy))
	}
	if c.Capacity < 0 {
		return fmt.Errorf("%w: capacity must be non-negative (%d)", ErrBadConfig, c.Capacity)
	}

	return nil
}

// Options converts c to functional options. The policy is not an option;
// pass c.Policy to New.
func (c Config) Options() []Option {
	var opts []Option
	if c.Name != "" {
		opts = append(opts, WithName(c.Name))
	}
	if c.Capacity > 0 {
		opts = append(opts, WithCapacity(c.Capacity))
	}
	if c.ImplicitReplace {
		opts = append(opts, WithImplicitReplace())
	}

	return opts
}

// NewFromConfig validates cfg and builds the fringe it describes.
// extra options are applied after the ones derived from cfg.
func NewFromConfig[S comparable](cfg Config, extra ...Option) (*Fringe[S], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return New[S](cfg.Policy, append(cfg.Options(), extra...)...)
}
