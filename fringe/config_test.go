package fringe_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/searchlab/fringe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestParsePolicy covers canonical names, aliases and rejects.
func TestParsePolicy(t *testing.T) {
	cases := map[string]fringe.Policy{
		"fifo":       fringe.FIFO,
		"Queue":      fringe.FIFO,
		" bfs ":      fringe.FIFO,
		"LIFO":       fringe.LIFO,
		"stack":      fringe.LIFO,
		"dfs":        fringe.LIFO,
		"priority":   fringe.Priority,
		"heap":       fringe.Priority,
		"best-first": fringe.Priority,
	}
	for in, want := range cases {
		got, err := fringe.ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := fringe.ParsePolicy("random")
	assert.ErrorIs(t, err, fringe.ErrUnknownPolicy)

	assert.Equal(t, "lifo", fringe.LIFO.String())
	assert.Equal(t, "policy(7)", fringe.Policy(7).String())

	txt, err := fringe.Priority.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "priority", string(txt))
	_, err = fringe.Policy(-1).MarshalText()
	assert.ErrorIs(t, err, fringe.ErrUnknownPolicy)
}

// TestLoadConfig decodes a full document and builds the fringe it names.
func TestLoadConfig(t *testing.T) {
	doc := `
name: ucs-open
policy: priority
capacity: 64
implicit_replace: true
`
	cfg, err := fringe.LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, fringe.Config{
		Name:            "ucs-open",
		Policy:          fringe.Priority,
		Capacity:        64,
		ImplicitReplace: true,
	}, cfg)

	f, err := fringe.NewFromConfig[int](cfg)
	require.NoError(t, err)
	assert.Equal(t, "ucs-open", f.Name())
	assert.Equal(t, fringe.Priority, f.Policy())

	// implicit replace is honored
	require.NoError(t, f.Add(fringe.NewNode(1, 0, 9, nil)))
	require.NoError(t, f.Add(fringe.NewNode(1, 0, 3, nil)))
	n, err := f.Remove()
	require.NoError(t, err)
	assert.Equal(t, 3.0, n.Value())
}

// TestLoadConfig_Defaults checks an empty document means a plain FIFO fringe.
func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := fringe.LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, fringe.Config{}, cfg)

	f, err := fringe.NewFromConfig[string](cfg, fringe.WithName("override"))
	require.NoError(t, err)
	assert.Equal(t, fringe.FIFO, f.Policy())
	assert.Equal(t, "override", f.Name())
}

// TestLoadConfig_Errors rejects bad policies, unknown keys and negative capacity.
func TestLoadConfig_Errors(t *testing.T) {
	docs := map[string]string{
		"bad policy":   "policy: zigzag\n",
		"list policy":  "policy: [fifo]\n",
		"unknown key":  "policy: fifo\nlimit: 3\n",
		"negative cap": "capacity: -1\n",
		"not yaml":     "policy: [\n",
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			_, err := fringe.LoadConfig(strings.NewReader(doc))
			assert.ErrorIs(t, err, fringe.ErrBadConfig)
		})
	}

	_, err := fringe.NewFromConfig[int](fringe.Config{Policy: fringe.Policy(5)})
	assert.ErrorIs(t, err, fringe.ErrBadConfig)
	assert.ErrorIs(t, err, fringe.ErrUnknownPolicy)
}

// TestConfig_YAMLEmbedding checks Policy decodes by name inside a caller's own config.
func TestConfig_YAMLEmbedding(t *testing.T) {
	var outer struct {
		Search struct {
			Open fringe.Config `yaml:"open"`
		} `yaml:"search"`
	}
	doc := "search:\n  open:\n    policy: dfs\n    capacity: 10\n"
	require.NoError(t, yaml.Unmarshal([]byte(doc), &outer))
	assert.Equal(t, fringe.LIFO, outer.Search.Open.Policy)
	assert.Equal(t, 10, outer.Search.Open.Capacity)

	opts := outer.Search.Open.Options()
	assert.Len(t, opts, 1)
}

// TestWithCapacity_Panics mirrors the other option constructors that reject bad input eagerly.
func TestWithCapacity_Panics(t *testing.T) {
	assert.Panics(t, func() { fringe.WithCapacity(-1) })
	assert.NotPanics(t, func() { fringe.WithCapacity(0) })
}
