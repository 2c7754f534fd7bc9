package metrics_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/searchlab/fringe"
	"github.com/katalvlaran/searchlab/fringe/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populated(t *testing.T) *fringe.Synchronized[int] {
	t.Helper()
	s := fringe.NewSynchronized(fringe.NewPriority[int](fringe.WithName("astar")))
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Add(fringe.NewNode(i, 0, float64(10-i), nil)))
	}
	require.NoError(t, s.Replace(fringe.NewNode(0, 0, 1, nil)))
	_, err := s.Remove()
	require.NoError(t, err)

	return s
}

// TestCollector_Values compares the exposition for a known sequence of operations.
func TestCollector_Values(t *testing.T) {
	c := metrics.NewCollector(populated(t))

	expected := `
# HELP fringe_added_total Nodes accepted by Add or Replace.
# TYPE fringe_added_total counter
fringe_added_total{fringe="astar"} 4
# HELP fringe_discarded_total Tombstoned entries dropped from the backing store.
# TYPE fringe_discarded_total counter
fringe_discarded_total{fringe="astar"} 0
# HELP fringe_live_nodes Live nodes currently in the fringe.
# TYPE fringe_live_nodes gauge
fringe_live_nodes{fringe="astar"} 2
# HELP fringe_max_live_nodes High-water mark of live nodes.
# TYPE fringe_max_live_nodes gauge
fringe_max_live_nodes{fringe="astar"} 3
# HELP fringe_pending_entries Backing-store entries, tombstones included.
# TYPE fringe_pending_entries gauge
fringe_pending_entries{fringe="astar"} 3
# HELP fringe_removed_total Live nodes handed out by Remove.
# TYPE fringe_removed_total counter
fringe_removed_total{fringe="astar"} 1
# HELP fringe_replaced_total Live nodes superseded and tombstoned.
# TYPE fringe_replaced_total counter
fringe_replaced_total{fringe="astar"} 1
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))
	assert.Equal(t, 7, testutil.CollectAndCount(c))
}

// TestRegister checks registration and the duplicate-registration error.
func TestRegister(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	s := populated(t)

	c, err := metrics.Register(reg, s)
	require.NoError(t, err)
	require.NotNil(t, c)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 7)

	_, err = metrics.Register(reg, s)
	assert.Error(t, err)

	// collector reads live values on each scrape
	_, err = s.Remove()
	require.NoError(t, err)
	n, err := testutil.GatherAndCount(reg, "fringe_removed_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP fringe_removed_total Live nodes handed out by Remove.
# TYPE fringe_removed_total counter
fringe_removed_total{fringe="astar"} 2
`), "fringe_removed_total"))
}
