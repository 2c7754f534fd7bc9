// Package metrics exports fringe bookkeeping as Prometheus metrics.
//
// The collector reads a Stats snapshot on every scrape, so the source must
// be safe to call from the scrape goroutine: use fringe.Synchronized when
// the search runs concurrently with the registry.
package metrics

import (
	"github.com/katalvlaran/searchlab/fringe"
	"github.com/prometheus/client_golang/prometheus"
)

// StatsSource is anything that can report fringe stats.
// *fringe.Synchronized satisfies it.
type StatsSource interface {
	Name() string
	Stats() fringe.Stats
}

// Collector implements prometheus.Collector over one StatsSource.
type Collector struct {
	src StatsSource

	live      *prometheus.Desc
	pending   *prometheus.Desc
	maxLive   *prometheus.Desc
	added     *prometheus.Desc
	replaced  *prometheus.Desc
	removed   *prometheus.Desc
	discarded *prometheus.Desc
}

// NewCollector builds a collector whose metrics carry a constant
// fringe="<src.Name()>" label.
func NewCollector(src StatsSource) *Collector {
	labels := prometheus.Labels{"fringe": src.Name()}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName("fringe", "", name), help, nil, labels)
	}

	return &Collector{
		src:       src,
		live:      desc("live_nodes", "Live nodes currently in the fringe."),
		pending:   desc("pending_entries", "Backing-store entries, tombstones included."),
		maxLive:   desc("max_live_nodes", "High-water mark of live nodes."),
		added:     desc("added_total", "Nodes accepted by Add or Replace."),
		replaced:  desc("replaced_total", "Live nodes superseded and tombstoned."),
		removed:   desc("removed_total", "Live nodes handed out by Remove."),
		discarded: desc("discarded_total", "Tombstoned entries dropped from the backing store."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.live
	ch <- c.pending
	ch <- c.maxLive
	ch <- c.added
	ch <- c.replaced
	ch <- c.removed
	ch <- c.discarded
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.live, prometheus.GaugeValue, float64(s.Live))
	ch <- prometheus.MustNewConstMetric(c.pending, prometheus.GaugeValue, float64(s.Pending))
	ch <- prometheus.MustNewConstMetric(c.maxLive, prometheus.GaugeValue, float64(s.MaxLive))
	ch <- prometheus.MustNewConstMetric(c.added, prometheus.CounterValue, float64(s.Added))
	ch <- prometheus.MustNewConstMetric(c.replaced, prometheus.CounterValue, float64(s.Replaced))
	ch <- prometheus.MustNewConstMetric(c.removed, prometheus.CounterValue, float64(s.Removed))
	ch <- prometheus.MustNewConstMetric(c.discarded, prometheus.CounterValue, float64(s.Discarded))
}

// Register adds a collector for src to reg and returns it.
func Register(reg prometheus.Registerer, src StatsSource) (*Collector, error) {
	c := NewCollector(src)
	if err := reg.Register(c); err != nil {
		return nil, err
	}

	return c, nil
}
