// Package metrics exports solver activity to Prometheus.
//
// Collector implements tsp.Observer: pass it as Options.Observer and every
// solve (including each SolveAll lane) is counted under its mode label.
// Collector is safe for concurrent use; the prometheus vectors synchronise
// internally.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/antstar/tsp"
)

// Namespace prefixes every metric name.
const Namespace = "antstar"

// ErrNilRegisterer is returned by NewCollector when reg is nil.
var ErrNilRegisterer = errors.New("metrics: nil registerer")

// Collector holds the solver metrics.
type Collector struct {
	solves       *prometheus.CounterVec
	nodes        *prometheus.CounterVec
	improvements *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	bestCost     *prometheus.GaugeVec
	cacheHits    *prometheus.CounterVec
	cacheMisses  *prometheus.CounterVec
}

var _ tsp.Observer = (*Collector)(nil)

// NewCollector creates the metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}

	c := &Collector{
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "solves_total",
				Help:      "Completed solves by heuristic mode and termination reason",
			},
			[]string{"mode", "termination"},
		),
		nodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "nodes_explored_total",
				Help:      "Search states popped from the open set",
			},
			[]string{"mode"},
		),
		improvements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "incumbent_improvements_total",
				Help:      "Times a cheaper tour replaced the incumbent",
			},
			[]string{"mode"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "solve_duration_seconds",
				Help:      "Wall-clock duration of a solve",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"mode"},
		),
		bestCost: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "best_cost",
				Help:      "Cost of the tour returned by the latest solve",
			},
			[]string{"mode"},
		),
		cacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "heuristic_cache_hits_total",
				Help:      "Heuristic cache hits",
			},
			[]string{"mode"},
		),
		cacheMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "heuristic_cache_misses_total",
				Help:      "Heuristic cache misses",
			},
			[]string{"mode"},
		),
	}

	for _, m := range []prometheus.Collector{
		c.solves, c.nodes, c.improvements, c.duration, c.bestCost, c.cacheHits, c.cacheMisses,
	} {
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// IncumbentImproved implements tsp.Observer.
func (c *Collector) IncumbentImproved(mode tsp.Mode, _ float64) {
	c.improvements.WithLabelValues(mode.String()).Inc()
}

// SolveFinished implements tsp.Observer.
func (c *Collector) SolveFinished(r tsp.Result) {
	mode := r.Mode.String()
	c.solves.WithLabelValues(mode, r.Termination.String()).Inc()
	c.nodes.WithLabelValues(mode).Add(float64(r.NodesExplored))
	c.duration.WithLabelValues(mode).Observe(r.Elapsed.Seconds())
	c.bestCost.WithLabelValues(mode).Set(r.Cost)
	c.cacheHits.WithLabelValues(mode).Add(float64(r.Stats.Heuristic.Cache.Hits))
	c.cacheMisses.WithLabelValues(mode).Add(float64(r.Stats.Heuristic.Cache.Misses))
}
