// Package metrics instruments the planner with Prometheus counters and
// histograms. It never opens an HTTP socket itself; Registry returns
// the raw registry so a caller can mount promhttp.HandlerFor if it
// wants a scrape endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Planner collects the metrics a single planning run or sharding
// attempt produces.
type Planner struct {
	registry *prometheus.Registry

	LatticeCells      prometheus.Gauge
	VulcanizeDuration prometheus.Histogram
	SearchAttempts    prometheus.Histogram
	LedgerHits        prometheus.Counter
	LedgerMisses      prometheus.Counter
}

// NewPlanner constructs a Planner with a fresh, private registry so
// multiple Planner instances (e.g. one per test) never collide on
// Prometheus's default global registry.
func NewPlanner() *Planner {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Planner{
		registry: registry,

		LatticeCells: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "rubbertree",
			Subsystem: "lattice",
			Name:      "cells",
			Help:      "Number of occupied coordinates in the most recently loaded lattice.",
		}),
		VulcanizeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rubbertree",
			Subsystem: "vulcanize",
			Name:      "duration_seconds",
			Help:      "Wall time spent vulcanizing a lattice into a record set.",
			Buckets:   prometheus.DefBuckets,
		}),
		SearchAttempts: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rubbertree",
			Subsystem: "shard_search",
			Name:      "attempts",
			Help:      "Fragment ledger lookups the stateful searching sharder made before succeeding or exhausting the search.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}),
		LedgerHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "rubbertree",
			Subsystem: "shard_ledger",
			Name:      "hits_total",
			Help:      "Fragment lookups that found a previously committed overlap.",
		}),
		LedgerMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "rubbertree",
			Subsystem: "shard_ledger",
			Name:      "misses_total",
			Help:      "Fragment lookups that found no previously committed overlap.",
		}),
	}
}

// Registry returns the Planner's private Prometheus registry.
func (p *Planner) Registry() *prometheus.Registry {
	return p.registry
}

// RecordLedgerLookup increments the hit or miss counter depending on
// whether the fragment was already present in the ledger.
func (p *Planner) RecordLedgerLookup(hit bool) {
	if hit {
		p.LedgerHits.Inc()
	} else {
		p.LedgerMisses.Inc()
	}
}
