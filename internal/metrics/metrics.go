// Package metrics exposes per-process counters for the fork tree. Counters
// register on the default Prometheus registry; because every universe is its
// own process, each counts only its own lineage's activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SpawnsTotal counts child universes this process spawned.
	SpawnsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "multiverse_spawns_total",
		Help: "Number of child universes spawned by this process.",
	})

	// SpawnFailuresTotal counts failed process duplications.
	SpawnFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "multiverse_spawn_failures_total",
		Help: "Number of process duplications that failed in this process.",
	})

	// LeavesTotal counts selections this process resolved to a leaf.
	LeavesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "multiverse_leaves_total",
		Help: "Number of selections resolved to an item in this process.",
	})

	// ReapedTotal counts terminated children collected by the reaper.
	ReapedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "multiverse_reaped_children_total",
		Help: "Number of terminated child processes reaped by this process.",
	})
)
