// Package metrics holds the Prometheus collectors of the batch splitter.
//
// Exposed metrics:
//   - batch_invocations_total{result} (Counter): split invocations by result ("ok", "error")
//   - batch_tasks_total (Counter): task descriptors emitted
//   - batch_resource_paths_total (Counter): resource paths partitioned
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	// Invocations tracks split invocations by result
	Invocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "batch_invocations_total",
			Help: "Total number of batch split invocations",
		},
		[]string{"result"},
	)

	// TasksEmitted tracks emitted task descriptors
	TasksEmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "batch_tasks_total",
			Help: "Total number of task descriptors emitted",
		},
	)

	// ResourcePaths tracks partitioned resource paths
	ResourcePaths = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "batch_resource_paths_total",
			Help: "Total number of resource paths partitioned",
		},
	)
)

// ObserveSplit records the outcome of one split invocation.
func ObserveSplit(paths, tasks int, err error) {
	if err != nil {
		Invocations.WithLabelValues(ResultError).Inc()
		return
	}
	Invocations.WithLabelValues(ResultOK).Inc()
	ResourcePaths.Add(float64(paths))
	TasksEmitted.Add(float64(tasks))
}
