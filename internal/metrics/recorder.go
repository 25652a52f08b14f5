// Package metrics records per-run measurements in Prometheus collectors held
// on a private registry. Nothing is exported over HTTP; the registry is
// gathered once at the end of the program and summarised to the debug log.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	dto "github.com/prometheus/client_model/go"

	"github.com/agbru/fpsum/internal/orchestration"
)

const namespace = "fpsum"

// Recorder implements orchestration.RunObserver.
type Recorder struct {
	registry *prometheus.Registry

	runs       *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	lastResult *prometheus.GaugeVec
	workers    prometheus.Gauge
}

var _ orchestration.RunObserver = (*Recorder)(nil)

// NewRecorder builds a Recorder with its own registry, including the Go
// runtime collector.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Number of completed summation runs.",
		}, []string{"workers"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of one summation run.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"workers"}),
		lastResult: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_result",
			Help:      "Value of the most recent run.",
		}, []string{"workers"}),
		workers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "workers",
			Help:      "Worker count of the most recent run.",
		}),
	}
	r.registry.MustRegister(
		r.runs,
		r.duration,
		r.lastResult,
		r.workers,
		collectors.NewGoCollector(),
	)
	return r
}

// ObserveRun records one successful run.
func (r *Recorder) ObserveRun(workers int, result orchestration.RunResult) {
	label := workersLabel(workers)
	r.runs.WithLabelValues(label).Inc()
	r.duration.WithLabelValues(label).Observe(result.Duration.Seconds())
	r.lastResult.WithLabelValues(label).Set(result.Value)
	r.workers.Set(float64(workers))
}

// Registry exposes the private registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Snapshot is a condensed view of the recorded metrics.
type Snapshot struct {
	Runs          uint64
	TotalDuration time.Duration
	HeapAlloc     uint64
	Goroutines    int
}

// Snapshot gathers the registry and folds the fpsum series over all worker
// labels.
func (r *Recorder) Snapshot() (Snapshot, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return Snapshot{}, err
	}

	var s Snapshot
	for _, mf := range families {
		switch mf.GetName() {
		case namespace + "_runs_total":
			for _, m := range mf.GetMetric() {
				s.Runs += uint64(m.GetCounter().GetValue())
			}
		case namespace + "_run_duration_seconds":
			for _, m := range mf.GetMetric() {
				s.TotalDuration += seconds(m.GetHistogram())
			}
		case "go_memstats_heap_alloc_bytes":
			s.HeapAlloc = uint64(firstGauge(mf))
		case "go_goroutines":
			s.Goroutines = int(firstGauge(mf))
		}
	}
	return s, nil
}

func workersLabel(workers int) string { return strconv.Itoa(workers) }

func seconds(h *dto.Histogram) time.Duration {
	return time.Duration(h.GetSampleSum() * float64(time.Second))
}

func firstGauge(mf *dto.MetricFamily) float64 {
	if ms := mf.GetMetric(); len(ms) > 0 {
		return ms[0].GetGauge().GetValue()
	}
	return 0
}
