package search

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for the searches_total counter.
const (
	OutcomeSolved     = "solved"
	OutcomeExhausted  = "exhausted"
	OutcomeCancelled  = "cancelled"
	OutcomeNodeLimit  = "node_limit"
	OutcomeStoreError = "store_error"
)

// PrometheusMetrics collects search metrics.
//
// Metrics exposed (all namespaced with "statesearch_"):
//
// 1. searches_total (counter): Finished searches.
// Labels: strategy, outcome (solved/exhausted/cancelled/node_limit/store_error).
//
// 2. nodes_visited_total (counter): Root plus generated successors.
// Labels: strategy.
//
// 3. nodes_expanded_total (counter): Nodes whose successors were generated.
// Labels: strategy.
//
// 4. relinks_total (counter): Cheaper paths adopted by informed search.
// Labels: strategy.
//
// 5. fringe_size (gauge): Fringe size at the last progress report or
// termination. Labels: strategy.
//
// 6. search_duration_ms (histogram): Wall time per search.
// Labels: strategy, outcome.
//
// 7. solution_cost (histogram): Cost of returned solutions.
// Labels: strategy.
//
// Usage:
//
//	registry := prometheus.NewRegistry()
//	metrics := search.NewPrometheusMetrics(registry)
//	engine, _ := search.New[string](search.WithMetrics(metrics))
//	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
//
// All methods are safe for concurrent use.
type PrometheusMetrics struct {
	searches     *prometheus.CounterVec
	visited      *prometheus.CounterVec
	expanded     *prometheus.CounterVec
	relinks      *prometheus.CounterVec
	fringeSize   *prometheus.GaugeVec
	duration     *prometheus.HistogramVec
	solutionCost *prometheus.HistogramVec

	mu      sync.RWMutex
	enabled bool
}

// NewPrometheusMetrics creates and registers all search metrics with
// registry. A nil registry means prometheus.DefaultRegisterer.
func NewPrometheusMetrics(registry prometheus.Registerer) *PrometheusMetrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	pm := &PrometheusMetrics{enabled: true}

	pm.searches = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "statesearch",
		Name:      "searches_total",
		Help:      "Number of searches by strategy and outcome",
	}, []string{"strategy", "outcome"})

	pm.visited = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "statesearch",
		Name:      "nodes_visited_total",
		Help:      "Root nodes plus generated successor nodes",
	}, []string{"strategy"})

	pm.expanded = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "statesearch",
		Name:      "nodes_expanded_total",
		Help:      "Nodes whose successors were generated",
	}, []string{"strategy"})

	pm.relinks = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "statesearch",
		Name:      "relinks_total",
		Help:      "Known states reattached to a cheaper parent during informed search",
	}, []string{"strategy"})

	pm.fringeSize = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "statesearch",
		Name:      "fringe_size",
		Help:      "Fringe size at the most recent report",
	}, []string{"strategy"})

	pm.duration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "statesearch",
		Name:      "search_duration_ms",
		Help:      "Search wall time in milliseconds",
		Buckets:   []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 10000, 60000},
	}, []string{"strategy", "outcome"})

	pm.solutionCost = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "statesearch",
		Name:      "solution_cost",
		Help:      "Total action cost of returned solutions",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"strategy"})

	return pm
}

func (pm *PrometheusMetrics) isEnabled() bool {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return pm.enabled
}

// RecordSearch records the counters of one finished or aborted search.
func (pm *PrometheusMetrics) RecordSearch(strategy, outcome string, visited, expanded, relinks int, elapsed time.Duration) {
	if !pm.isEnabled() {
		return
	}

	pm.searches.WithLabelValues(strategy, outcome).Inc()
	pm.visited.WithLabelValues(strategy).Add(float64(visited))
	pm.expanded.WithLabelValues(strategy).Add(float64(expanded))
	pm.relinks.WithLabelValues(strategy).Add(float64(relinks))
	pm.duration.WithLabelValues(strategy, outcome).Observe(float64(elapsed.Milliseconds()))
}

// ObserveSolution records the cost of a returned solution.
func (pm *PrometheusMetrics) ObserveSolution(strategy string, cost float64) {
	if !pm.isEnabled() {
		return
	}

	pm.solutionCost.WithLabelValues(strategy).Observe(cost)
}

// UpdateFringeSize sets the fringe_size gauge.
func (pm *PrometheusMetrics) UpdateFringeSize(strategy string, size int) {
	if !pm.isEnabled() {
		return
	}

	pm.fringeSize.WithLabelValues(strategy).Set(float64(size))
}

// Disable temporarily disables metric recording (useful for testing).
func (pm *PrometheusMetrics) Disable() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.enabled = false
}

// Enable re-enables metric recording after Disable().
func (pm *PrometheusMetrics) Enable() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.enabled = true
}

// Reset zeroes the fringe gauges. Counters and histograms are cumulative
// and are not reset.
func (pm *PrometheusMetrics) Reset() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.fringeSize.Reset()
}
