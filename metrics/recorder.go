package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/timebound/search"
)

const namespace = "timebound"

// Variant labels.
const (
	VariantValves     = "valves"
	VariantValvePair  = "valves_pair"
	VariantRecipes    = "recipes"
	VariantRecipeSum  = "recipes_quality"
	VariantRecipeProd = "recipes_product"
)

// Recorder accumulates per-variant search statistics.
type Recorder struct {
	solves    *prometheus.CounterVec
	expanded  *prometheus.CounterVec
	cacheHits *prometheus.CounterVec
	pruned    *prometheus.CounterVec
	stored    *prometheus.CounterVec
	best      *prometheus.GaugeVec
	depth     *prometheus.GaugeVec
	duration  *prometheus.HistogramVec
}

// NewRecorder creates a Recorder whose collectors are registered on reg.
// It panics if reg already holds collectors with the same names.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	labels := []string{"variant"}

	return &Recorder{
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "solves_total",
			Help: "Completed searches by variant",
		}, labels),
		expanded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "states_expanded_total",
			Help: "States visited, cache hits included",
		}, labels),
		cacheHits: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "cache_hits_total",
			Help: "States answered from the memo cache",
		}, labels),
		pruned: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "pruned_total",
			Help: "Subtrees skipped by the bound test",
		}, labels),
		stored: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "cache_stores_total",
			Help: "Exact results written to the memo cache",
		}, labels),
		best: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "best_value",
			Help: "Best value of the last search",
		}, labels),
		depth: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "max_depth",
			Help: "Deepest action count of the last search",
		}, labels),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "solve_duration_seconds",
			Help:    "Wall time per search",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, labels),
	}
}

// Observe records one finished search.
func (r *Recorder) Observe(variant string, value int, st search.Stats, elapsed time.Duration) {
	r.solves.WithLabelValues(variant).Inc()
	r.expanded.WithLabelValues(variant).Add(float64(st.Expanded))
	r.cacheHits.WithLabelValues(variant).Add(float64(st.CacheHits))
	r.pruned.WithLabelValues(variant).Add(float64(st.Pruned))
	r.stored.WithLabelValues(variant).Add(float64(st.Stored))
	r.best.WithLabelValues(variant).Set(float64(value))
	r.depth.WithLabelValues(variant).Set(float64(st.MaxDepth))
	r.duration.WithLabelValues(variant).Observe(elapsed.Seconds())
}

// WriteTextfile writes every metric gathered by g to path in text format.
func WriteTextfile(g prometheus.Gatherer, path string) error {
	return prometheus.WriteToTextfile(path, g)
}
