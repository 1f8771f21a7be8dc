package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/timebound/metrics"
	"github.com/katalvlaran/timebound/search"
)

func TestRecorder_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	st := search.Stats{Expanded: 10, CacheHits: 3, Pruned: 2, Stored: 5, MaxDepth: 4}
	rec.Observe(metrics.VariantValves, 56, st, 2*time.Millisecond)
	rec.Observe(metrics.VariantValves, 60, st, time.Millisecond)
	rec.Observe(metrics.VariantRecipes, 9, search.Stats{Expanded: 1}, time.Millisecond)

	n, err := testutil.GatherAndCount(reg, "timebound_solves_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one series per variant")

	assert.Equal(t, float64(60), value(t, reg, "timebound_best_value", metrics.VariantValves))
	assert.Equal(t, float64(9), value(t, reg, "timebound_best_value", metrics.VariantRecipes))
	assert.Equal(t, float64(20), value(t, reg, "timebound_states_expanded_total", metrics.VariantValves))
	assert.Equal(t, float64(6), value(t, reg, "timebound_cache_hits_total", metrics.VariantValves))
	assert.Equal(t, float64(0), value(t, reg, "timebound_pruned_total", metrics.VariantRecipes))
}

func TestRecorder_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewRecorder(reg)
	assert.Panics(t, func() { metrics.NewRecorder(reg) })
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewRecorder(reg).Observe(metrics.VariantValvePair, 1707, search.Stats{Expanded: 7}, time.Second)

	path := filepath.Join(t.TempDir(), "timebound.prom")
	require.NoError(t, metrics.WriteTextfile(reg, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `timebound_best_value{variant="valves_pair"} 1707`)
	assert.Contains(t, string(raw), `timebound_states_expanded_total{variant="valves_pair"} 7`)
}

// value reads one labelled counter or gauge series back from reg.
func value(t *testing.T, reg *prometheus.Registry, name, variant string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "variant" && lp.GetValue() == variant {
					return m.GetCounter().GetValue() + m.GetGauge().GetValue()
				}
			}
		}
	}
	t.Fatalf("series %s{variant=%q} not found", name, variant)

	return 0
}
