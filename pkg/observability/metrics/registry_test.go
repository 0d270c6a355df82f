package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewRegistry_IncludesDefaultCollectors(t *testing.T) {
	reg := NewRegistry()

	RecordQuery("find_by_genre", 5*time.Millisecond, nil)
	RecordQuery("find_by_genre", 5*time.Millisecond, errors.New("boom"))

	families, err := reg.Gatherer().Gather()
	if err != nil {
		t.Fatalf("unexpected gather error: %v", err)
	}

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	if !names["catalog_queries_total"] {
		t.Fatal("expected catalog_queries_total to be registered")
	}
	if !names["catalog_query_duration_seconds"] {
		t.Fatal("expected catalog_query_duration_seconds to be registered")
	}
	if !names["go_goroutines"] {
		t.Fatal("expected Go runtime collector to be registered")
	}
}

func TestRegistry_RegisterCustomCollector(t *testing.T) {
	reg := NewRegistry()

	custom := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "seed_runs_total",
		Help: "Total number of seed runs",
	})
	if err := reg.Register(custom); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}
	custom.Inc()

	if !reg.Unregister(custom) {
		t.Fatal("expected Unregister to report removal")
	}
}

func TestRegistry_HandlerServesMetrics(t *testing.T) {
	reg := NewRegistry()
	if reg.Handler() == nil {
		t.Fatal("expected non-nil handler")
	}
}
