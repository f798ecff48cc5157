package observability

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCounters(t *testing.T) {
	ctx := context.Background()
	m := NewMetrics("familytree")

	m.OnLayoutComplete(ctx, 12, time.Millisecond, nil)
	m.OnLayoutComplete(ctx, 0, time.Millisecond, errors.New("cycle"))
	m.OnRenderComplete(ctx, []string{"svg", "json"}, time.Millisecond, nil)
	m.OnCacheHit(ctx, "artifact")
	m.OnCacheMiss(ctx, "artifact")
	m.OnCacheSet(ctx, "artifact", 512)
	m.OnRequest(ctx, "POST", "/api/family-tree", 200, time.Millisecond)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"layouts ok", testutil.ToFloat64(m.layouts.WithLabelValues("ok")), 1},
		{"layouts error", testutil.ToFloat64(m.layouts.WithLabelValues("error")), 1},
		{"renders ok", testutil.ToFloat64(m.renders.WithLabelValues("ok")), 1},
		{"cache hit", testutil.ToFloat64(m.cacheEvents.WithLabelValues("artifact", "hit")), 1},
		{"cache miss", testutil.ToFloat64(m.cacheEvents.WithLabelValues("artifact", "miss")), 1},
		{"cache bytes", testutil.ToFloat64(m.cacheBytes), 512},
		{"http", testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/api/family-tree", "200")), 1},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics("familytree")
	m.OnRequest(context.Background(), "GET", "/health", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `familytree_http_requests_total{method="GET",route="/health",status="200"} 1`) {
		t.Errorf("exposition missing request counter:\n%s", rec.Body.String())
	}
}

func TestNewMetricsIndependentRegistries(t *testing.T) {
	a, b := NewMetrics("familytree"), NewMetrics("familytree")
	if a.Registry() == b.Registry() {
		t.Error("each Metrics should own its registry")
	}
}
