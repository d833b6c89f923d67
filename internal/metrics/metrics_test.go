package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func getCounterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	if err := c.(prometheus.Metric).Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func getCounterVecValue(cv *prometheus.CounterVec, labels ...string) float64 {
	c, err := cv.GetMetricWithLabelValues(labels...)
	if err != nil {
		return 0
	}
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func TestMetrics_CounterVecs(t *testing.T) {
	tests := []struct {
		name   string
		vec    *prometheus.CounterVec
		labels []string
	}{
		{"provider ok", ProviderRequestsTotal, []string{"tmdb", "ok"}},
		{"provider error", ProviderRequestsTotal, []string{"news", "error"}},
		{"fallback", FallbacksTotal, []string{"anime"}},
		{"login", AuthLoginsTotal, []string{"demo"}},
		{"http", HTTPRequestsTotal, []string{"/api/v1/content", "200"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := getCounterVecValue(tt.vec, tt.labels...)
			tt.vec.WithLabelValues(tt.labels...).Inc()
			after := getCounterVecValue(tt.vec, tt.labels...)
			if after != before+1 {
				t.Errorf("Expected counter to increment by 1, got diff %.0f", after-before)
			}
		})
	}
}

func TestMetrics_RateLimitedTotal(t *testing.T) {
	before := getCounterValue(RateLimitedTotal)
	RateLimitedTotal.Inc()
	after := getCounterValue(RateLimitedTotal)

	if after != before+1 {
		t.Errorf("Expected rate limited counter to increment by 1, got diff %.0f", after-before)
	}
}

func TestMetrics_NewHTTPServer(t *testing.T) {
	srv := NewHTTPServer("localhost", 9090)

	if srv.Addr != "localhost:9090" {
		t.Errorf("Expected address 'localhost:9090', got '%s'", srv.Addr)
	}
	if srv.Handler == nil {
		t.Fatal("Expected handler to be set")
	}

	FallbacksTotal.WithLabelValues("movie").Inc()
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 from /metrics, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "sonyliv_fallbacks_total") {
		t.Error("Expected sonyliv_fallbacks_total in metrics output")
	}
}

func TestMetrics_NewHTTPServer_DefaultPort(t *testing.T) {
	srv := NewHTTPServer("0.0.0.0", 0)

	if srv.Addr != "0.0.0.0:9090" {
		t.Errorf("Expected address '0.0.0.0:9090', got '%s'", srv.Addr)
	}
}
