package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alenapavlenkko/strengthstats/internal/metrics"
)

func TestManager_Counters(t *testing.T) {
	m, reg := metrics.NewTestManagerAndRegistry()

	m.CounterQueries.WithLabelValues("logs_for_exercise").Inc()
	m.CounterQueries.WithLabelValues("logs_for_exercise").Inc()
	m.CounterSkippedRows.WithLabelValues("series").Add(3)
	m.CounterStaleResults.Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterQueries.WithLabelValues("logs_for_exercise")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.CounterSkippedRows.WithLabelValues("series")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterStaleResults))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "strength_test_store_queries")
	assert.Contains(t, names, "strength_test_stale_results")
}

func TestSetupPrometheus(t *testing.T) {
	reg := metrics.SetupPrometheus()
	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestHandler(t *testing.T) {
	m, reg := metrics.NewTestManagerAndRegistry()
	m.CounterStaleResults.Inc()

	rr := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "strength_test_stale_results 1")

	rr = httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNewServer(t *testing.T) {
	srv := metrics.NewServer(":9091", prometheus.NewRegistry())
	assert.Equal(t, ":9091", srv.Addr)
	assert.NotNil(t, srv.Handler)
}
