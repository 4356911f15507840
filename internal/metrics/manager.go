package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Manager struct {
	// counters
	CounterQueries       *prometheus.CounterVec
	CounterQueryFailures *prometheus.CounterVec
	CounterSkippedRows   *prometheus.CounterVec
	CounterStaleResults  prometheus.Counter
	CounterLogsAdded     prometheus.Counter

	// histograms
	HistQueryDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("strength", "test", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("strength", "test", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	return &Manager{
		CounterQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "store_queries",
			Help:      "The total number of store reads issued by the aggregation pipeline",
		}, []string{"query"}),
		CounterQueryFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "store_query_failures",
			Help:      "The total number of failed store reads",
		}, []string{"query"}),
		CounterSkippedRows: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "skipped_rows",
			Help:      "The total number of log rows left out of charts because they could not be parsed or estimated",
		}, []string{"stage"}),
		CounterStaleResults: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "stale_results",
			Help:      "The total number of query results discarded because the selection changed",
		}),
		CounterLogsAdded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "logs_added",
			Help:      "The total number of added log entries",
		}),
		HistQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "store_query_duration_seconds",
			Help:      "Duration of store reads",
			Buckets:   prometheus.DefBuckets,
		}, []string{"query"}),
	}
}

func SetupPrometheus() *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	// Add Go module build info, runtime metrics and process collectors.
	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return promRegistry
}

// Handler отдает метрики реестра на /metrics
func Handler(g prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return mux
}

// NewServer - отдельный листенер метрик для процессов без HTTP API
func NewServer(addr string, g prometheus.Gatherer) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           Handler(g),
		ReadHeaderTimeout: 5 * time.Second,
	}
}
