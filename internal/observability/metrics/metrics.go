package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success Outcome = "success"
	Error   Outcome = "error"
)

func (o Outcome) String() string {
	return string(o)
}

var (
	once                         sync.Once
	metricsRouter                *chi.Mux
	httpRequestDurationHistogram *prometheus.HistogramVec
	clientRequestDuration        *prometheus.HistogramVec
	queueEventCounter            *prometheus.CounterVec
	unresolvedAmountCounter      prometheus.Counter
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	go func() {
		metricsAddr := fmt.Sprintf(":%d", metricsPort)
		err := http.ListenAndServe(metricsAddr, metricsRouter)
		if err != nil {
			log.Fatal().Err(err).Msgf("error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	httpRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of http request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"endpoint", "status"},
	)

	clientRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "external_client_request_duration_seconds",
			Help:    "Histogram of indexer and chain client request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"client", "method", "outcome"},
	)

	queueEventCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_events_processed_total",
			Help: "Total number of staking events processed from the queue.",
		},
		[]string{"queue", "outcome"},
	)

	unresolvedAmountCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "withdrawal_amounts_unresolved_total",
			Help: "Withdrawal records whose amount could not be resolved from a share price.",
		},
	)

	prometheus.MustRegister(
		httpRequestDurationHistogram,
		clientRequestDuration,
		queueEventCounter,
		unresolvedAmountCounter,
	)
}

// StartHttpRequestDurationTimer starts a timer to measure http request handling duration.
func StartHttpRequestDurationTimer(endpoint string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		httpRequestDurationHistogram.WithLabelValues(endpoint, fmt.Sprintf("%d", statusCode)).Observe(duration)
	}
}

// StartClientRequestDurationTimer measures a single external client call.
func StartClientRequestDurationTimer(client, method string) func(outcome Outcome) {
	startTime := time.Now()
	return func(outcome Outcome) {
		duration := time.Since(startTime).Seconds()
		clientRequestDuration.WithLabelValues(client, method, outcome.String()).Observe(duration)
	}
}

func RecordQueueEvent(queueName string, outcome Outcome) {
	queueEventCounter.WithLabelValues(queueName, outcome.String()).Inc()
}

func RecordUnresolvedWithdrawalAmount() {
	unresolvedAmountCounter.Inc()
}
