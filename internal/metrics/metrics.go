// Package metrics exposes Prometheus collectors for search traffic.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "wordfind"

var (
	registerOnce sync.Once

	queriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queries_total",
		Help:      "Total number of search queries by strategy",
	}, []string{"strategy"})
	emptyResults = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "empty_results_total",
		Help:      "Queries that returned no matches, by strategy",
	}, []string{"strategy"})
	queryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "query_duration_seconds",
		Help:      "Histogram of query latency in seconds by strategy",
		Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 14), // 50µs up to ~400ms
	}, []string{"strategy"})
	vocabularyWords = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "vocabulary_words",
		Help:      "Number of words in the loaded vocabulary",
	})
	requestErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_errors_total",
		Help:      "Rejected requests by transport",
	}, []string{"transport"})
)

// Register adds the collectors to the default registry (idempotent).
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(queriesTotal, emptyResults, queryDuration, vocabularyWords, requestErrors)
	})
}

// Recorder feeds search observations into the package collectors.
type Recorder struct{}

// NewRecorder registers the collectors and returns a Recorder.
func NewRecorder() Recorder {
	Register()
	return Recorder{}
}

func (Recorder) ObserveQuery(strategy string, count int, took time.Duration) {
	queriesTotal.WithLabelValues(strategy).Inc()
	if count == 0 {
		emptyResults.WithLabelValues(strategy).Inc()
	}
	queryDuration.WithLabelValues(strategy).Observe(took.Seconds())
}

func (Recorder) SetVocabularySize(n int) { vocabularyWords.Set(float64(n)) }

// IncRequestError counts a request rejected by a transport.
func IncRequestError(transport string) { requestErrors.WithLabelValues(transport).Inc() }
