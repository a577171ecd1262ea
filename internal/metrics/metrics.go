// Package metrics Prometheus-метрики сервиса оценки риска.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fraud_scoring"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route pattern and status class.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// AnalysesTotal завершённые анализы по режиму и решению
	AnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Completed transaction analyses by mode and decision.",
		},
		[]string{"mode", "decision"},
	)

	AnalysisDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "End-to-end analysis duration including explanation.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"mode"},
	)

	ExplainerFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "explainer_fallbacks_total",
			Help:      "Explanation texts replaced by the fixed fallback.",
		},
		[]string{"kind"},
	)

	// DecisionEventsTotal result: queued, dropped, sent, failed
	DecisionEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decision_events_total",
			Help:      "BLOCK/REVIEW decision events by delivery result.",
		},
		[]string{"result"},
	)

	// BehaviorMessagesTotal result: stored, skipped, failed
	BehaviorMessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "behavior_messages_total",
			Help:      "Behavior pattern messages consumed from Kafka by result.",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		AnalysesTotal,
		AnalysisDuration,
		ExplainerFallbacksTotal,
		DecisionEventsTotal,
		BehaviorMessagesTotal,
	)
}

// ObserveAnalysis фиксирует завершённый анализ
func ObserveAnalysis(mode, decision string, started time.Time) {
	AnalysesTotal.WithLabelValues(mode, decision).Inc()
	AnalysisDuration.WithLabelValues(mode).Observe(time.Since(started).Seconds())
}

// Middleware метки пути берутся из шаблона маршрута chi, а не из URL
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		path := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		HTTPRequestsTotal.WithLabelValues(r.Method, path, statusBucket(status)).Inc()
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func statusBucket(code int) string {
	if code < 100 || code > 599 {
		return "other"
	}
	return strconv.Itoa(code/100) + "xx"
}
