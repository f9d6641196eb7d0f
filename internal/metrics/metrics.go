package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rentmarket",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rentmarket",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	paymentsSettled = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rentmarket",
		Name:      "payments_settled_total",
		Help:      "Payments confirmed as paid, by kind.",
	}, []string{"kind"})

	ratingsRecomputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rentmarket",
		Name:      "ratings_recomputed_total",
		Help:      "Successful rating recomputations, by subject.",
	}, []string{"subject"})
)

// PaymentSettled counts a confirmed payment of the given kind
// (subscription, rent, lease_document).
func PaymentSettled(kind string) {
	paymentsSettled.WithLabelValues(kind).Inc()
}

// RatingRecomputed counts a persisted rating refresh for the given
// subject (tenant, landlord, property).
func RatingRecomputed(subject string) {
	ratingsRecomputed.WithLabelValues(subject).Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records per-route counters and latency. The route label uses
// the chi pattern so path parameters don't explode cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).Inc()
		requestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
