package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eapiis", Name: "http_requests_total", Help: "Handled HTTP requests",
	}, []string{"method", "route", "status"})

	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "eapiis", Name: "http_request_duration_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	MediaOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eapiis", Name: "media_operations_total", Help: "Calls to the media host",
	}, []string{"operation", "kind", "result"})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, MediaOperations)
}

func Handler() http.Handler { return promhttp.Handler() }

// ObserveHTTP records one finished request.
func ObserveHTTP(method, route, status string, d time.Duration) {
	HTTPRequests.WithLabelValues(method, route, status).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveMedia records one media host call.
func ObserveMedia(operation, kind string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	MediaOperations.WithLabelValues(operation, kind, result).Inc()
}
