package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "regionnames"

type metrics struct {
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	lookups       *prometheus.CounterVec
	matchCacheHit *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	var (
		requests = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Number of handled HTTP requests",
		}, []string{"route", "code"})

		duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request handling time",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"})

		lookups = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Number of served name lookups per locale",
		}, []string{"locale"})

		matchCacheHit = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "match_cache_total",
			Help:      "Accept-Language resolutions by cache result",
		}, []string{"result"})
	)
	reg.MustRegister(requests, duration, lookups, matchCacheHit)
	return &metrics{
		requests:      requests,
		duration:      duration,
		lookups:       lookups,
		matchCacheHit: matchCacheHit,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// instrument counts and times the requests of a route.
func (m *metrics) instrument(route string, f http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		f(rec, r)
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
	}
}
