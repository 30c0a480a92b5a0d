// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sign-in methods.
const (
	SignInLocal  = "local"
	SignInGitHub = "github"
	SignInYandex = "yandex"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "survey_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "survey_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	signInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "survey_sign_ins_total",
			Help: "Successful sign-ins by method",
		},
		[]string{"method"},
	)

	surveysCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "survey_surveys_created_total",
			Help: "Total number of surveys created",
		},
	)

	responsesSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "survey_responses_submitted_total",
			Help: "Total number of survey responses submitted",
		},
	)

	sweeperDeletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "survey_sweeper_deleted_total",
			Help: "Rows removed by the background sweeper by kind",
		},
		[]string{"kind"},
	)

	dbPoolConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "survey_db_pool_connections",
			Help: "Database pool connections by state",
		},
		[]string{"state"},
	)

	dbPoolWaitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "survey_db_pool_waits_total",
			Help: "Times a caller waited for a free database connection",
		},
	)
)

// ObserveHTTPRequest records one served request. path is the route template, not the raw URL.
func ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// SignIn counts a successful sign-in.
func SignIn(method string) {
	signInsTotal.WithLabelValues(method).Inc()
}

// SurveyCreated counts a created survey.
func SurveyCreated() {
	surveysCreatedTotal.Inc()
}

// ResponseSubmitted counts a submitted response.
func ResponseSubmitted() {
	responsesSubmittedTotal.Inc()
}

// SweeperDeleted adds n removed rows of kind.
func SweeperDeleted(kind string, n int64) {
	if n <= 0 {
		return
	}
	sweeperDeletedTotal.WithLabelValues(kind).Add(float64(n))
}

// ObserveDBPool records a pool snapshot; waits is the increase since the last snapshot.
func ObserveDBPool(open, inUse, idle int, waits int64) {
	dbPoolConnections.WithLabelValues("open").Set(float64(open))
	dbPoolConnections.WithLabelValues("in_use").Set(float64(inUse))
	dbPoolConnections.WithLabelValues("idle").Set(float64(idle))
	if waits > 0 {
		dbPoolWaitsTotal.Add(float64(waits))
	}
}

// Handler serves the default registry in the exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
