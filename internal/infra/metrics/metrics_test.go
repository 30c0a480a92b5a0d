package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(signInsTotal.WithLabelValues(SignInGitHub))
	SignIn(SignInGitHub)
	assert.Equal(t, before+1, testutil.ToFloat64(signInsTotal.WithLabelValues(SignInGitHub)))

	before = testutil.ToFloat64(sweeperDeletedTotal.WithLabelValues("sessions"))
	SweeperDeleted("sessions", 4)
	SweeperDeleted("sessions", 0)
	assert.Equal(t, before+4, testutil.ToFloat64(sweeperDeletedTotal.WithLabelValues("sessions")))

	before = testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/", "200"))
	ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, 5*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/", "200")))
}

func TestHandler(t *testing.T) {
	SurveyCreated()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "survey_surveys_created_total")
}

func TestObserveDBPool(t *testing.T) {
	before := testutil.ToFloat64(dbPoolWaitsTotal)

	ObserveDBPool(10, 7, 3, 2)
	ObserveDBPool(10, 4, 6, 0)

	assert.Equal(t, 4.0, testutil.ToFloat64(dbPoolConnections.WithLabelValues("in_use")))
	assert.Equal(t, 6.0, testutil.ToFloat64(dbPoolConnections.WithLabelValues("idle")))
	assert.Equal(t, before+2, testutil.ToFloat64(dbPoolWaitsTotal))
}
