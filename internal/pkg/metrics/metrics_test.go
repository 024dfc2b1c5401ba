package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMiddlewareCountsByRouteTemplate(t *testing.T) {
	var (
		assert = assert.New(t)
		m      = New()
		router = gin.New()
	)

	router.Use(m.Middleware())
	router.GET("/api/courses/:id", func(c *gin.Context) { c.String(http.StatusNotFound, "nope") })

	for _, target := range []string{"/api/courses/1", "/api/courses/2", "/elsewhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.Equal(2.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/courses/:id", http.MethodGet, "404")))
	assert.Equal(1.0, testutil.ToFloat64(m.requests.WithLabelValues(unmatchedRoute, http.MethodGet, "404")))
	assert.Equal(2, testutil.CollectAndCount(m.requestDuration))
}

func TestObserveCoursesAndHandler(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		m       = New()
		count   = 5
	)

	m.ObserveCourses(func() int { return count })
	count = 7

	response := httptest.NewRecorder()
	m.Handler().ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(http.StatusOK, response.Code)
	assert.Contains(response.Body.String(), "coursesvc_courses_stored 7")
	assert.Contains(response.Body.String(), "go_goroutines")

	families, err := m.Registry().Gather()
	require.NoError(err)
	assert.NotEmpty(families)
}
