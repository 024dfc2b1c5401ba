package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursesvc/internal/app/models"
	"github.com/yigit/coursesvc/internal/app/models/dto"
	"github.com/yigit/coursesvc/internal/config"
)

const notFoundMessage = "The course with the given ID was not found."

func newTestServer(t *testing.T, configure ...func(*config.Config)) *Server {
	cfg := config.Default()
	cfg.Server.Mode = "test"
	for _, f := range configure {
		f(cfg)
	}

	s, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)
	return s
}

func do(s *Server, method, target, body string) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
	}
	response := httptest.NewRecorder()
	s.Handler().ServeHTTP(response, request)
	return response
}

func decodeCourse(t *testing.T, response *httptest.ResponseRecorder) models.Course {
	var course models.Course
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &course))
	return course
}

func decodeCourses(t *testing.T, response *httptest.ResponseRecorder) []models.Course {
	var courses []models.Course
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &courses))
	return courses
}

func TestGreeting(t *testing.T) {
	response := do(newTestServer(t), http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "Hello World from Express!", response.Body.String())
}

func TestInitialCollection(t *testing.T) {
	response := do(newTestServer(t), http.MethodGet, "/api/courses", "")
	require.Equal(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `[
		{"id":1,"name":"course1"},
		{"id":2,"name":"course2"},
		{"id":3,"name":"course3"},
		{"id":4,"name":"course4"},
		{"id":5,"name":"course5"}
	]`, response.Body.String())
}

func TestCreateCourseScenario(t *testing.T) {
	s := newTestServer(t)

	response := do(s, http.MethodPost, "/api/courses", `{"name":"course6"}`)
	require.Equal(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `{"id":6,"name":"course6"}`, response.Body.String())

	assert.Len(t, decodeCourses(t, do(s, http.MethodGet, "/api/courses", "")), 6)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	s := newTestServer(t)

	for _, name := range []string{"abc", "Operating Systems", "名前です", "x y z"} {
		created := do(s, http.MethodPost, "/api/courses", fmt.Sprintf(`{"name":%q}`, name))
		require.Equal(t, http.StatusOK, created.Code, created.Body.String())
		course := decodeCourse(t, created)

		fetched := do(s, http.MethodGet, fmt.Sprintf("/api/courses/%d", course.ID), "")
		require.Equal(t, http.StatusOK, fetched.Code)
		assert.Equal(t, name, decodeCourse(t, fetched).Name)
	}
}

func TestUpdateCourseScenario(t *testing.T) {
	s := newTestServer(t)

	response := do(s, http.MethodPut, "/api/courses/1", `{"name":"newName"}`)
	require.Equal(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `{"id":1,"name":"newName"}`, response.Body.String())

	assert.JSONEq(t, `{"id":1,"name":"newName"}`, do(s, http.MethodGet, "/api/courses/1", "").Body.String())
}

func TestDeleteCourseScenario(t *testing.T) {
	s := newTestServer(t)

	response := do(s, http.MethodDelete, "/api/courses/2", "")
	require.Equal(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `{"id":2,"name":"course2"}`, response.Body.String())

	response = do(s, http.MethodGet, "/api/courses/2", "")
	assert.Equal(t, http.StatusNotFound, response.Code)
	assert.Equal(t, notFoundMessage, response.Body.String())
	assert.Len(t, decodeCourses(t, do(s, http.MethodGet, "/api/courses", "")), 4)
}

func TestUnknownIDsAreNotFound(t *testing.T) {
	s := newTestServer(t)

	for _, id := range []string{"0", "6", "-1", "999999", "abc", "99999999999999999999"} {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			t.Run(method+" "+id, func(t *testing.T) {
				body := ""
				if method == http.MethodPut {
					body = `{"name":"newName"}`
				}

				response := do(s, method, "/api/courses/"+id, body)
				assert.Equal(t, http.StatusNotFound, response.Code)
				assert.Equal(t, notFoundMessage, response.Body.String())
			})
		}
	}
	assert.Len(t, decodeCourses(t, do(s, http.MethodGet, "/api/courses", "")), 5)
}

func TestLenientIDParsing(t *testing.T) {
	response := do(newTestServer(t), http.MethodGet, "/api/courses/3abc", "")
	require.Equal(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `{"id":3,"name":"course3"}`, response.Body.String())
}

func TestHexIDs(t *testing.T) {
	s := newTestServer(t)

	response := do(s, http.MethodGet, "/api/courses/0x1", "")
	require.Equal(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `{"id":1,"name":"course1"}`, response.Body.String())

	response = do(s, http.MethodDelete, "/api/courses/0X5", "")
	require.Equal(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `{"id":5,"name":"course5"}`, response.Body.String())

	assert.Equal(t, http.StatusNotFound, do(s, http.MethodGet, "/api/courses/0x", "").Code)
}

func TestNonJSONBodiesReadAsEmpty(t *testing.T) {
	s := newTestServer(t)

	for _, contentType := range []string{"text/plain", "application/x-www-form-urlencoded", ""} {
		t.Run("content type "+contentType, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/courses", strings.NewReader("hello"))
			if contentType != "" {
				request.Header.Set("Content-Type", contentType)
			}
			response := httptest.NewRecorder()
			s.Handler().ServeHTTP(response, request)

			assert.Equal(t, http.StatusBadRequest, response.Code)
			assert.Equal(t, `"name" is required`, response.Body.String())
		})
	}
	assert.Len(t, decodeCourses(t, do(s, http.MethodGet, "/api/courses", "")), 5)
}

func TestNameLengthCountsCharacters(t *testing.T) {
	s := newTestServer(t)

	response := do(s, http.MethodPost, "/api/courses", `{"name":"😀a"}`)
	assert.Equal(t, http.StatusBadRequest, response.Code)
	assert.Equal(t, `"name" length must be at least 3 characters long`, response.Body.String())

	response = do(s, http.MethodPost, "/api/courses", `{"name":"😀ab"}`)
	require.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "😀ab", decodeCourse(t, response).Name)
}

func TestRequestIDIsPropagated(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	request.Header.Set("X-Request-ID", "trace-42")
	response := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(response, request)

	assert.Equal(t, "trace-42", response.Header().Get("X-Request-ID"))
}

func TestInvalidNamesAreRejected(t *testing.T) {
	testData := []struct {
		name    string
		body    string
		message string
	}{
		{"missing", `{}`, `"name" is required`},
		{"no body", ``, `"name" is required`},
		{"empty", `{"name":""}`, `"name" is not allowed to be empty`},
		{"too short", `{"name":"ab"}`, `"name" length must be at least 3 characters long`},
		{"not a string", `{"name":12345}`, `"name" must be a string`},
		{"unknown key", `{"name":"course6","level":2}`, `"level" is not allowed`},
		{"not an object", `["course6"]`, `"value" must be an object`},
	}

	for _, record := range testData {
		for _, target := range []struct{ method, path string }{
			{http.MethodPost, "/api/courses"},
			{http.MethodPut, "/api/courses/1"},
		} {
			t.Run(record.name+" "+target.method, func(t *testing.T) {
				s := newTestServer(t)

				response := do(s, target.method, target.path, record.body)
				assert.Equal(t, http.StatusBadRequest, response.Code)
				assert.Equal(t, record.message, response.Body.String())

				assert.JSONEq(t, `{"id":1,"name":"course1"}`, do(s, http.MethodGet, "/api/courses/1", "").Body.String())
				assert.Len(t, decodeCourses(t, do(s, http.MethodGet, "/api/courses", "")), 5)
			})
		}
	}
}

func TestMalformedJSONIsRejected(t *testing.T) {
	s := newTestServer(t)

	response := do(s, http.MethodPost, "/api/courses", `{"name": "course6"`)
	assert.Equal(t, http.StatusBadRequest, response.Code)
	assert.Contains(t, response.Body.String(), "invalid JSON body")

	// body parsing happens before the id lookup
	response = do(s, http.MethodPut, "/api/courses/77", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, response.Code)
}

func TestUpdateChecksIDBeforeBody(t *testing.T) {
	response := do(newTestServer(t), http.MethodPut, "/api/courses/77", `{"name":"ab"}`)
	assert.Equal(t, http.StatusNotFound, response.Code)
	assert.Equal(t, notFoundMessage, response.Body.String())
}

func TestGetIsIdempotent(t *testing.T) {
	s := newTestServer(t)

	first := do(s, http.MethodGet, "/api/courses/4", "")
	second := do(s, http.MethodGet, "/api/courses/4", "")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestIDStrategies(t *testing.T) {
	testData := []struct {
		strategy   string
		expectedID int64
	}{
		{config.IDStrategySequence, 6},
		{config.IDStrategyLength, 5},
	}

	for _, record := range testData {
		t.Run(record.strategy, func(t *testing.T) {
			s := newTestServer(t, func(cfg *config.Config) { cfg.Courses.IDStrategy = record.strategy })

			require.Equal(t, http.StatusOK, do(s, http.MethodDelete, "/api/courses/3", "").Code)
			created := do(s, http.MethodPost, "/api/courses", `{"name":"course6"}`)
			require.Equal(t, http.StatusOK, created.Code)
			assert.Equal(t, record.expectedID, decodeCourse(t, created).ID)
		})
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	do(s, http.MethodDelete, "/api/courses/1", "")

	response := do(s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, response.Code)

	var body struct {
		Data dto.HealthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &body))
	assert.Equal(t, dto.HealthResponse{Status: "ok", Courses: 4}, body.Data)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	do(s, http.MethodGet, "/api/courses/1", "")

	response := do(s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), "coursesvc_courses_stored 5")
	assert.Contains(t, response.Body.String(), `coursesvc_http_requests_total{code="200",method="GET",route="/api/courses/:id"} 1`)

	disabled := newTestServer(t, func(cfg *config.Config) { cfg.Metrics.Enabled = false })
	assert.Equal(t, http.StatusNotFound, do(disabled, http.MethodGet, "/metrics", "").Code)
}

func TestSwaggerEndpoint(t *testing.T) {
	response := do(newTestServer(t), http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), "/api/courses/{id}")

	disabled := newTestServer(t, func(cfg *config.Config) { cfg.Swagger.Enabled = false })
	assert.Equal(t, http.StatusNotFound, do(disabled, http.MethodGet, "/swagger/doc.json", "").Code)
}

func TestRequestIDHeader(t *testing.T) {
	response := do(newTestServer(t), http.MethodGet, "/api/courses", "")
	assert.NotEmpty(t, response.Header().Get("X-Request-ID"))
}

func TestServeAndShutdown(t *testing.T) {
	var (
		s           = newTestServer(t)
		ctx, cancel = context.WithCancel(context.Background())
		done        = make(chan error, 1)
	)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() { done <- s.Serve(ctx, listener) }()

	response, err := http.Get("http://" + listener.Addr().String() + "/api/courses/1")
	require.NoError(t, err)
	response.Body.Close()
	assert.Equal(t, http.StatusOK, response.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestNewServerRejectsBadConfig(t *testing.T) {
	t.Setenv("COURSES_ID_STRATEGY", "random")

	s, err := NewServer(Options{ConfigPath: "does-not-exist.yaml"})
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestNewServerAppliesPortOverride(t *testing.T) {
	t.Setenv("SERVER_MODE", "test")
	t.Setenv("LOG_LEVEL", "disabled")

	s, err := NewServer(Options{ConfigPath: "does-not-exist.yaml", Port: "4567"})
	require.NoError(t, err)
	assert.Equal(t, ":4567", s.http.Addr)
}
