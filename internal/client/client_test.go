package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inayah-hub/DASHBOARDS/internal/api/http/middleware"
	projectshttp "github.com/inayah-hub/DASHBOARDS/internal/projects/http"
	"github.com/inayah-hub/DASHBOARDS/internal/projects/repository"
	"github.com/inayah-hub/DASHBOARDS/internal/projects/service"
	"github.com/inayah-hub/DASHBOARDS/internal/storage/sqlite"
)

// newTestServer runs the real project API over an in-memory database and
// counts list requests.
func newTestServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sdb, err := sqlite.NewConnection(":memory:")
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(context.Background(), sdb))
	t.Cleanup(func() { sdb.Close() })

	var lists atomic.Int32
	r := gin.New()
	r.Use(middleware.Errors(nil))
	r.Use(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			lists.Add(1)
		}
	})
	svc := service.NewProjectService(repository.NewSQLiteRepository(sdb), nil)
	projectshttp.New(svc).Register(r.Group("/api/projects"))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, &lists
}

func strPtr(s string) *string { return &s }

func TestProjectsLifecycle(t *testing.T) {
	srv, lists := newTestServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	assert.Equal(t, StateIdle, c.Cache.Read(ProjectsKey).State)

	projects, err := c.Projects.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
	assert.Equal(t, StateSuccess, c.Cache.Read(ProjectsKey).State)

	_, err = c.Projects.List(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, lists.Load(), "second list is served from the cache")

	created, err := c.Projects.Create(ctx, CreateProjectRequest{ClientName: "Acme Corp", ProjectNo: "P-101", Media: "Video"})
	require.NoError(t, err)
	assert.Equal(t, "In Progress", created.Status)
	assert.Equal(t, StateIdle, c.Cache.Read(ProjectsKey).State, "create invalidates the list")

	projects, err = c.Projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.EqualValues(t, 2, lists.Load())

	updated, err := c.Projects.Update(ctx, created.ID, UpdateProjectRequest{Status: strPtr("Completed")})
	require.NoError(t, err)
	assert.Equal(t, "Completed", updated.Status)
	assert.Equal(t, "Video", updated.Media)

	projects, err = c.Projects.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Completed", projects[0].Status)

	require.NoError(t, c.Projects.Delete(ctx, created.ID))
	require.NoError(t, c.Projects.Delete(ctx, created.ID))

	projects, err = c.Projects.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestProjectsCreateValidationError(t *testing.T) {
	srv, _ := newTestServer(t)
	c := New(srv.URL)

	_, err := c.Projects.Create(context.Background(), CreateProjectRequest{ClientName: "Acme Corp", Media: "Video"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "projectNo", apiErr.Field)
	assert.NotEqual(t, "Failed to create project", apiErr.Message)
}

func TestProjectsUpdateNotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	c := New(srv.URL)

	_, err := c.Projects.Update(context.Background(), 4242, UpdateProjectRequest{Status: strPtr("Completed")})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Failed to update project", err.Error())
}

func TestProjectsServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Internal Server Error"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	_, err := c.Projects.List(ctx)
	assert.EqualError(t, err, "Failed to fetch projects")
	assert.Equal(t, StateError, c.Cache.Read(ProjectsKey).State)

	_, err = c.Projects.Create(ctx, CreateProjectRequest{ClientName: "A", ProjectNo: "P", Media: "Web"})
	assert.EqualError(t, err, "Failed to create project")

	err = c.Projects.Delete(ctx, 1)
	assert.EqualError(t, err, "Failed to delete project")
}

func TestProjectsRejectsMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":0,"clientName":"","projectNo":"P","media":"Web","status":"x","createdAt":"2024-01-01T00:00:00Z"}]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Projects.List(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Err.Error(), "invalid project in response")
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := New(url).Projects.Delete(context.Background(), 1)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Status)
	assert.Error(t, apiErr.Unwrap())
}

func TestRateLimitHonoursContext(t *testing.T) {
	srv, _ := newTestServer(t)
	c := New(srv.URL, WithRateLimit(0, 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Projects.Delete(ctx, 1)
	require.Error(t, err)
	assert.Contains(t, err.(*APIError).Err.Error(), "rate limiter")
}
