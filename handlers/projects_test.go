package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive-api/internal/cache"
	"github.com/taskhive/taskhive-api/internal/projects"
	"github.com/taskhive/taskhive-api/internal/tasks"
)

func newAPIRouter(t *testing.T, withCache bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var listCache *cache.Cache
	if withCache {
		m, err := mr.Run()
		require.NoError(t, err)
		t.Cleanup(m.Close)
		listCache = cache.New(redis.NewClient(&redis.Options{Addr: m.Addr()}), "test:", time.Minute)
	}

	projectRepo := projects.NewMemoryRepository()
	taskRepo := tasks.NewMemoryRepository()
	projectSvc := projects.NewService(projectRepo, taskRepo)
	taskSvc := tasks.NewService(taskRepo, projectRepo)

	g := gin.New()
	NewProjectsHandler(projectSvc, listCache).Register(g.Group("/"))
	NewTasksHandler(taskSvc, listCache).Register(g.Group("/"))
	return g
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func getJSON(t *testing.T, g *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestProjectCRUD(t *testing.T) {
	g := newAPIRouter(t, false)

	w := postJSON(t, g, "/api/projects", CreateProjectRequest{Title: "Website", Description: "Marketing site", ImgURL: "https://img.example/x.png"})
	require.Equal(t, http.StatusOK, w.Code)
	created := decodeBody(t, w)
	id := created["id"].(string)
	require.NotEmpty(t, id)
	require.Equal(t, "Website", created["title"])
	require.NotNil(t, created["tasks"])

	w = getJSON(t, g, "/api/projects/"+id)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Website", decodeBody(t, w)["title"])

	req := httptest.NewRequest(http.MethodPut, "/api/projects/"+id, jsonBody(t, UpdateProjectRequest{Title: "Website v2", Description: "Relaunch"}))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Website v2", decodeBody(t, w)["title"])

	req = httptest.NewRequest(http.MethodDelete, "/api/projects/"+id, nil)
	w = httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, decodeBody(t, w)["message"], "was removed successfully")

	w = getJSON(t, g, "/api/projects/"+id)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "No project found with specified id", decodeBody(t, w)["message"])
}

func TestProjectRoutes_InvalidID(t *testing.T) {
	g := newAPIRouter(t, false)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/projects/not-a-valid-id", jsonBody(t, UpdateProjectRequest{}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		g.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code, "%s should reject malformed ids", method)
		require.Equal(t, "Specified id is not valid", decodeBody(t, w)["message"])
	}
}

func TestTaskCreateAttachesToProject(t *testing.T) {
	g := newAPIRouter(t, false)

	w := postJSON(t, g, "/api/projects", CreateProjectRequest{Title: "Backend", Description: "API"})
	require.Equal(t, http.StatusOK, w.Code)
	projectID := decodeBody(t, w)["id"].(string)

	w = postJSON(t, g, "/api/tasks", CreateTaskRequest{Title: "Design schema", Description: "collections", ProjectID: projectID})
	require.Equal(t, http.StatusOK, w.Code)
	task := decodeBody(t, w)
	require.Equal(t, "Design schema", task["title"])
	require.Equal(t, projectID, task["project"])

	// project reads now include the populated task
	w = getJSON(t, g, "/api/projects/"+projectID)
	require.Equal(t, http.StatusOK, w.Code)
	var project struct {
		Tasks []map[string]interface{} `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	require.Len(t, project.Tasks, 1)
	require.Equal(t, task["id"], project.Tasks[0]["id"])
}

func TestTaskCreate_InvalidProjectID(t *testing.T) {
	g := newAPIRouter(t, false)

	w := postJSON(t, g, "/api/tasks", CreateTaskRequest{Title: "T", Description: "d", ProjectID: "nope"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Specified id is not valid", decodeBody(t, w)["message"])
}

func TestProjectList_CacheInvalidation(t *testing.T) {
	g := newAPIRouter(t, true)

	w := postJSON(t, g, "/api/projects", CreateProjectRequest{Title: "First", Description: ""})
	require.Equal(t, http.StatusOK, w.Code)

	// prime the cache
	w = getJSON(t, g, "/api/projects")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	// a write must invalidate; the next read sees the new project
	w = postJSON(t, g, "/api/projects", CreateProjectRequest{Title: "Second", Description: ""})
	require.Equal(t, http.StatusOK, w.Code)

	w = getJSON(t, g, "/api/projects")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)

	// task creation also changes the populated listing
	projectID := list[0]["id"].(string)
	w = postJSON(t, g, "/api/tasks", CreateTaskRequest{Title: "T", Description: "", ProjectID: projectID})
	require.Equal(t, http.StatusOK, w.Code)

	w = getJSON(t, g, "/api/projects")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	found := false
	for _, p := range list {
		if p["id"] == projectID {
			tasks, _ := p["tasks"].([]interface{})
			found = len(tasks) == 1
		}
	}
	require.True(t, found, "cached listing must reflect the new task")
}
