package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskhive/taskhive-api/internal/cache"
	"github.com/taskhive/taskhive-api/internal/tasks"
	"github.com/taskhive/taskhive-api/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateTaskRequest is the body of POST /api/tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ProjectID   string `json:"projectId"`
}

// TasksHandler serves task creation. Creating a task changes the populated
// project listing, so it invalidates the same cache key the projects handler
// maintains.
type TasksHandler struct {
	svc   *tasks.Service
	cache *cache.Cache
}

func NewTasksHandler(svc *tasks.Service, c *cache.Cache) *TasksHandler {
	return &TasksHandler{svc: svc, cache: c}
}

// Register routes under /api
func (h *TasksHandler) Register(rg *gin.RouterGroup) {
	rg.Group("/api").POST("/tasks", h.Create)
}

func (h *TasksHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	projectID, err := primitive.ObjectIDFromHex(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Specified id is not valid"})
		return
	}
	t, err := h.svc.Create(c.Request.Context(), req.Title, req.Description, projectID)
	if err != nil {
		logger.Errorf("an error occurred creating a new task: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if err := h.cache.Invalidate(c.Request.Context(), projectListKey); err != nil {
		logger.Warnf("project list cache invalidate failed: %v", err)
	}
	c.JSON(http.StatusOK, t)
}
