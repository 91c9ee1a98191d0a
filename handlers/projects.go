package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskhive/taskhive-api/internal/cache"
	"github.com/taskhive/taskhive-api/internal/models"
	"github.com/taskhive/taskhive-api/internal/projects"
	"github.com/taskhive/taskhive-api/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// projectListKey is the cache key for the full project listing.
const projectListKey = "projects:all"

// CreateProjectRequest is the body of POST /api/projects.
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImgURL      string `json:"imgUrl"`
}

// UpdateProjectRequest is the body of PUT /api/projects/:id.
type UpdateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProjectsHandler serves project CRUD. The cache is optional (nil-safe) and
// only fronts the listing endpoint; every write invalidates it.
type ProjectsHandler struct {
	svc   *projects.Service
	cache *cache.Cache
}

func NewProjectsHandler(svc *projects.Service, c *cache.Cache) *ProjectsHandler {
	return &ProjectsHandler{svc: svc, cache: c}
}

// Register routes under /api
func (h *ProjectsHandler) Register(rg *gin.RouterGroup) {
	api := rg.Group("/api")
	api.POST("/projects", h.Create)
	api.GET("/projects", h.List)
	api.GET("/projects/:id", h.Get)
	api.PUT("/projects/:id", h.Update)
	api.DELETE("/projects/:id", h.Delete)
}

func (h *ProjectsHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	p, err := h.svc.Create(c.Request.Context(), req.Title, req.Description, req.ImgURL)
	if err != nil {
		logger.Errorf("an error occurred creating a new project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	h.invalidateList(c)
	c.JSON(http.StatusOK, p)
}

func (h *ProjectsHandler) List(c *gin.Context) {
	var cached []*models.Project
	if hit, err := h.cache.Get(c.Request.Context(), projectListKey, &cached); err == nil && hit {
		c.JSON(http.StatusOK, cached)
		return
	} else if err != nil {
		logger.Warnf("project list cache read failed: %v", err)
	}

	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Errorf("an error occurred getting all the projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if err := h.cache.Set(c.Request.Context(), projectListKey, list); err != nil {
		logger.Warnf("project list cache write failed: %v", err)
	}
	c.JSON(http.StatusOK, list)
}

func (h *ProjectsHandler) Get(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if err == projects.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "No project found with specified id"})
			return
		}
		logger.Errorf("an error occurred getting the project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectsHandler) Update(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	p, err := h.svc.Update(c.Request.Context(), id, req.Title, req.Description)
	if err != nil {
		if err == projects.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "No project found with specified id"})
			return
		}
		logger.Errorf("an error occurred updating the project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	h.invalidateList(c)
	c.JSON(http.StatusOK, p)
}

func (h *ProjectsHandler) Delete(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		logger.Errorf("an error occurred deleting the project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	h.invalidateList(c)
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Project with %s was removed successfully.", id.Hex())})
}

func (h *ProjectsHandler) invalidateList(c *gin.Context) {
	if err := h.cache.Invalidate(c.Request.Context(), projectListKey); err != nil {
		logger.Warnf("project list cache invalidate failed: %v", err)
	}
}

// objectID parses the :id path param, replying 400 on anything that is not a
// valid store id.
func objectID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Specified id is not valid"})
		return primitive.NilObjectID, false
	}
	return id, true
}
