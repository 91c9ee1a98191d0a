package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestUpload_MissingFileField(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	NewUploadsHandler(nil).Register(g.Group("/"))

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "file field is required", decodeBody(t, w)["message"])
}
