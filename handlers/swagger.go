package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>taskhive-api — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the public endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "taskhive-api", "version": "v0.1.0" },
  "paths": {
    "/auth/signup": {
      "post": {
        "summary": "Create a new account",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"password":{"type":"string"},"name":{"type":"string"}}}}}},
        "responses": { "200": { "description": "account created" }, "400": { "description": "validation failure" } }
      }
    },
    "/auth/login": {
      "post": {
        "summary": "Verify credentials and return a signed token",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"password":{"type":"string"}}}}}},
        "responses": { "200": { "description": "authToken returned" }, "401": { "description": "invalid credentials" } }
      }
    },
    "/auth/signup-google": {
      "post": {
        "summary": "Create an account for a federated identity (idempotent)",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"name":{"type":"string"},"idToken":{"type":"string"}}}}}},
        "responses": { "200": { "description": "created or already exists" }, "400": { "description": "validation failure" } }
      }
    },
    "/auth/verify": {
      "get": { "summary": "Echo decoded token claims", "responses": { "200": { "description": "claims" }, "401": { "description": "missing or invalid token" } } }
    },
    "/api/projects": {
      "get": { "summary": "List projects with tasks populated", "responses": { "200": { "description": "projects" } } },
      "post": { "summary": "Create a project", "responses": { "200": { "description": "project" } } }
    },
    "/api/projects/{id}": {
      "get": { "summary": "Get a project", "responses": { "200": { "description": "project" }, "400": { "description": "invalid id" }, "404": { "description": "unknown id" } } },
      "put": { "summary": "Update a project", "responses": { "200": { "description": "project" }, "400": { "description": "invalid id" }, "404": { "description": "unknown id" } } },
      "delete": { "summary": "Delete a project", "responses": { "200": { "description": "removal message" } } }
    },
    "/api/tasks": {
      "post": { "summary": "Create a task and attach it to its project", "responses": { "200": { "description": "task" } } }
    },
    "/api/upload": {
      "post": { "summary": "Store an image and return its URL", "responses": { "200": { "description": "imgUrl" }, "500": { "description": "upload failure" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
