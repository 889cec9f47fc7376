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
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>portfolio-api - Swagger</title>
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

// Minimal OpenAPI document describing the API surface.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "portfolio-api", "version": "v0.1.0" },
  "paths": {
    "/api/setup": {
      "post": { "summary": "One-time administrator bootstrap", "responses": { "201": { "description": "account created" }, "409": { "description": "an account already exists" } } }
    },
    "/api/auth/login": {
      "post": {
        "summary": "Login with email and password",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"password":{"type":"string"}}}}}},
        "responses": { "200": { "description": "tokens returned" }, "401": { "description": "invalid credentials" } }
      }
    },
    "/api/auth/refresh": {
      "post": { "summary": "Refresh access token", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refreshToken":{"type":"string"}}}}}}, "responses": { "200": { "description": "new access token" }, "401": { "description": "invalid refresh" } } }
    },
    "/api/auth/logout": {
      "post": { "summary": "Logout and invalidate the session", "responses": { "200": { "description": "logged out" } } }
    },
    "/api/auth/change-password": {
      "post": { "summary": "Change the administrator password", "responses": { "200": { "description": "changed" }, "401": { "description": "current password incorrect" } } }
    },
    "/api/auth/change-email": {
      "post": { "summary": "Change the administrator email", "responses": { "200": { "description": "changed" }, "409": { "description": "email already in use" } } }
    },
    "/api/contact": {
      "get": { "summary": "List contact messages (admin)", "responses": { "200": { "description": "messages" } } },
      "post": { "summary": "Submit a contact message (public)", "responses": { "201": { "description": "created" }, "400": { "description": "missing fields" } } }
    },
    "/api/projects": {
      "get": { "summary": "List projects (public)", "responses": { "200": { "description": "projects" } } },
      "post": { "summary": "Create a project (admin)", "responses": { "201": { "description": "created" } } }
    },
    "/api/notifications": {
      "get": { "summary": "List notifications (admin)", "responses": { "200": { "description": "notifications" } } }
    },
    "/api/notifications/mark-all-read": {
      "post": { "summary": "Mark every notification read (idempotent)", "responses": { "200": { "description": "count of modified documents" } } }
    },
    "/api/resume": {
      "get": { "summary": "List resumes (admin)", "responses": { "200": { "description": "resumes" } } },
      "post": { "summary": "Create a resume (admin)", "responses": { "201": { "description": "created" } } }
    },
    "/api/resume/{id}/export": {
      "get": { "summary": "Export a resume as txt, pdf or docx", "responses": { "200": { "description": "rendered document" }, "400": { "description": "unsupported format" } } }
    },
    "/api/about": {
      "get": { "summary": "Read the about document (public, empty default when absent)", "responses": { "200": { "description": "about" } } },
      "post": { "summary": "Save the about document (admin)", "responses": { "200": { "description": "saved" } } }
    },
    "/api/profile": {
      "get": { "summary": "Public contact profile", "responses": { "200": { "description": "profile" } } }
    },
    "/api/upload": {
      "post": { "summary": "Upload a project image (admin)", "responses": { "201": { "description": "stored, presigned URL returned" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
