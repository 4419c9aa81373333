package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	version string
}

// NewHandlers creates a new handler set
func NewHandlers(version string) *Handlers {
	return &Handlers{version: version}
}

// Root returns a greeting
func (h *Handlers) Root(c *gin.Context) {
	c.String(http.StatusOK, "Hello, World!")
}

// Hello greets the caller by name
func (h *Handlers) Hello(c *gin.Context) {
	c.String(http.StatusOK, "Hello, %s!", c.Param("name"))
}

// Health handles health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": h.version,
	})
}
