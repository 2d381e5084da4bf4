package ui

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
)

// renderTemplate executes a template into a buffer first so a failing
// template never produces a half-written response.
func (s *Server) renderTemplate(c *gin.Context, status int, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		s.logger.Error("template error for %s: %v (data %T)", templateName, err, data)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Template rendering failed", "details": err.Error()})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Writer.WriteHeader(status)
	if _, err := buf.WriteTo(c.Writer); err != nil {
		s.logger.Error("error writing template response: %v", err)
	}
}

// isHTMX reports whether the request was issued by htmx
func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}
