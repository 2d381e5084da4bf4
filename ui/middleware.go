package ui

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

// setupMiddleware configures the router middleware and the embedded assets
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())

	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		s.logger.Error("error creating static filesystem: %v", err)
		s.router.GET("/static/css/tpstats.css", func(c *gin.Context) {
			content, err := embeddedFiles.ReadFile("static/css/tpstats.css")
			if err != nil {
				s.logger.Warn("stylesheet not found: %v", err)
				c.String(http.StatusNotFound, "CSS file not found")
				return
			}
			c.Data(http.StatusOK, "text/css; charset=utf-8", content)
		})
		return
	}
	s.logger.Debug("serving static files from embedded FS at /static")
	s.router.StaticFS("/static", http.FS(staticFS))
}
