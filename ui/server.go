package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"tpstats/domain/timepoint"
	"tpstats/internal"
	"tpstats/ui/binder"
	"tpstats/ui/middleware"
	"tpstats/ui/templates/fragments"
	"tpstats/ui/view"
)

//go:embed templates/*.html templates/fragments/*.html static/css/*.css
var embeddedFiles embed.FS

// Server represents the web server of the timepoint stats page
type Server struct {
	router    *gin.Engine
	templates *template.Template
	binder    *binder.TimepointStatsBinder
	logger    *internal.Logger
	title     string
}

// Options holds server settings
type Options struct {
	Title   string
	GinMode string
}

// NewServer creates a new web server instance over the binder's document
func NewServer(b *binder.TimepointStatsBinder, logger *internal.Logger, opts Options) (*Server, error) {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	if opts.GinMode != "" {
		gin.SetMode(opts.GinMode)
	}
	if opts.Title == "" {
		opts.Title = "Timepoint statistics"
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:    gin.New(),
		templates: templates,
		binder:    b,
		logger:    logger.Named("UI"),
		title:     opts.Title,
	}
	s.router.Use(gin.Logger())
	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"rowClass": timepoint.RowClass,
		"hidden": func(e *view.Element) string {
			if e.IsVisible() {
				return ""
			}
			return " d-none"
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html", "templates/fragments/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	for _, name := range fragments.GetAllTemplateNames() {
		if templates.Lookup(name) == nil {
			return nil, fmt.Errorf("template %s is not defined", name)
		}
	}
	return templates, nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/healthz", s.handleHealth)

	// Loaded on tab activation
	timepoints := s.router.Group("/", middleware.NoStore())
	timepoints.GET("/timepoints/:id/pane", s.handlePane)
	timepoints.GET("/timepoints/:id/export.xlsx", s.handleExport)
	timepoints.GET("/api/timepoints/:id", s.handlePaneJSON)
}

// Handler returns the HTTP handler of the server
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	s.logger.Info("starting timepoint stats UI on http://%s", addr)
	return s.router.Run(addr)
}
