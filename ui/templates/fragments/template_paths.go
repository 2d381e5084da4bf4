// Package fragments provides the names of the page templates
package fragments

// Template names, as defined in ui/templates
const (
	// Full pages
	IndexPage = "index.html"

	// Fragments returned to htmx requests
	PaneBody       = "pane_body"
	PaneNotFound   = "pane_not_found"
	PaneBadRequest = "pane_bad_request"
)

// GetAllTemplateNames returns the names every parsed template set must define
func GetAllTemplateNames() []string {
	return []string{
		IndexPage,
		PaneBody,
		PaneNotFound,
		PaneBadRequest,
	}
}
