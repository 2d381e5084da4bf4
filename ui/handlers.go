package ui

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tpstats/domain/timepoint"
	"tpstats/ui/binder"
	"tpstats/ui/templates/fragments"
	"tpstats/ui/view"
)

// paneView is the template data of one pane
type paneView struct {
	Pane   *view.Pane
	Active bool
}

type indexPage struct {
	Title        string
	Panes        []paneView
	DebugEnabled bool
}

// handleIndex serves the tabbed page with every pane in its current state
func (s *Server) handleIndex(c *gin.Context) {
	doc := s.binder.Document()
	page := indexPage{
		Title:        s.title,
		DebugEnabled: s.binder.Config().DebugEnabled,
	}
	for _, p := range doc.Panes() {
		page.Panes = append(page.Panes, paneView{Pane: p.Snapshot(), Active: p.ID == doc.ActiveID()})
	}
	s.renderTemplate(c, http.StatusOK, fragments.IndexPage, page)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timepoints": len(s.binder.Document().Panes())})
}

// handlePane loads the timepoint and returns its re-rendered pane body
func (s *Server) handlePane(c *gin.Context) {
	id, err := timepoint.ParseID(c.Param("id"))
	if err != nil {
		s.renderTemplate(c, http.StatusBadRequest, fragments.PaneBadRequest, err.Error())
		return
	}
	s.logger.Debug("pane %s requested (htmx=%v)", id, isHTMX(c))

	outcome := s.binder.LoadTimepointData(c.Request.Context(), id)
	if outcome == binder.OutcomeMissingTarget {
		s.renderTemplate(c, http.StatusNotFound, fragments.PaneNotFound, id.String())
		return
	}

	p, _ := s.binder.Document().Pane(id)
	s.renderTemplate(c, http.StatusOK, fragments.PaneBody, paneView{Pane: p.Snapshot()})
}

// paneState is the JSON rendering of a pane after a load
type paneState struct {
	ID           string                       `json:"id"`
	Outcome      string                       `json:"outcome"`
	LoadID       string                       `json:"load_id"`
	LoadingShown bool                         `json:"loading_shown"`
	StatsShown   bool                         `json:"stats_shown"`
	ErrorShown   bool                         `json:"error_shown"`
	ErrorHTML    string                       `json:"error_html,omitempty"`
	DebugShown   bool                         `json:"debug_shown"`
	DebugInfo    string                       `json:"debug_info,omitempty"`
	EdgeCoverage []string                     `json:"edge_coverage"`
	Original     map[string]map[string]string `json:"original"`
	Biclique     map[string]string            `json:"biclique"`
}

func newPaneState(p *view.Pane, outcome binder.Outcome) paneState {
	state := paneState{
		ID:           p.ID.String(),
		Outcome:      outcome.String(),
		LoadID:       p.LastLoadID,
		LoadingShown: p.LoadingIndicator.IsVisible(),
		StatsShown:   p.StatsContainer.IsVisible(),
		ErrorShown:   p.ErrorContainer.IsVisible(),
		DebugShown:   p.DebugInfo.IsVisible(),
		EdgeCoverage: []string{},
		Original:     map[string]map[string]string{},
		Biclique:     map[string]string{},
	}
	if p.ErrorContainer != nil {
		state.ErrorHTML = string(p.ErrorContainer.HTML)
	}
	if p.DebugInfo != nil {
		state.DebugInfo = p.DebugInfo.Text
	}
	if p.EdgeCoverage != nil {
		for _, row := range p.EdgeCoverage.Rows {
			state.EdgeCoverage = append(state.EdgeCoverage, row.Last().Value())
		}
	}
	if p.Original != nil {
		for _, row := range p.Original.Rows {
			cells := make(map[string]string, len(timepoint.OriginalFields))
			for _, field := range timepoint.OriginalFields {
				cells[string(field)] = row.Cell(field).Value()
			}
			state.Original[string(row.Category)] = cells
		}
	}
	if p.Biclique != nil {
		for _, row := range p.Biclique.Rows {
			state.Biclique[row.Key] = row.Last().Value()
		}
	}
	return state
}

// handlePaneJSON loads the timepoint and returns the pane state as JSON
func (s *Server) handlePaneJSON(c *gin.Context) {
	id, err := timepoint.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome := s.binder.LoadTimepointData(c.Request.Context(), id)
	if outcome == binder.OutcomeMissingTarget {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no tab pane for timepoint %s", id)})
		return
	}

	p, _ := s.binder.Document().Pane(id)
	c.JSON(http.StatusOK, newPaneState(p.Snapshot(), outcome))
}

// handleExport returns the pane's current tables as a workbook. It does
// not fetch.
func (s *Server) handleExport(c *gin.Context) {
	id, err := timepoint.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, ok := s.binder.Document().Pane(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no tab pane for timepoint %s", id)})
		return
	}

	buf, err := buildPaneWorkbook(p.Snapshot())
	if err != nil {
		s.logger.Error("export of %s failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="timepoint-%s.xlsx"`, id))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
