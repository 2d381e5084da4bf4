package view

import (
	"sync"

	"tpstats/domain/timepoint"
)

// Layout describes which parts of the pane markup exist
type Layout struct {
	LoadingIndicator bool
	StatsContainer   bool
	ErrorContainer   bool
	DebugInfo        bool
	// EdgeRows is the number of body rows in the first card's table; 0 omits the table
	EdgeRows      int
	OriginalTable bool
	OriginalRows  []timepoint.OriginalCategory
	BicliqueTable bool
	BicliqueRows  []timepoint.BicliqueCategory
}

// FullLayout is the layout rendered by the page template
func FullLayout() Layout {
	return Layout{
		LoadingIndicator: true,
		StatsContainer:   true,
		ErrorContainer:   true,
		DebugInfo:        true,
		EdgeRows:         len(edgeRowLabels),
		OriginalTable:    true,
		OriginalRows:     timepoint.OriginalCategories,
		BicliqueTable:    true,
		BicliqueRows:     timepoint.BicliqueCategories,
	}
}

// Pane is the content of one timepoint tab. Element references are built
// once by NewPane and reused for every load.
type Pane struct {
	mu sync.Mutex

	ID    timepoint.ID
	Label string

	LoadingIndicator *Element
	StatsContainer   *Element
	ErrorContainer   *Element
	DebugInfo        *Element

	EdgeCoverage *EdgeCoverageTable
	Original     *OriginalComponentsTable
	Biclique     *BicliqueComponentsTable

	// LastLoadID identifies the most recent load cycle applied to the pane
	LastLoadID string
}

// NewPane builds the view-model of a pane with the given layout
func NewPane(id timepoint.ID, label string, layout Layout) *Pane {
	if label == "" {
		label = id.String()
	}
	p := &Pane{ID: id, Label: label}
	if layout.LoadingIndicator {
		p.LoadingIndicator = &Element{}
	}
	if layout.StatsContainer {
		p.StatsContainer = &Element{}
	}
	if layout.ErrorContainer {
		p.ErrorContainer = &Element{}
	}
	if layout.DebugInfo {
		p.DebugInfo = &Element{}
	}
	if layout.EdgeRows > 0 {
		p.EdgeCoverage = newEdgeCoverageTable(layout.EdgeRows)
	}
	if layout.OriginalTable {
		p.Original = newOriginalTable(layout.OriginalRows)
	}
	if layout.BicliqueTable {
		p.Biclique = newBicliqueTable(layout.BicliqueRows)
	}
	return p
}

// Update applies fn to the pane under its lock. Overlapping loads of the
// same pane are serialized; the last one to finish wins.
func (p *Pane) Update(fn func(p *Pane)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(p)
}

// Snapshot returns a deep copy of the pane, safe to render while loads continue
func (p *Pane) Snapshot() *Pane {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := &Pane{
		ID:               p.ID,
		Label:            p.Label,
		LoadingIndicator: p.LoadingIndicator.clone(),
		StatsContainer:   p.StatsContainer.clone(),
		ErrorContainer:   p.ErrorContainer.clone(),
		DebugInfo:        p.DebugInfo.clone(),
		LastLoadID:       p.LastLoadID,
	}
	if p.EdgeCoverage != nil {
		s.EdgeCoverage = &EdgeCoverageTable{Rows: make([]*Row, len(p.EdgeCoverage.Rows))}
		for i, row := range p.EdgeCoverage.Rows {
			s.EdgeCoverage.Rows[i] = row.clone()
		}
	}
	if p.Original != nil {
		s.Original = &OriginalComponentsTable{Rows: make([]*OriginalRow, len(p.Original.Rows))}
		for i, row := range p.Original.Rows {
			s.Original.Rows[i] = &OriginalRow{
				Category:    row.Category,
				Total:       row.Total.clone(),
				SingleNode:  row.SingleNode.clone(),
				Small:       row.Small.clone(),
				Interesting: row.Interesting.clone(),
			}
		}
	}
	if p.Biclique != nil {
		s.Biclique = &BicliqueComponentsTable{Rows: make([]*Row, len(p.Biclique.Rows))}
		for i, row := range p.Biclique.Rows {
			s.Biclique.Rows[i] = row.clone()
		}
	}
	return s
}
