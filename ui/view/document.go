package view

import (
	"fmt"

	"tpstats/domain/timepoint"
)

// Tab is one entry of the page's static tab list
type Tab struct {
	ID     timepoint.ID
	Label  string
	Active bool
}

// Document is the set of panes on the page. It is assembled once at
// startup and never restructured afterwards.
type Document struct {
	panes  []*Pane
	byID   map[timepoint.ID]*Pane
	active timepoint.ID
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{byID: make(map[timepoint.ID]*Pane)}
}

// NewDocumentFromTabs builds one pane per tab. The first active tab wins;
// with none marked active the first tab is active.
func NewDocumentFromTabs(tabs []Tab, layout Layout) (*Document, error) {
	doc := NewDocument()
	for _, tab := range tabs {
		if err := doc.Add(NewPane(tab.ID, tab.Label, layout), tab.Active); err != nil {
			return nil, err
		}
	}
	if doc.active == "" && len(doc.panes) > 0 {
		doc.active = doc.panes[0].ID
	}
	return doc, nil
}

// Add appends a pane. Only the first pane added as active becomes active.
func (d *Document) Add(p *Pane, active bool) error {
	if p.ID.IsEmpty() {
		return fmt.Errorf("%w: pane id cannot be empty", timepoint.ErrInvalidID)
	}
	if _, exists := d.byID[p.ID]; exists {
		return fmt.Errorf("duplicate pane %q", p.ID)
	}
	d.panes = append(d.panes, p)
	d.byID[p.ID] = p
	if active && d.active == "" {
		d.active = p.ID
	}
	return nil
}

// Pane looks up the pane whose id equals the timepoint id
func (d *Document) Pane(id timepoint.ID) (*Pane, bool) {
	p, ok := d.byID[id]
	return p, ok
}

// Panes returns the panes in tab order
func (d *Document) Panes() []*Pane {
	return d.panes
}

// ActiveID returns the id of the initially active tab, empty for an empty page
func (d *Document) ActiveID() timepoint.ID {
	return d.active
}

// Active returns the initially active pane
func (d *Document) Active() (*Pane, bool) {
	if d.active == "" {
		return nil, false
	}
	return d.Pane(d.active)
}
