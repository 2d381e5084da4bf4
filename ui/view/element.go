// Package view holds the typed view-model of the timepoint page: one Pane per
// tab, with direct references to every element the stats binder patches.
// A nil element means the markup does not provide it; every mutator is
// nil-safe so such updates are silently dropped.
package view

import "html/template"

// Element is a pane node whose visibility and content the binder controls
type Element struct {
	Visible bool
	Text    string
	HTML    template.HTML
}

// Show makes the element visible
func (e *Element) Show() {
	if e != nil {
		e.Visible = true
	}
}

// Hide hides the element
func (e *Element) Hide() {
	if e != nil {
		e.Visible = false
	}
}

// SetText replaces the text content
func (e *Element) SetText(text string) {
	if e != nil {
		e.Text = text
	}
}

// SetHTML replaces the inner HTML in one step
func (e *Element) SetHTML(html template.HTML) {
	if e != nil {
		e.HTML = html
	}
}

// IsVisible reports visibility; a missing element is never visible
func (e *Element) IsVisible() bool {
	return e != nil && e.Visible
}

func (e *Element) clone() *Element {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}

// Cell is a table cell
type Cell struct {
	Text string
}

// Set replaces the cell text
func (c *Cell) Set(text string) {
	if c != nil {
		c.Text = text
	}
}

// Value returns the cell text, "" for a missing cell
func (c *Cell) Value() string {
	if c == nil {
		return ""
	}
	return c.Text
}

func (c *Cell) clone() *Cell {
	if c == nil {
		return nil
	}
	cc := *c
	return &cc
}

// Row is a table body row. Key is the category the row is tagged with.
type Row struct {
	Key   string
	Label string
	Cells []*Cell
}

// Last returns the row's last cell, nil when the row has none
func (r *Row) Last() *Cell {
	if r == nil || len(r.Cells) == 0 {
		return nil
	}
	return r.Cells[len(r.Cells)-1]
}

func (r *Row) clone() *Row {
	if r == nil {
		return nil
	}
	c := &Row{Key: r.Key, Label: r.Label, Cells: make([]*Cell, len(r.Cells))}
	for i, cell := range r.Cells {
		c.Cells[i] = cell.clone()
	}
	return c
}
