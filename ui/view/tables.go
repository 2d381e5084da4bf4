package view

import "tpstats/domain/timepoint"

// Fixed ids of the component tables inside every pane
const (
	OriginalComponentsTableID = "original-components-table"
	BicliqueComponentsTableID = "biclique-components-table"
)

// Edge coverage row labels, in body order
var edgeRowLabels = []string{"Single coverage", "Multiple coverage", "Uncovered"}

// EdgeCoverageTable is the table in the pane's first card
type EdgeCoverageTable struct {
	Rows []*Row
}

// Row returns body row i, nil when out of range
func (t *EdgeCoverageTable) Row(i int) *Row {
	if t == nil || i < 0 || i >= len(t.Rows) {
		return nil
	}
	return t.Rows[i]
}

// Len returns the number of body rows
func (t *EdgeCoverageTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

func newEdgeCoverageTable(rows int) *EdgeCoverageTable {
	t := &EdgeCoverageTable{Rows: make([]*Row, rows)}
	for i := range t.Rows {
		label := ""
		if i < len(edgeRowLabels) {
			label = edgeRowLabels[i]
		}
		t.Rows[i] = &Row{Label: label, Cells: []*Cell{{Text: "-"}}}
	}
	return t
}

// OriginalRow holds the four cells of one original-table category row
type OriginalRow struct {
	Category    timepoint.OriginalCategory
	Total       *Cell
	SingleNode  *Cell
	Small       *Cell
	Interesting *Cell
}

// Cell returns the cell of the given column
func (r *OriginalRow) Cell(field timepoint.OriginalField) *Cell {
	if r == nil {
		return nil
	}
	switch field {
	case timepoint.FieldTotal:
		return r.Total
	case timepoint.FieldSingleNode:
		return r.SingleNode
	case timepoint.FieldSmall:
		return r.Small
	case timepoint.FieldInteresting:
		return r.Interesting
	}
	return nil
}

// Cells returns the row cells in column order
func (r *OriginalRow) Cells() []*Cell {
	return []*Cell{r.Total, r.SingleNode, r.Small, r.Interesting}
}

// OriginalComponentsTable is #original-components-table
type OriginalComponentsTable struct {
	Rows []*OriginalRow
}

// Row returns the row tagged with category, nil when the markup lacks it
func (t *OriginalComponentsTable) Row(category timepoint.OriginalCategory) *OriginalRow {
	if t == nil {
		return nil
	}
	for _, row := range t.Rows {
		if row.Category == category {
			return row
		}
	}
	return nil
}

func newOriginalTable(categories []timepoint.OriginalCategory) *OriginalComponentsTable {
	t := &OriginalComponentsTable{}
	for _, category := range categories {
		t.Rows = append(t.Rows, &OriginalRow{
			Category:    category,
			Total:       &Cell{Text: "-"},
			SingleNode:  &Cell{Text: "-"},
			Small:       &Cell{Text: "-"},
			Interesting: &Cell{Text: "-"},
		})
	}
	return t
}

// BicliqueComponentsTable is #biclique-components-table
type BicliqueComponentsTable struct {
	Rows []*Row
}

// Row returns the row tagged with category, nil when the markup lacks it
func (t *BicliqueComponentsTable) Row(category timepoint.BicliqueCategory) *Row {
	if t == nil {
		return nil
	}
	for _, row := range t.Rows {
		if row.Key == string(category) {
			return row
		}
	}
	return nil
}

func newBicliqueTable(categories []timepoint.BicliqueCategory) *BicliqueComponentsTable {
	t := &BicliqueComponentsTable{}
	for _, category := range categories {
		t.Rows = append(t.Rows, &Row{
			Key:   string(category),
			Label: category.Label(),
			Cells: []*Cell{{Text: "-"}},
		})
	}
	return t
}
