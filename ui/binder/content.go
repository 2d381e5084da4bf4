package binder

import (
	"tpstats/domain/timepoint"
	"tpstats/ui/view"
)

// updateContent writes a success payload into the pane
func (b *TimepointStatsBinder) updateContent(p *view.Pane, resp *timepoint.StatsResponse) {
	if debug, ok := resp.DataDebug(); ok {
		if p.DebugInfo != nil {
			p.DebugInfo.SetText(indentJSON(debug))
			if b.config.DebugEnabled {
				p.DebugInfo.Show()
			}
		}
		if edge, ok := resp.RawEdgeStats(); ok {
			updateEdgeCoverage(p.EdgeCoverage, edge)
		}
	}

	if comps, ok := resp.Components(); ok {
		updateOriginalComponents(p.Original, comps)
		updateBicliqueComponents(p.Biclique, comps)
	}
}

// updateEdgeCoverage fills the last cell of the single, multiple and
// uncovered rows. Tables with fewer than three rows are left untouched.
func updateEdgeCoverage(table *view.EdgeCoverageTable, edge timepoint.EdgeCoverage) {
	if table.Len() < 3 {
		return
	}
	table.Row(0).Last().Set(edge.SingleText())
	table.Row(1).Last().Set(edge.MultipleText())
	table.Row(2).Last().Set(edge.UncoveredText())
}

func updateOriginalComponents(table *view.OriginalComponentsTable, comps timepoint.Components) {
	if table == nil {
		return
	}
	for _, category := range timepoint.OriginalCategories {
		row := table.Row(category)
		if row == nil {
			continue
		}
		for _, field := range timepoint.OriginalFields {
			row.Cell(field).Set(comps.OriginalValue(category, field))
		}
	}
}

func updateBicliqueComponents(table *view.BicliqueComponentsTable, comps timepoint.Components) {
	if table == nil {
		return
	}
	for _, category := range timepoint.BicliqueCategories {
		row := table.Row(category)
		if row == nil {
			continue
		}
		row.Last().Set(comps.BicliqueValue(category))
	}
}
