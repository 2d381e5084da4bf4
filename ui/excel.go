package ui

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"tpstats/domain/timepoint"
	"tpstats/ui/view"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Workbook sheet names
const (
	sheetEdgeCoverage = "Edge Coverage"
	sheetOriginal     = "Original Components"
	sheetBiclique     = "Biclique Components"
)

// buildPaneWorkbook writes the pane's tables, one sheet each, exactly as
// the cells currently read.
func buildPaneWorkbook(p *view.Pane) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetEdgeCoverage); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	edgeRows := [][]interface{}{{"Coverage", "Edges"}}
	if p.EdgeCoverage != nil {
		for _, row := range p.EdgeCoverage.Rows {
			edgeRows = append(edgeRows, []interface{}{row.Label, row.Last().Value()})
		}
	}
	if err := writeRows(f, sheetEdgeCoverage, edgeRows); err != nil {
		return nil, err
	}

	originalRows := [][]interface{}{{"Category", "Total", "Single node", "Small", "Interesting"}}
	if p.Original != nil {
		for _, row := range p.Original.Rows {
			values := []interface{}{row.Category.Label()}
			for _, field := range timepoint.OriginalFields {
				values = append(values, row.Cell(field).Value())
			}
			originalRows = append(originalRows, values)
		}
	}
	if _, err := f.NewSheet(sheetOriginal); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := writeRows(f, sheetOriginal, originalRows); err != nil {
		return nil, err
	}

	bicliqueRows := [][]interface{}{{"Category", "Connected"}}
	if p.Biclique != nil {
		for _, row := range p.Biclique.Rows {
			bicliqueRows = append(bicliqueRows, []interface{}{row.Label, row.Last().Value()})
		}
	}
	if _, err := f.NewSheet(sheetBiclique); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := writeRows(f, sheetBiclique, bicliqueRows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
