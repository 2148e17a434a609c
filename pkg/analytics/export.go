package analytics

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const costSheet = "Cost per tree"

var costHeader = []string{"Planting ID", "Site", "Species", "Seedlings planted", "Surviving trees", "Total cost", "Cost per surviving tree"}

// CostReportXLSX renders the cost-per-tree ranking as a single-sheet workbook.
func CostReportXLSX(rows []CostPerTree) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", costSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(costSheet, "A1", &costHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{r.ID, r.SiteName, r.Species, r.SeedlingsPlanted, r.SurvivingTrees, r.TotalCost, r.CostPerSurvivingTree}
		if err := f.SetSheetRow(costSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
