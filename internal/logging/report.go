package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"tspga/internal/distance"
	"tspga/internal/ga"
)

const (
	generationsSheet = "Generations"
	routeSheet       = "Route"
)

// WriteReport saves an XLSX workbook with one row per evaluated generation
// and a leg-by-leg breakdown of the best route.
func WriteReport(path string, res *ga.Result, dist *distance.Matrix) error {
	if res == nil || dist == nil {
		return fmt.Errorf("write report %s: missing result or distances", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", generationsSheet); err != nil {
		return fmt.Errorf("error renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(routeSheet); err != nil {
		return fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(0)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("error creating header style: %w", err)
	}

	genRows := make([][]interface{}, len(res.History))
	for i, s := range res.History {
		genRows[i] = []interface{}{s.Generation, s.Best, s.Mean, s.Worst, s.Std}
	}
	if err := writeSheet(f, generationsSheet, headerStyle,
		[]string{"Generation", "Best", "Mean", "Worst", "Std"}, genRows); err != nil {
		return err
	}

	legs := dist.Legs(res.Best)
	routeRows := make([][]interface{}, len(legs))
	for i, leg := range legs {
		routeRows[i] = []interface{}{i + 1, dist.Name(leg.From), dist.Name(leg.To), leg.Cost, leg.Total}
	}
	if err := writeSheet(f, routeSheet, headerStyle,
		[]string{"Leg", "From", "To", "Distance", "Cumulative"}, routeRows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving report %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, headerStyle int, headers []string, rows [][]interface{}) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return err
	}

	for r, values := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	last, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", last, 15)
}
