package plans

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	SheetPlan  = "Plan"
	SheetStats = "Stats"
)

var planSheetHeader = []any{"Date", "Weekday", "Title", "Rest", "Completed", "Exercises"}

// ExportPlan renders a plan and its statistics into a workbook with a "Plan" sheet,
// one row per day, and a "Stats" sheet. The caller closes the returned file.
func ExportPlan(plan *Plan, stats Stats) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetPlan); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetStats); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create stats sheet: %w", err)
	}

	if err := writePlanSheet(f, plan); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("plan sheet: %w", err)
	}
	if err := writeStatsSheet(f, plan, stats); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stats sheet: %w", err)
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writePlanSheet(f *excelize.File, plan *Plan) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2E75B6"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(SheetPlan, "A1", &planSheetHeader); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetPlan, "A1", "F1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetPlan, "A", "E", 12); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetPlan, "F", "F", 60); err != nil {
		return err
	}

	for i, day := range plan.Days {
		names := make([]string, 0, len(day.Exercises))
		for _, e := range day.Exercises {
			names = append(names, e.Name)
		}
		title := day.Title
		if title == "" && day.IsRest {
			title = RestTitle
		}

		row := []any{
			day.Date.String(),
			day.Date.Weekday().String(),
			title,
			yesNo(day.IsRest),
			yesNo(day.Completed),
			strings.Join(names, ", "),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetPlan, cell, &row); err != nil {
			return err
		}
	}

	return nil
}

func writeStatsSheet(f *excelize.File, plan *Plan, stats Stats) error {
	rows := [][]any{
		{"Week start", plan.WeekStart.String()},
		{"Weekly completion", stats.WeeklyCompletion},
		{"Completed training days", stats.CompletedTrainingDays},
		{"Total training days", stats.TotalTrainingDays},
		{"Completed exercises", stats.CompletedExercises},
		{"Total exercises", stats.TotalExercises},
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetStats, cell, &rows[i]); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetStats, "A", "A", 26)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
