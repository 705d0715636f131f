package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/xuri/excelize/v2"
)

const weeklySheet = "Weekly Attendance"

var weeklyHeaders = []string{"Day", "Present", "Absent"}

// weeklyWorkbook lays out one row per weekday followed by the totals.
func weeklyWorkbook(weekly *dashboard.WeeklyAttendanceResponse, generatedAt time.Time) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), weeklySheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	rows := [][]interface{}{}
	for _, b := range weekly.Buckets {
		rows = append(rows, []interface{}{b.Day, b.Present, b.Absent})
	}

	if err := setRow(f, 1, toCells(weeklyHeaders)); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := setRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	totalRow := len(rows) + 2
	footer := [][]interface{}{
		{"Total", weekly.TotalPresent, weekly.TotalAbsent},
		{"Present rate (%)", weekly.PresentRate.InexactFloat64()},
		{"Generated at", generatedAt.Format(time.RFC3339)},
	}
	for i, row := range footer {
		if err := setRow(f, totalRow+i, row); err != nil {
			return nil, err
		}
	}

	if err := f.SetCellStyle(weeklySheet, "A1", "C1", bold); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}
	totalCell, _ := excelize.CoordinatesToCellName(1, totalRow)
	totalEnd, _ := excelize.CoordinatesToCellName(3, totalRow)
	if err := f.SetCellStyle(weeklySheet, totalCell, totalEnd, bold); err != nil {
		return nil, fmt.Errorf("failed to style totals: %w", err)
	}
	if err := f.SetColWidth(weeklySheet, "A", "A", 20); err != nil {
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	for i, val := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(weeklySheet, cell, val); err != nil {
			return fmt.Errorf("failed to set cell value: %w", err)
		}
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
