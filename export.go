package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// trajectoryHeader is the column layout shared by the CSV and XLSX exports
var trajectoryHeader = []string{
	"Scenario", "Growth Rate (%)", "Year", "Schools", "Served Schools",
	"Revenue", "Cumulative Revenue", "Cost", "Cumulative Profit",
}

func trajectoryRecords(d Dashboard) [][]string {
	var records [][]string
	for _, s := range d.Scenarios {
		for _, y := range s.Years {
			records = append(records, []string{
				s.Label,
				strconv.FormatFloat(s.GrowthRate, 'f', -1, 64),
				strconv.Itoa(y.Year),
				strconv.FormatFloat(y.Schools, 'f', 2, 64),
				strconv.FormatFloat(y.ServedSchools, 'f', 2, 64),
				strconv.FormatFloat(y.Revenue, 'f', 2, 64),
				strconv.FormatFloat(y.CumulativeRevenue, 'f', 2, 64),
				strconv.FormatFloat(y.Cost, 'f', 2, 64),
				strconv.FormatFloat(y.Profit, 'f', 2, 64),
			})
		}
	}
	return records
}

// WriteTrajectoryCSV writes one row per scenario-year
func WriteTrajectoryCSV(w io.Writer, d Dashboard) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(trajectoryHeader); err != nil {
		return err
	}
	if err := cw.WriteAll(trajectoryRecords(d)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// Sheet names in the XLSX workbook
const (
	sheetSummary      = "Summary"
	sheetTrajectories = "Trajectories"
)

// BuildWorkbook creates an XLSX workbook with a summary sheet (assumptions, tiles,
// insights) and a trajectory sheet (one row per scenario-year)
func BuildWorkbook(d Dashboard) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}

	a := d.Assumptions
	summary := [][]interface{}{
		{d.Title},
		{},
		{"Assumption", "Value"},
		{"Localization & Compliance Cost", a.LocalizationCost},
		{"Cloud Deployment Cost (per year)", a.CloudCost},
		{"Sales & Support Team Cost (per year)", a.SalesTeamCost},
		{"Price per School (per year)", a.PricePerSchool},
		{"Pilot Schools in Year 1", a.PilotSchools},
		{"School Lifetime (Years)", a.LTVYears},
		{"Renewal Rate (%)", a.RenewalRate},
		{"Customer Acquisition Cost (per school)", a.CACPerSchool},
		{},
		{"Metric", "Value"},
	}
	for _, t := range d.Tiles {
		if t.Valid {
			summary = append(summary, []interface{}{t.Label, t.Raw})
		} else {
			summary = append(summary, []interface{}{t.Label, t.Value})
		}
	}
	summary = append(summary, []interface{}{}, []interface{}{"Strategic Insights"})
	for _, adv := range d.Advisories {
		summary = append(summary, []interface{}{adv.Severity.String(), adv.Message})
	}

	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetSummary, cell, &row); err != nil {
			return nil, err
		}
	}
	f.SetColWidth(sheetSummary, "A", "A", 42)
	f.SetColWidth(sheetSummary, "B", "B", 48)

	if _, err := f.NewSheet(sheetTrajectories); err != nil {
		return nil, err
	}
	for i, header := range trajectoryHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetTrajectories, cell, header)
		f.SetColWidth(sheetTrajectories, cell[:1], cell[:1], 18)
	}
	row := 2
	for _, s := range d.Scenarios {
		for _, y := range s.Years {
			values := []interface{}{s.Label, s.GrowthRate, y.Year, y.Schools, y.ServedSchools,
				y.Revenue, y.CumulativeRevenue, y.Cost, y.Profit}
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(sheetTrajectories, cell, &values); err != nil {
				return nil, err
			}
			row++
		}
	}

	return f, nil
}

// WriteTrajectoryXLSX writes the workbook to w
func WriteTrajectoryXLSX(w io.Writer, d Dashboard) error {
	f, err := BuildWorkbook(d)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// exportFilename returns a unique export filename with the given extension
func exportFilename(ext string) string {
	return fmt.Sprintf("roi-forecast-%s-%s.%s",
		time.Now().Format("2006-01-02-150405"), uuid.NewString()[:8], ext)
}

// SaveExport writes an export into dir using write and returns the absolute path
func SaveExport(dir, ext string, write func(io.Writer) error) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create exports directory: %w", err)
	}

	filePath := filepath.Join(dir, exportFilename(ext))
	f, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	if err := write(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		absPath = filePath
	}
	return absPath, nil
}
