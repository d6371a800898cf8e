package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVYearlyFormatter writes the yearly table as delimited text: one
// header row with stable field names, one row per year, values as
// plain decimal numbers.
type CSVYearlyFormatter struct{}

func (CSVYearlyFormatter) Name() string { return "csv" }

func (CSVYearlyFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Year", "TotalContributions", "InvestmentGain", "TotalValue", "ROIPercent"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range report.Projection.Yearly {
		roi := ""
		if row.ROIPercent != nil {
			roi = row.ROIPercent.StringFixed(2)
		}
		record := []string{
			strconv.Itoa(row.Year),
			row.TotalContributions.StringFixed(2),
			row.InvestmentGain.StringFixed(2),
			row.TotalValue.StringFixed(2),
			roi,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVMonthlyFormatter writes the month-by-month table with its
// calendar labels.
type CSVMonthlyFormatter struct{}

func (CSVMonthlyFormatter) Name() string { return "csv-monthly" }

func (CSVMonthlyFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"Month", "Year", "CalendarYear", "CalendarMonth", "MonthName",
		"ContributionApplied", "TotalContributions", "InvestmentGain", "TotalValue",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range report.Projection.Monthly {
		record := []string{
			strconv.Itoa(row.Month),
			strconv.Itoa(row.Year),
			strconv.Itoa(row.CalendarYear),
			strconv.Itoa(row.CalendarMonth),
			row.MonthName,
			row.ContributionApplied.StringFixed(2),
			row.TotalContributions.StringFixed(2),
			row.InvestmentGain.StringFixed(2),
			row.TotalValue.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
