package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cbrarecords/internal/models"

	"github.com/xuri/excelize/v2"
)

// RosterRow is one admission read from a roster file.
type RosterRow struct {
	Line          int
	RollNo        string
	Name          string
	FatherName    string
	ClassName     int
	Category      models.ClassCategory
	AdmissionYear int
	Subjects      []string
}

// RosterResult holds the parsed rows and the rows that could not be used.
type RosterResult struct {
	Rows    []RosterRow
	Skipped []LineError
}

// ReadRoster parses a CSV or XLSX roster.
// Columns: roll,name,father,class,category,admission_year[,subjects]
// Subjects are separated by semicolons. A header row is detected and skipped.
func ReadRoster(filePath string) (RosterResult, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	var rows [][]string
	var err error

	switch ext {
	case ".csv":
		rows, err = readCSV(filePath)
	case ".xlsx":
		rows, err = readXLSX(filePath)
	default:
		return RosterResult{}, fmt.Errorf("unsupported file type: %s (supported: .csv, .xlsx)", ext)
	}
	if err != nil {
		return RosterResult{}, err
	}
	if len(rows) == 0 {
		return RosterResult{}, fmt.Errorf("file is empty")
	}

	startRow := 0
	if isRosterHeader(rows[0]) {
		startRow = 1
	}

	var result RosterResult
	for i := startRow; i < len(rows); i++ {
		record := rows[i]

		// Skip empty rows
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}

		row, err := parseRosterRow(record)
		if err != nil {
			result.Skipped = append(result.Skipped, LineError{Line: i + 1, Err: err})
			continue
		}
		row.Line = i + 1
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}

func isRosterHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(row[0]))
	return first == "roll" || first == "roll no" || first == "rollno" || first == "roll_no"
}

func parseRosterRow(record []string) (RosterRow, error) {
	if len(record) < 6 {
		return RosterRow{}, fmt.Errorf("expected at least 6 columns, got %d", len(record))
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	className, err := models.ParseClass(record[3])
	if err != nil {
		return RosterRow{}, err
	}
	category, err := models.ParseCategory(record[4])
	if err != nil {
		return RosterRow{}, err
	}
	admissionYear, err := models.ParseYear(record[5])
	if err != nil {
		return RosterRow{}, err
	}

	row := RosterRow{
		RollNo:        record[0],
		Name:          record[1],
		FatherName:    record[2],
		ClassName:     className,
		Category:      category,
		AdmissionYear: admissionYear,
	}
	if len(record) > 6 {
		for _, name := range strings.Split(record[6], ";") {
			if name = strings.TrimSpace(name); name != "" {
				row.Subjects = append(row.Subjects, name)
			}
		}
	}
	return row, nil
}

// readCSV reads a CSV file and returns rows as [][]string
func readCSV(filePath string) ([][]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	return records, nil
}

// readXLSX reads rows from the first sheet of an Excel file
func readXLSX(filePath string) ([][]string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read XLSX rows: %w", err)
	}

	return rows, nil
}
