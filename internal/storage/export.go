package storage

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"cbrarecords/internal/apperr"
	"cbrarecords/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	resultsSheet = "Results"
	marksSheet   = "Marks"
)

var resultsHeader = []any{
	"Roll No", "Name", "Father Name", "Class", "Category",
	"Total", "Max", "Percentage", "Grade",
	"Terms", "Board Marks", "Present", "Absent",
}

var marksHeader = []any{"Roll No", "Subject", "Marks", "Max"}

// ExportResultsXLSX writes one summary row per student and one marks row per
// subject to an Excel workbook.
func ExportResultsXLSX(students []*models.Student, outputPath string) error {
	if len(students) == 0 {
		return apperr.ErrEmptyStore
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(resultsSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if _, err := f.NewSheet(marksSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := f.SetSheetRow(resultsSheet, "A1", &resultsHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetSheetRow(marksSheet, "A1", &marksHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	marksRow := 2
	for i, s := range students {
		present, absent := 0, 0
		if s.Attendance != nil {
			present, absent = s.Attendance.TotalPresent(), s.Attendance.TotalAbsent()
		}
		board := "No"
		if s.BoardMarksEntered {
			board = "Yes"
		}

		row := []any{
			s.RollNo, s.Name, s.FatherName, s.ClassName, string(s.Category),
			s.TotalMarks, s.MaxMarks, math.Round(s.Percentage*100) / 100, s.Grade.String(),
			s.TermsCompleted, board, present, absent,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(resultsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", s.RollNo, err)
		}

		for _, sub := range s.Subjects {
			var marks any = sub.Status.Label()
			if sub.Status.IsNumeric() {
				marks = sub.Status.Value
			}
			subRow := []any{s.RollNo, sub.Name, marks, s.MaxMarksFor(sub.Name)}
			cell, _ := excelize.CoordinatesToCellName(1, marksRow)
			if err := f.SetSheetRow(marksSheet, cell, &subRow); err != nil {
				return fmt.Errorf("failed to write marks for %s: %w", s.RollNo, err)
			}
			marksRow++
		}
	}

	// Delete default Sheet1
	f.DeleteSheet("Sheet1")

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save XLSX file: %w", err)
	}
	return nil
}
