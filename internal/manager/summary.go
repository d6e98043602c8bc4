package manager

import (
	"fmt"
	"strconv"

	"cbrarecords/internal/models"
)

type Summary struct {
	Present int
	Absent  int
	Marked  int
	Totals  string
}

// Summarize collects the attendance counts and formats the marks line.
func Summarize(s *models.Student) Summary {
	var sum Summary
	if s.Attendance != nil {
		sum.Present = s.Attendance.TotalPresent()
		sum.Absent = s.Attendance.TotalAbsent()
		sum.Marked = s.Attendance.TotalMarkedDays()
	}
	sum.Totals = fmt.Sprintf("Total: %s/%s (%.2f%%) Grade: %s",
		strconv.FormatFloat(s.TotalMarks, 'f', -1, 64),
		strconv.FormatFloat(s.MaxMarks, 'f', -1, 64),
		s.Percentage, s.Grade)
	return sum
}

func (m *Manager) Summary(rollNo string) (Summary, error) {
	s, err := m.store.Find(rollNo)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(s), nil
}
