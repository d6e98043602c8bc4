package storage

import (
	"strconv"
	"strings"

	"cbrarecords/internal/apperr"
	"cbrarecords/internal/attendance"
	"cbrarecords/internal/models"
)

// Field positions shared by both line shapes.
const (
	fieldRollNo = iota
	fieldName
	fieldFatherName
	fieldClass
	fieldCategory
	fieldAdmissionYear
	fieldCurrentYear
	fieldDOB
	fieldCNIC
	fieldAddress
	fieldTotalSubjects
	fieldTerms // legacy lines carry subjects here

	minFields     = 12
	currentFields = 14
)

// EncodeLine renders a student in the current line shape.
func EncodeLine(s *models.Student) string {
	board := "0"
	if s.BoardMarksEntered {
		board = "1"
	}

	subjects := make([]string, len(s.Subjects))
	for i, sub := range s.Subjects {
		subjects[i] = sub.Name + ":" + sub.Status.String()
	}

	var days []string
	if s.Attendance != nil {
		for _, e := range s.Attendance.Entries() {
			mark := "A"
			if e.Present {
				mark = "P"
			}
			days = append(days, e.Date.String()+":"+mark)
		}
	}

	fields := []string{
		s.RollNo,
		s.Name,
		s.FatherName,
		strconv.Itoa(s.ClassName),
		string(s.Category),
		strconv.Itoa(s.AdmissionYear),
		strconv.Itoa(s.CurrentYear),
		s.DateOfBirth,
		s.CNIC,
		s.Address,
		strconv.Itoa(len(s.Subjects)),
		strconv.Itoa(s.TermsCompleted),
		board,
		strings.Join(subjects, ","),
		strings.Join(days, ","),
	}
	return strings.Join(fields, "|")
}

// isCurrentShape tells current lines (explicit terms and board fields) from
// legacy ones, whose terms position holds the subject list.
func isCurrentShape(fields []string) bool {
	return len(fields) >= currentFields && !strings.Contains(fields[fieldTerms], ":")
}

func corrupt(format string, args ...any) error {
	return apperr.New(apperr.KindCorruptLine, format, args...)
}

// DecodeLine parses one stored line in either shape.
func DecodeLine(line string) (*models.Student, error) {
	fields := strings.Split(line, "|")
	if len(fields) < minFields {
		return nil, corrupt("expected at least %d fields, got %d", minFields, len(fields))
	}

	rollNo := fields[fieldRollNo]
	if strings.TrimSpace(rollNo) == "" {
		return nil, corrupt("empty roll number")
	}

	className, err := strconv.Atoi(fields[fieldClass])
	if err != nil || className < models.MinClass || className > models.MaxClass {
		return nil, corrupt("invalid class %q", fields[fieldClass])
	}
	category, err := models.ParseCategory(fields[fieldCategory])
	if err != nil {
		return nil, corrupt("invalid category %q", fields[fieldCategory])
	}
	admissionYear, err := strconv.Atoi(fields[fieldAdmissionYear])
	if err != nil {
		return nil, corrupt("invalid admission year %q", fields[fieldAdmissionYear])
	}
	currentYear, err := strconv.Atoi(fields[fieldCurrentYear])
	if err != nil {
		return nil, corrupt("invalid current year %q", fields[fieldCurrentYear])
	}

	s := models.NewStudent(rollNo, fields[fieldName], fields[fieldFatherName], className, category, admissionYear)
	s.CurrentYear = currentYear
	s.DateOfBirth = fields[fieldDOB]
	s.CNIC = fields[fieldCNIC]
	s.Address = fields[fieldAddress]

	var subjectsField, attendanceField string
	if isCurrentShape(fields) {
		terms, err := strconv.Atoi(fields[fieldTerms])
		if err != nil || terms < 0 || terms > models.MaxTerms {
			return nil, corrupt("invalid terms %q", fields[fieldTerms])
		}
		s.TermsCompleted = terms
		s.BoardMarksEntered = fields[fieldTerms+1] == "1"
		subjectsField = fields[fieldTerms+2]
		if len(fields) > fieldTerms+3 {
			attendanceField = fields[fieldTerms+3]
		}
	} else {
		subjectsField = fields[fieldTerms]
		if len(fields) > fieldTerms+1 {
			attendanceField = fields[fieldTerms+1]
		}
	}

	if err := decodeSubjects(s, subjectsField); err != nil {
		return nil, err
	}
	if err := decodeAttendance(s, attendanceField); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeSubjects(s *models.Student, field string) error {
	for _, pair := range strings.Split(field, ",") {
		if pair == "" {
			continue
		}
		name, token, ok := strings.Cut(pair, ":")
		if !ok || name == "" {
			return corrupt("invalid subject entry %q", pair)
		}
		status, err := models.DecodeMarkStatus(token)
		if err != nil {
			return corrupt("invalid marks for %s: %q", name, token)
		}
		s.AddSubject(name, status)
	}
	return nil
}

func decodeAttendance(s *models.Student, field string) error {
	for _, pair := range strings.Split(field, ",") {
		if pair == "" {
			continue
		}
		key, mark, ok := strings.Cut(pair, ":")
		if !ok || (mark != "P" && mark != "A") {
			return corrupt("invalid attendance entry %q", pair)
		}
		d, err := attendance.ParseDate(key)
		if err != nil {
			return corrupt("invalid attendance date %q", key)
		}
		if err := s.Attendance.Mark(d.Year, d.Month, d.Day, mark == "P"); err != nil {
			return corrupt("invalid attendance date %q", key)
		}
	}
	return nil
}
