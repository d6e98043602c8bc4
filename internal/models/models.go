package models

import (
	"math"
	"strconv"

	"cbrarecords/internal/apperr"
	"cbrarecords/internal/attendance"
)

const (
	MinClass = 1
	MaxClass = 12
	MaxTerms = 3
)

type StatusKind int

const (
	NotEntered StatusKind = iota
	Numeric
	Absent
	Leave
)

// MarkStatus is a subject's recorded outcome.
type MarkStatus struct {
	Kind  StatusKind
	Value float64 // only meaningful when Kind == Numeric
}

func Marks(v float64) MarkStatus { return MarkStatus{Kind: Numeric, Value: v} }

var (
	StatusAbsent     = MarkStatus{Kind: Absent}
	StatusLeave      = MarkStatus{Kind: Leave}
	StatusNotEntered = MarkStatus{Kind: NotEntered}
)

func (m MarkStatus) IsNumeric() bool { return m.Kind == Numeric }

// String returns the flat-file token: the number, or A, L, -.
func (m MarkStatus) String() string {
	switch m.Kind {
	case Numeric:
		return strconv.FormatFloat(m.Value, 'f', -1, 64)
	case Absent:
		return "A"
	case Leave:
		return "L"
	default:
		return "-"
	}
}

// Label is the display form used on record cards.
func (m MarkStatus) Label() string {
	switch m.Kind {
	case Numeric:
		return m.String()
	case Absent:
		return "Absent"
	case Leave:
		return "Leave"
	default:
		return "Not Entered"
	}
}

// DecodeMarkStatus parses a stored token without range checks.
func DecodeMarkStatus(s string) (MarkStatus, error) {
	switch s {
	case "A":
		return StatusAbsent, nil
	case "L":
		return StatusLeave, nil
	case "-":
		return StatusNotEntered, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return MarkStatus{}, apperr.Wrap(apperr.KindInvalidFormat, err, "invalid marks %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return MarkStatus{}, apperr.New(apperr.KindInvalidFormat, "invalid marks %q", s)
	}
	return Marks(v), nil
}

type Subject struct {
	Name   string
	Status MarkStatus
}

type Grade byte

func (g Grade) String() string { return string(g) }

type ClassCategory string

const (
	CategoryNone            ClassCategory = ""
	CategoryComputerScience ClassCategory = "Computer Science"
	CategoryBiology         ClassCategory = "Biology"
	CategoryPreEngineering  ClassCategory = "Pre-Engineering"
	CategoryPreMedical      ClassCategory = "Pre-Medical"
)

type Student struct {
	RollNo        string
	Name          string
	FatherName    string
	ClassName     int
	Category      ClassCategory
	AdmissionYear int
	CurrentYear   int
	DateOfBirth   string // DD-MM-YYYY or empty
	CNIC          string // XXXXX-XXXXXXX-X or empty
	Address       string

	Subjects   []Subject
	TotalMarks float64
	MaxMarks   float64
	Percentage float64
	Grade      Grade

	TermsCompleted    int
	BoardMarksEntered bool

	Attendance *attendance.Calendar
}

// NewStudent creates a record with an empty subject list and attendance
// ledger. CurrentYear starts at the admission year.
func NewStudent(rollNo, name, fatherName string, className int, category ClassCategory, admissionYear int) *Student {
	return &Student{
		RollNo:        rollNo,
		Name:          name,
		FatherName:    fatherName,
		ClassName:     className,
		Category:      category,
		AdmissionYear: admissionYear,
		CurrentYear:   admissionYear,
		Grade:         'F',
		Attendance:    attendance.New(),
	}
}

// IsBoardClass reports whether the class sits board exams (8-12).
func IsBoardClass(className int) bool {
	return className >= 8 && className <= 12
}

func (s *Student) IsBoardClass() bool {
	return IsBoardClass(s.ClassName)
}

func (s *Student) SubjectNames() []string {
	names := make([]string, len(s.Subjects))
	for i, sub := range s.Subjects {
		names[i] = sub.Name
	}
	return names
}

// SubjectIndex returns the position of the named subject, or -1.
func (s *Student) SubjectIndex(name string) int {
	for i, sub := range s.Subjects {
		if sub.Name == name {
			return i
		}
	}
	return -1
}
