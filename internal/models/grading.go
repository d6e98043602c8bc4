package models

// Subjects marked out of 75 in classes 8-12.
var reducedMaxSubjects = map[string]bool{
	"Physics":          true,
	"Chemistry":        true,
	"Computer Science": true,
	"Biology":          true,
}

// MaxMarksFor returns the maximum marks for a subject in the given class.
func MaxMarksFor(className int, subject string) float64 {
	if IsBoardClass(className) && reducedMaxSubjects[subject] {
		return 75
	}
	return 100
}

func (s *Student) MaxMarksFor(subject string) float64 {
	return MaxMarksFor(s.ClassName, subject)
}

// GradeOf maps a percentage to a letter grade.
func GradeOf(percentage float64) Grade {
	switch {
	case percentage >= 90:
		return 'A'
	case percentage >= 80:
		return 'B'
	case percentage >= 70:
		return 'C'
	case percentage >= 60:
		return 'D'
	case percentage >= 50:
		return 'E'
	default:
		return 'F'
	}
}

// AddSubject appends a subject and folds it into the running totals.
// Used while building a record; edits go through RecomputeMarks.
func (s *Student) AddSubject(name string, status MarkStatus) {
	s.Subjects = append(s.Subjects, Subject{Name: name, Status: status})

	if status.IsNumeric() {
		s.TotalMarks += status.Value
		s.MaxMarks += s.MaxMarksFor(name)
	}

	if s.MaxMarks > 0 {
		s.Percentage = s.TotalMarks / s.MaxMarks * 100
		s.Grade = GradeOf(s.Percentage)
	}
}

// RecomputeMarks rebuilds totals, percentage and grade from the subject list.
func (s *Student) RecomputeMarks() {
	s.TotalMarks = 0
	s.MaxMarks = 0

	for _, sub := range s.Subjects {
		if sub.Status.IsNumeric() {
			s.TotalMarks += sub.Status.Value
			s.MaxMarks += s.MaxMarksFor(sub.Name)
		}
	}

	if s.MaxMarks > 0 {
		s.Percentage = s.TotalMarks / s.MaxMarks * 100
		s.Grade = GradeOf(s.Percentage)
	} else {
		s.Percentage = 0
		s.Grade = 'F'
	}
}

// ClearSubjects empties the subject list and resets the derived totals.
func (s *Student) ClearSubjects() {
	s.Subjects = nil
	s.TotalMarks = 0
	s.MaxMarks = 0
	s.Percentage = 0
	s.Grade = 'F'
}
