// Package promotion decides when students move up a class.
package promotion

import (
	"time"

	"cbrarecords/internal/models"
)

// Outcome is what happened to one student during promotion.
type Outcome int

const (
	Promoted Outcome = iota
	Ineligible
	Terminal
	NotInSeason
)

func (o Outcome) String() string {
	switch o {
	case Promoted:
		return "promoted"
	case Ineligible:
		return "not eligible"
	case Terminal:
		return "final class"
	case NotInSeason:
		return "not promotion time yet"
	default:
		return "unknown"
	}
}

// SessionStartMonth is the first month promotion is allowed for a class tier.
// Classes 1-7 sit papers in February, 8-10 in February/March, 11-12 in
// May/June.
func SessionStartMonth(className int) time.Month {
	switch {
	case className >= 1 && className <= 7:
		return time.March
	case className >= 8 && className <= 10:
		return time.April
	case className >= 11 && className <= 12:
		return time.June
	default:
		return 0
	}
}

// IsPromotionTime reports whether the tier's promotion window has opened.
func IsPromotionTime(className int, month time.Month) bool {
	start := SessionStartMonth(className)
	return start != 0 && month >= start
}

// Eligibility explains a CanPromote decision.
type Eligibility struct {
	TermsCompleted    int
	TermsOK           bool
	BoardRequired     bool
	BoardMarksEntered bool
	MarksCalculated   bool
}

func (e Eligibility) Eligible() bool {
	return e.TermsOK && (!e.BoardRequired || e.BoardMarksEntered) && e.MarksCalculated
}

// Check evaluates every promotion criterion for a student.
func Check(s *models.Student) Eligibility {
	return Eligibility{
		TermsCompleted:    s.TermsCompleted,
		TermsOK:           s.TermsCompleted == models.MaxTerms,
		BoardRequired:     s.IsBoardClass(),
		BoardMarksEntered: s.BoardMarksEntered,
		MarksCalculated:   s.MaxMarks > 0 && s.Percentage > 0,
	}
}

// CanPromote reports whether all criteria hold.
func CanPromote(s *models.Student) bool {
	return Check(s).Eligible()
}

// Promote moves an eligible student up one class. Class 12 is final. The
// new class's subjects are not filled in.
func Promote(s *models.Student) Outcome {
	if s.ClassName >= models.MaxClass {
		return Terminal
	}
	if !CanPromote(s) {
		return Ineligible
	}

	s.ClassName++
	s.CurrentYear++
	s.ClearSubjects()
	s.TermsCompleted = 0
	s.BoardMarksEntered = false
	return Promoted
}

// AdmissionDateConsistent checks the admission year against the academic
// year the tier is currently in. Classes outside 1-12 always pass.
func AdmissionDateConsistent(className, admissionYear int, currentMonth time.Month, currentYear int) bool {
	start := SessionStartMonth(className)
	if start == 0 {
		return true
	}
	if currentMonth < start {
		return admissionYear == currentYear-1
	}
	return admissionYear == currentYear
}
