package promotion

import (
	"time"

	"cbrarecords/internal/models"
)

// Lister enumerates records in store order.
type Lister interface {
	All() []*models.Student
}

// Clock returns the current time.
type Clock func() time.Time

type Engine struct {
	now Clock
}

// NewEngine creates an engine. A nil clock uses time.Now.
func NewEngine(now Clock) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

// Now returns the engine's idea of the current time.
func (e *Engine) Now() time.Time {
	return e.now()
}

type Entry struct {
	RollNo      string
	Name        string
	ClassName   int // class before promotion
	Outcome     Outcome
	Eligibility Eligibility
}

type Report struct {
	Entries     []Entry
	Promoted    int
	NotEligible int
	NotInSeason int
	Terminal    int
}

// PromoteAll promotes every eligible student whose tier is in season.
func (e *Engine) PromoteAll(list Lister) Report {
	month := e.now().Month()

	var report Report
	for _, s := range list.All() {
		entry := Entry{
			RollNo:      s.RollNo,
			Name:        s.Name,
			ClassName:   s.ClassName,
			Eligibility: Check(s),
		}

		switch {
		case s.ClassName >= models.MaxClass:
			entry.Outcome = Terminal
		case !IsPromotionTime(s.ClassName, month):
			entry.Outcome = NotInSeason
		default:
			entry.Outcome = Promote(s)
		}

		switch entry.Outcome {
		case Promoted:
			report.Promoted++
		case Ineligible:
			report.NotEligible++
		case NotInSeason:
			report.NotInSeason++
		case Terminal:
			report.Terminal++
		}
		report.Entries = append(report.Entries, entry)
	}
	return report
}

// AdmissionDateConsistent checks an admission year against the engine's
// current date.
func (e *Engine) AdmissionDateConsistent(className, admissionYear int) bool {
	now := e.now()
	return AdmissionDateConsistent(className, admissionYear, now.Month(), now.Year())
}
