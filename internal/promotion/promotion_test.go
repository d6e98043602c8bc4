package promotion

import (
	"testing"
	"time"

	"cbrarecords/internal/models"
	"cbrarecords/internal/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(month time.Month) Clock {
	return func() time.Time {
		return time.Date(2026, month, 15, 10, 0, 0, 0, time.UTC)
	}
}

// gradedStudent builds a student whose percentage is exactly pct.
func gradedStudent(roll string, class int, category models.ClassCategory, pct float64) *models.Student {
	s := models.NewStudent(roll, "Student "+roll, "Father", class, category, 2025)
	s.AddSubject("English", models.Marks(pct))
	return s
}

func TestBoardClassNeedsBoardMarks(t *testing.T) {
	s := gradedStudent("10", 10, models.CategoryComputerScience, 72)
	s.TermsCompleted = 3
	s.BoardMarksEntered = false

	assert.False(t, CanPromote(s))
	assert.Equal(t, Ineligible, Promote(s))
	assert.Equal(t, 10, s.ClassName, "ineligible students are untouched")

	s.BoardMarksEntered = true
	require.True(t, CanPromote(s))

	assert.Equal(t, Promoted, Promote(s))
	assert.Equal(t, 11, s.ClassName)
	assert.Equal(t, 2026, s.CurrentYear)
	assert.Empty(t, s.Subjects)
	assert.Equal(t, 0, s.TermsCompleted)
	assert.False(t, s.BoardMarksEntered)
	assert.Equal(t, 0.0, s.MaxMarks)
	assert.Equal(t, models.Grade('F'), s.Grade)
}

func TestLowerClassSkipsBoardCheck(t *testing.T) {
	s := gradedStudent("3", 3, models.CategoryNone, 65)
	s.TermsCompleted = 3

	assert.True(t, CanPromote(s))
}

func TestEligibilityCriteria(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *models.Student)
		want  bool
	}{
		{"all criteria met", func(s *models.Student) {}, true},
		{"two terms", func(s *models.Student) { s.TermsCompleted = 2 }, false},
		{"no marks", func(s *models.Student) { s.ClearSubjects() }, false},
		{"zero percentage", func(s *models.Student) {
			s.Subjects[0].Status = models.Marks(0)
			s.RecomputeMarks()
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := gradedStudent("1", 6, models.CategoryNone, 80)
			s.TermsCompleted = 3
			tt.setup(s)
			assert.Equal(t, tt.want, CanPromote(s))
		})
	}
}

func TestClassTwelveIsTerminal(t *testing.T) {
	s := gradedStudent("12", 12, models.CategoryPreMedical, 95)
	s.TermsCompleted = 3
	s.BoardMarksEntered = true
	require.True(t, CanPromote(s))

	assert.Equal(t, Terminal, Promote(s))
	assert.Equal(t, 12, s.ClassName)
	assert.Len(t, s.Subjects, 1)
	assert.Equal(t, 3, s.TermsCompleted)
}

func TestSeasonalGating(t *testing.T) {
	tests := []struct {
		class int
		month time.Month
		want  bool
	}{
		{1, time.February, false},
		{7, time.March, true},
		{8, time.March, false},
		{10, time.April, true},
		{11, time.May, false},
		{12, time.June, true},
		{11, time.December, true},
		{0, time.December, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPromotionTime(tt.class, tt.month), "class %d in %s", tt.class, tt.month)
	}
}

func TestPromoteAll(t *testing.T) {
	store := records.New()

	ready5 := gradedStudent("a", 5, models.CategoryNone, 70)
	ready5.TermsCompleted = 3

	ready9 := gradedStudent("b", 9, models.CategoryBiology, 70)
	ready9.TermsCompleted = 3
	ready9.BoardMarksEntered = true

	notReady := gradedStudent("c", 4, models.CategoryNone, 70)
	notReady.TermsCompleted = 1

	ready11 := gradedStudent("d", 11, models.CategoryPreEngineering, 70)
	ready11.TermsCompleted = 3
	ready11.BoardMarksEntered = true

	final := gradedStudent("e", 12, models.CategoryComputerScience, 70)
	final.TermsCompleted = 3
	final.BoardMarksEntered = true

	for _, s := range []*models.Student{ready5, ready9, notReady, ready11, final} {
		require.NoError(t, store.Add(s))
	}

	// April: tiers 1-7 and 8-10 are open, 11-12 is not.
	report := NewEngine(fixedClock(time.April)).PromoteAll(store)

	require.Len(t, report.Entries, 5)
	assert.Equal(t, 2, report.Promoted)
	assert.Equal(t, 1, report.NotEligible)
	assert.Equal(t, 1, report.NotInSeason)
	assert.Equal(t, 1, report.Terminal)

	assert.Equal(t, "a", report.Entries[0].RollNo)
	assert.Equal(t, Promoted, report.Entries[0].Outcome)
	assert.Equal(t, 5, report.Entries[0].ClassName)
	assert.Equal(t, Ineligible, report.Entries[2].Outcome)
	assert.False(t, report.Entries[2].Eligibility.TermsOK)
	assert.Equal(t, NotInSeason, report.Entries[3].Outcome)
	assert.Equal(t, Terminal, report.Entries[4].Outcome)

	assert.Equal(t, 6, ready5.ClassName)
	assert.Equal(t, 10, ready9.ClassName)
	assert.Equal(t, 4, notReady.ClassName)
	assert.Equal(t, 11, ready11.ClassName)
	assert.Equal(t, 12, final.ClassName)
}

func TestAdmissionDateConsistent(t *testing.T) {
	tests := []struct {
		name          string
		class         int
		admissionYear int
		month         time.Month
		want          bool
	}{
		{"primary before March uses last year", 3, 2025, time.February, true},
		{"primary before March rejects this year", 3, 2026, time.February, false},
		{"primary from March uses this year", 3, 2026, time.March, true},
		{"secondary in March uses last year", 9, 2025, time.March, true},
		{"secondary from April uses this year", 9, 2026, time.April, true},
		{"college in May uses last year", 11, 2025, time.May, true},
		{"college in June rejects last year", 12, 2025, time.June, false},
		{"unknown class passes", 0, 1999, time.June, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdmissionDateConsistent(tt.class, tt.admissionYear, tt.month, 2026))
		})
	}

	e := NewEngine(fixedClock(time.July))
	assert.True(t, e.AdmissionDateConsistent(12, 2026))
	assert.False(t, e.AdmissionDateConsistent(12, 2025))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "promoted", Promoted.String())
	assert.Equal(t, "not promotion time yet", NotInSeason.String())
}
