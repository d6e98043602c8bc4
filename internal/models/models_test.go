package models

import (
	"testing"

	"cbrarecords/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeOfBoundaries(t *testing.T) {
	tests := []struct {
		pct  float64
		want Grade
	}{
		{100, 'A'},
		{90.0, 'A'},
		{89.99, 'B'},
		{80.0, 'B'},
		{79.99, 'C'},
		{70.0, 'C'},
		{69.99, 'D'},
		{60.0, 'D'},
		{59.99, 'E'},
		{50.0, 'E'},
		{49.99, 'F'},
		{0, 'F'},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeOf(tt.pct), "percentage %v", tt.pct)
	}
}

func TestMaxMarksFor(t *testing.T) {
	assert.Equal(t, 75.0, MaxMarksFor(9, "Physics"))
	assert.Equal(t, 75.0, MaxMarksFor(12, "Biology"))
	assert.Equal(t, 100.0, MaxMarksFor(9, "English"))
	assert.Equal(t, 100.0, MaxMarksFor(7, "Physics"))
	assert.Equal(t, 100.0, MaxMarksFor(1, "Computer Science"))
}

func TestAddSubjectIncremental(t *testing.T) {
	s := NewStudent("1", "Ali", "Khan", 9, CategoryComputerScience, 2025)

	s.AddSubject("English", Marks(80))
	assert.Equal(t, 80.0, s.TotalMarks)
	assert.Equal(t, 100.0, s.MaxMarks)
	assert.InDelta(t, 80.0, s.Percentage, 1e-9)
	assert.Equal(t, Grade('B'), s.Grade)

	s.AddSubject("Physics", Marks(75))
	assert.Equal(t, 155.0, s.TotalMarks)
	assert.Equal(t, 175.0, s.MaxMarks)

	s.AddSubject("Urdu", StatusAbsent)
	s.AddSubject("Maths", StatusNotEntered)
	assert.Equal(t, 175.0, s.MaxMarks, "non-numeric subjects carry no max")
	assert.Len(t, s.Subjects, 4)
	assert.Equal(t, []string{"English", "Physics", "Urdu", "Maths"}, s.SubjectNames())
}

func TestAddSubjectWithoutNumericKeepsF(t *testing.T) {
	s := NewStudent("1", "Ali", "Khan", 3, CategoryNone, 2025)
	s.AddSubject("Art", StatusNotEntered)

	assert.Equal(t, 0.0, s.MaxMarks)
	assert.Equal(t, 0.0, s.Percentage)
	assert.Equal(t, Grade('F'), s.Grade)
}

func TestRecomputeMarksIsIdempotent(t *testing.T) {
	s := NewStudent("1", "Sara", "Ahmed", 10, CategoryBiology, 2025)
	s.AddSubject("English", Marks(50))
	s.AddSubject("Biology", Marks(60))

	// Simulate stale totals left by an interrupted edit.
	s.TotalMarks = 9999
	s.MaxMarks = 1
	s.Subjects[0].Status = Marks(90)

	s.RecomputeMarks()
	first := *s
	s.RecomputeMarks()

	assert.Equal(t, 150.0, s.TotalMarks)
	assert.Equal(t, 175.0, s.MaxMarks)
	assert.InDelta(t, 150.0/175.0*100, s.Percentage, 1e-9)
	assert.Equal(t, Grade('B'), s.Grade)
	assert.Equal(t, first.TotalMarks, s.TotalMarks)
	assert.Equal(t, first.Percentage, s.Percentage)
}

func TestRecomputeMarksAllNonNumeric(t *testing.T) {
	s := NewStudent("1", "Sara", "Ahmed", 5, CategoryNone, 2025)
	s.AddSubject("English", Marks(95))
	s.Subjects[0].Status = StatusLeave

	s.RecomputeMarks()

	assert.Equal(t, 0.0, s.MaxMarks)
	assert.Equal(t, 0.0, s.Percentage)
	assert.Equal(t, Grade('F'), s.Grade)
}

func TestClearSubjects(t *testing.T) {
	s := NewStudent("1", "Sara", "Ahmed", 5, CategoryNone, 2025)
	s.AddSubject("English", Marks(95))

	s.ClearSubjects()

	assert.Empty(t, s.Subjects)
	assert.Equal(t, 0.0, s.TotalMarks)
	assert.Equal(t, 0.0, s.MaxMarks)
	assert.Equal(t, 0.0, s.Percentage)
	assert.Equal(t, Grade('F'), s.Grade)
}

func TestMarkStatusTokens(t *testing.T) {
	tests := []struct {
		in   string
		want MarkStatus
	}{
		{"A", StatusAbsent},
		{"L", StatusLeave},
		{"-", StatusNotEntered},
		{"85", Marks(85)},
		{"72.5", Marks(72.5)},
	}

	for _, tt := range tests {
		got, err := DecodeMarkStatus(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.in, got.String())
	}

	_, err := DecodeMarkStatus("abc")
	assert.ErrorIs(t, err, apperr.ErrInvalidFormat)
	_, err = DecodeMarkStatus("NaN")
	assert.ErrorIs(t, err, apperr.ErrInvalidFormat)
}

func TestParseMarkStatus(t *testing.T) {
	got, err := ParseMarkStatus(" 75 ", 75)
	require.NoError(t, err)
	assert.Equal(t, Marks(75), got)

	got, err = ParseMarkStatus("a", 100)
	require.NoError(t, err)
	assert.Equal(t, StatusAbsent, got)

	_, err = ParseMarkStatus("76", 75)
	assert.ErrorIs(t, err, apperr.ErrOutOfRange)

	_, err = ParseMarkStatus("-5", 100)
	assert.ErrorIs(t, err, apperr.ErrOutOfRange)

	_, err = ParseMarkStatus("eighty", 100)
	assert.ErrorIs(t, err, apperr.ErrInvalidFormat)
}

func TestDOBAndCNICFormatting(t *testing.T) {
	assert.NoError(t, ValidateDOB("15082010"))
	assert.Equal(t, "15-08-2010", FormatDOB("15082010"))
	assert.ErrorIs(t, ValidateDOB("1508201"), apperr.ErrInvalidFormat)
	assert.ErrorIs(t, ValidateDOB("15-08-2010"), apperr.ErrInvalidFormat)

	assert.NoError(t, ValidateCNIC("3520212345671"))
	assert.Equal(t, "35202-1234567-1", FormatCNIC("3520212345671"))
	assert.ErrorIs(t, ValidateCNIC("35202-1234567"), apperr.ErrInvalidFormat)
	assert.Equal(t, "bogus", FormatCNIC("bogus"))
}

func TestParseNumbers(t *testing.T) {
	y, err := ParseYear("2025")
	require.NoError(t, err)
	assert.Equal(t, 2025, y)
	_, err = ParseYear("1899")
	assert.ErrorIs(t, err, apperr.ErrOutOfRange)
	_, err = ParseYear("twenty")
	assert.ErrorIs(t, err, apperr.ErrInvalidFormat)

	c, err := ParseClass("12")
	require.NoError(t, err)
	assert.Equal(t, 12, c)
	_, err = ParseClass("13")
	assert.ErrorIs(t, err, apperr.ErrOutOfRange)

	n, err := ParseTerms("3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	_, err = ParseTerms("4")
	assert.ErrorIs(t, err, apperr.ErrOutOfRange)
}

func TestCurriculum(t *testing.T) {
	cs9 := SubjectsForClass(9, CategoryComputerScience)
	assert.Len(t, cs9, 9)
	assert.Contains(t, cs9, "Computer Science")
	assert.NotContains(t, cs9, "Biology")

	pm12 := SubjectsForClass(12, CategoryPreMedical)
	assert.Equal(t, []string{"English", "Urdu", "Physics", "Biology", "Chemistry", "Pak Studies", "Mutaila Quran"}, pm12)

	pe11 := SubjectsForClass(11, CategoryPreEngineering)
	assert.Contains(t, pe11, "Islamiat")

	assert.Nil(t, SubjectsForClass(5, CategoryNone))
	assert.Nil(t, SubjectsForClass(9, CategoryPreMedical))
}

func TestValidateCategory(t *testing.T) {
	assert.NoError(t, ValidateCategory(4, CategoryNone))
	assert.NoError(t, ValidateCategory(10, CategoryBiology))
	assert.NoError(t, ValidateCategory(11, CategoryPreEngineering))

	assert.ErrorIs(t, ValidateCategory(4, CategoryBiology), apperr.ErrInvalidFormat)
	assert.ErrorIs(t, ValidateCategory(9, CategoryPreMedical), apperr.ErrInvalidFormat)
	assert.ErrorIs(t, ValidateCategory(12, CategoryBiology), apperr.ErrInvalidFormat)
	assert.ErrorIs(t, ValidateCategory(12, CategoryNone), apperr.ErrInvalidFormat)

	_, err := ParseCategory("Arts")
	assert.ErrorIs(t, err, apperr.ErrInvalidFormat)
}

func TestValidateText(t *testing.T) {
	assert.NoError(t, ValidateText("address", "House 4, Street 2: Lahore"))
	assert.ErrorIs(t, ValidateText("address", "House 4 | Lahore"), apperr.ErrInvalidFormat)
	assert.ErrorIs(t, ValidateText("name", "Ali\nRaza"), apperr.ErrInvalidFormat)

	assert.NoError(t, ValidateSubjectName("Art & Craft"))
	for _, name := range []string{"Art:Craft", "Art,Craft", "Art|Craft"} {
		assert.ErrorIs(t, ValidateSubjectName(name), apperr.ErrInvalidFormat, name)
	}
}
