package tui

import (
	"errors"
	"strconv"
	"strings"

	"cbrarecords/internal/attendance"
	"cbrarecords/internal/manager"
	"cbrarecords/internal/models"

	"github.com/charmbracelet/huh"
)

func required(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(what + " is required")
		}
		return nil
	}
}

func optional(validate func(string) error) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return validate(strings.TrimSpace(s))
	}
}

// chain runs validators in order and returns the first error.
func chain(validators ...func(string) error) func(string) error {
	return func(s string) error {
		for _, v := range validators {
			if err := v(s); err != nil {
				return err
			}
		}
		return nil
	}
}

func plainText(what string) func(string) error {
	return func(s string) error {
		return models.ValidateText(what, s)
	}
}

// validateSubjectList checks a comma separated list of subject names.
func validateSubjectList(s string) error {
	n := 0
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		if err := models.ValidateSubjectName(name); err != nil {
			return err
		}
		n++
	}
	if n == 0 {
		return errors.New("at least one subject is required")
	}
	return nil
}

func validateClass(s string) error {
	_, err := models.ParseClass(s)
	return err
}

func validateYear(s string) error {
	_, err := models.ParseYear(s)
	return err
}

func validateTerms(s string) error {
	_, err := models.ParseTerms(s)
	return err
}

func validateCalendarYear(s string) error {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y < attendance.MinYear || y > attendance.MaxYear {
		return errors.New("year must be between 2024-2034")
	}
	return nil
}

func validateMonth(s string) error {
	m, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || m < 1 || m > 12 {
		return errors.New("invalid month")
	}
	return nil
}

func ShowRollForm(title string) (string, error) {
	var roll string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&roll).
				Validate(required("roll number")),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(roll), nil
}

func ShowConfirm(title string) (bool, error) {
	var ok bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}

type StudentFormResult struct {
	RollNo        string
	Name          string
	FatherName    string
	Class         string
	AdmissionYear string
	DateOfBirth   string
	CNIC          string
	Address       string
	Category      models.ClassCategory
	Subjects      string // comma separated, classes 1-7
}

// Input converts the form values. Fields were validated by the form.
func (r StudentFormResult) Input() manager.StudentInput {
	className, _ := models.ParseClass(r.Class)
	year, _ := models.ParseYear(r.AdmissionYear)

	var subjects []string
	for _, name := range strings.Split(r.Subjects, ",") {
		if name = strings.TrimSpace(name); name != "" {
			subjects = append(subjects, name)
		}
	}

	return manager.StudentInput{
		RollNo:        strings.TrimSpace(r.RollNo),
		Name:          r.Name,
		FatherName:    r.FatherName,
		ClassName:     className,
		Category:      r.Category,
		AdmissionYear: year,
		DateOfBirth:   strings.TrimSpace(r.DateOfBirth),
		CNIC:          strings.TrimSpace(r.CNIC),
		Address:       r.Address,
		Subjects:      subjects,
	}
}

// ShowStudentForm asks for the admission details, then for the category or
// the subject list depending on the class.
func ShowStudentForm(currentYear int) (*StudentFormResult, error) {
	result := &StudentFormResult{AdmissionYear: strconv.Itoa(currentYear)}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Roll Number").
				Value(&result.RollNo).
				Validate(chain(required("roll number"), plainText("roll number"))),

			huh.NewInput().
				Title("Name").
				Value(&result.Name).
				Validate(chain(required("name"), plainText("name"))),

			huh.NewInput().
				Title("Father's Name").
				Value(&result.FatherName).
				Validate(plainText("father's name")),

			huh.NewInput().
				Title("Class (1-12)").
				Value(&result.Class).
				Validate(validateClass),

			huh.NewInput().
				Title("Admission Year").
				Value(&result.AdmissionYear).
				Validate(validateYear),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Date of Birth (DDMMYYYY, optional)").
				Value(&result.DateOfBirth).
				Validate(optional(models.ValidateDOB)),

			huh.NewInput().
				Title("CNIC/B-Form (13 digits, optional)").
				Value(&result.CNIC).
				Validate(optional(models.ValidateCNIC)),

			huh.NewInput().
				Title("Address").
				Value(&result.Address).
				Validate(plainText("address")),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	className, _ := models.ParseClass(result.Class)
	if categories := models.AllowedCategories(className); len(categories) > 0 {
		options := make([]huh.Option[models.ClassCategory], len(categories))
		for i, c := range categories {
			options[i] = huh.NewOption(string(c), c)
		}
		result.Category = categories[0]

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[models.ClassCategory]().
					Title("Category").
					Options(options...).
					Value(&result.Category),
			),
		)
		if err := form.Run(); err != nil {
			return nil, err
		}
		return result, nil
	}

	form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subjects (comma separated)").
				Value(&result.Subjects).
				Placeholder("e.g., English, Urdu, Maths").
				Validate(validateSubjectList),
		),
	)
	if err := form.Run(); err != nil {
		return nil, err
	}
	return result, nil
}

type MarksFormResult struct {
	Updates []manager.MarkUpdate
	Board   bool
}

// ShowMarksForm asks for every subject's marks. Blank keeps the current
// value.
func ShowMarksForm(s *models.Student) (*MarksFormResult, error) {
	values := make([]string, len(s.Subjects))
	fields := make([]huh.Field, 0, len(s.Subjects))

	for i, sub := range s.Subjects {
		maxMarks := s.MaxMarksFor(sub.Name)
		fields = append(fields, huh.NewInput().
			Title(sub.Name+" (0-"+strconv.FormatFloat(maxMarks, 'f', -1, 64)+", A, L, -)").
			Description("Current: "+sub.Status.Label()).
			Value(&values[i]).
			Validate(optional(func(v string) error {
				_, err := models.ParseMarkStatus(v, maxMarks)
				return err
			})))
	}

	board := s.BoardMarksEntered
	groups := []*huh.Group{huh.NewGroup(fields...)}
	if s.IsBoardClass() {
		groups = append(groups, huh.NewGroup(
			huh.NewConfirm().
				Title("Are these board exam marks?").
				Affirmative("Yes").
				Negative("No").
				Value(&board),
		))
	}

	if err := huh.NewForm(groups...).Run(); err != nil {
		return nil, err
	}

	result := &MarksFormResult{Board: board}
	for i := range s.Subjects {
		result.Updates = append(result.Updates, manager.MarkUpdate{Index: i, Input: values[i]})
	}
	return result, nil
}

type AttendanceFormResult struct {
	Year    int
	Month   int
	Day     int
	Present bool
}

func ShowAttendanceForm(name string, currentYear int) (*AttendanceFormResult, error) {
	year := strconv.Itoa(currentYear)
	var month, day string
	present := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Mark Attendance").
				Description("Student: "+name),

			huh.NewInput().
				Title("Year (2024-2034)").
				Value(&year).
				Validate(validateCalendarYear),

			huh.NewInput().
				Title("Month (1-12)").
				Value(&month).
				Validate(validateMonth),

			huh.NewInput().
				Title("Day").
				Value(&day).
				Validate(required("day")),

			huh.NewSelect[bool]().
				Title("Mark as").
				Options(
					huh.NewOption("Present", true),
					huh.NewOption("Absent", false),
				).
				Value(&present),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	result := &AttendanceFormResult{Present: present}
	result.Year, _ = strconv.Atoi(strings.TrimSpace(year))
	result.Month, _ = strconv.Atoi(strings.TrimSpace(month))
	d, err := strconv.Atoi(strings.TrimSpace(day))
	if err != nil {
		return nil, errors.New("invalid day")
	}
	result.Day = d
	return result, nil
}

func ShowTermsForm(name string, current int) (int, error) {
	terms := strconv.Itoa(current)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Terms completed by "+name+" (0-3)").
				Value(&terms).
				Validate(validateTerms),
		),
	)

	if err := form.Run(); err != nil {
		return 0, err
	}
	return models.ParseTerms(terms)
}
