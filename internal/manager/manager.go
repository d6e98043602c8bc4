package manager

import (
	"fmt"
	"strconv"
	"strings"

	"cbrarecords/internal/apperr"
	"cbrarecords/internal/logging"
	"cbrarecords/internal/models"
	"cbrarecords/internal/promotion"
	"cbrarecords/internal/records"
	"cbrarecords/internal/storage"

	gokitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Manager is the entry point the console layers call into. It owns no
// global state; callers construct one and pass it along.
type Manager struct {
	store   *records.Store
	engine  *promotion.Engine
	storage *storage.Storage
	logger  gokitlog.Logger
}

// New wires a Manager. Nil arguments get working defaults.
func New(store *records.Store, engine *promotion.Engine, st *storage.Storage, logger gokitlog.Logger) *Manager {
	if store == nil {
		store = records.New()
	}
	if engine == nil {
		engine = promotion.NewEngine(nil)
	}
	if st == nil {
		st = storage.New(nil)
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Manager{
		store:   store,
		engine:  engine,
		storage: st,
		logger:  gokitlog.With(logger, "component", "manager"),
	}
}

// StudentInput is an admission as entered by the operator.
type StudentInput struct {
	RollNo        string
	Name          string
	FatherName    string
	ClassName     int
	Category      models.ClassCategory
	AdmissionYear int
	DateOfBirth   string // DDMMYYYY, optional
	CNIC          string // 13 digits, optional
	Address       string
	Subjects      []string // classes 1-7 only
}

type AddResult struct {
	Student *models.Student
	// AdmissionMismatch is set when the admission year does not match the
	// academic year the class is currently in.
	AdmissionMismatch bool
}

func (m *Manager) AddStudent(in StudentInput) (AddResult, error) {
	in.RollNo = strings.TrimSpace(in.RollNo)
	if in.RollNo == "" {
		return AddResult{}, apperr.New(apperr.KindInvalidFormat, "roll number is required")
	}
	if m.store.Contains(in.RollNo) {
		return AddResult{}, apperr.New(apperr.KindDuplicateKey, "roll number %s already exists", in.RollNo)
	}
	if strings.TrimSpace(in.Name) == "" {
		return AddResult{}, apperr.New(apperr.KindInvalidFormat, "name is required")
	}
	if in.ClassName < models.MinClass || in.ClassName > models.MaxClass {
		return AddResult{}, apperr.New(apperr.KindOutOfRange, "class must be between %d-%d", models.MinClass, models.MaxClass)
	}
	if err := models.ValidateCategory(in.ClassName, in.Category); err != nil {
		return AddResult{}, err
	}
	if _, err := models.ParseYear(strconv.Itoa(in.AdmissionYear)); err != nil {
		return AddResult{}, err
	}
	if in.DateOfBirth != "" {
		if err := models.ValidateDOB(in.DateOfBirth); err != nil {
			return AddResult{}, err
		}
	}
	if in.CNIC != "" {
		if err := models.ValidateCNIC(in.CNIC); err != nil {
			return AddResult{}, err
		}
	}
	for _, f := range []struct{ name, value string }{
		{"roll number", in.RollNo},
		{"name", in.Name},
		{"father's name", in.FatherName},
		{"address", in.Address},
	} {
		if err := models.ValidateText(f.name, f.value); err != nil {
			return AddResult{}, err
		}
	}

	subjects := models.SubjectsForClass(in.ClassName, in.Category)
	if subjects == nil {
		for _, name := range in.Subjects {
			if name = strings.TrimSpace(name); name == "" {
				continue
			}
			if err := models.ValidateSubjectName(name); err != nil {
				return AddResult{}, err
			}
			subjects = append(subjects, name)
		}
	}
	if len(subjects) == 0 {
		return AddResult{}, apperr.New(apperr.KindNoSubjects, "class %d needs at least one subject", in.ClassName)
	}

	s := models.NewStudent(in.RollNo, strings.TrimSpace(in.Name), strings.TrimSpace(in.FatherName), in.ClassName, in.Category, in.AdmissionYear)
	s.DateOfBirth = models.FormatDOB(in.DateOfBirth)
	s.CNIC = models.FormatCNIC(in.CNIC)
	s.Address = strings.TrimSpace(in.Address)
	for _, name := range subjects {
		s.AddSubject(name, models.StatusNotEntered)
	}

	if err := m.store.Add(s); err != nil {
		return AddResult{}, err
	}

	result := AddResult{
		Student:           s,
		AdmissionMismatch: !m.engine.AdmissionDateConsistent(s.ClassName, s.AdmissionYear),
	}
	level.Info(m.logger).Log("msg", "student added", "roll", s.RollNo, "class", s.ClassName, "subjects", len(s.Subjects))
	if result.AdmissionMismatch {
		level.Warn(m.logger).Log("msg", "admission year does not match current session", "roll", s.RollNo, "admission_year", s.AdmissionYear)
	}
	return result, nil
}

// MarkUpdate is new marks for the subject at position Index, as typed by the
// operator. An empty Input keeps the current status.
type MarkUpdate struct {
	Index int
	Input string
}

// UpdateMarks validates every update before applying any of them, then
// recomputes the totals. board marks the board exam as entered; it only has
// an effect for classes 8-12.
func (m *Manager) UpdateMarks(rollNo string, updates []MarkUpdate, board bool) (*models.Student, error) {
	s, err := m.store.Find(rollNo)
	if err != nil {
		return nil, err
	}
	if len(s.Subjects) == 0 {
		return nil, apperr.New(apperr.KindNoSubjects, "student %s has no subjects", rollNo)
	}

	type change struct {
		index  int
		status models.MarkStatus
	}
	var changes []change
	for _, u := range updates {
		if u.Index < 0 || u.Index >= len(s.Subjects) {
			return nil, apperr.New(apperr.KindNotFound, "student %s has no subject %d", rollNo, u.Index+1)
		}
		if strings.TrimSpace(u.Input) == "" {
			continue
		}
		name := s.Subjects[u.Index].Name
		status, err := models.ParseMarkStatus(u.Input, s.MaxMarksFor(name))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		changes = append(changes, change{index: u.Index, status: status})
	}

	for _, c := range changes {
		s.Subjects[c.index].Status = c.status
	}
	s.RecomputeMarks()
	if board && s.IsBoardClass() {
		s.BoardMarksEntered = true
	}

	level.Info(m.logger).Log("msg", "marks updated", "roll", rollNo, "changed", len(changes), "percentage", s.Percentage, "grade", s.Grade)
	return s, nil
}

func (m *Manager) MarkAttendance(rollNo string, year, month, day int, present bool) error {
	s, err := m.store.Find(rollNo)
	if err != nil {
		return err
	}
	if err := s.Attendance.Mark(year, month, day, present); err != nil {
		return err
	}
	level.Debug(m.logger).Log("msg", "attendance marked", "roll", rollNo, "year", year, "month", month, "day", day, "present", present)
	return nil
}

func (m *Manager) DeleteStudent(rollNo string) error {
	if err := m.store.Remove(rollNo); err != nil {
		return err
	}
	level.Info(m.logger).Log("msg", "student deleted", "roll", rollNo)
	return nil
}

func (m *Manager) SearchStudent(rollNo string) (*models.Student, error) {
	return m.store.Find(strings.TrimSpace(rollNo))
}

// ListStudents returns every record in insertion order.
func (m *Manager) ListStudents() []*models.Student {
	return m.store.All()
}

func (m *Manager) PromoteAll() promotion.Report {
	report := m.engine.PromoteAll(m.store)
	level.Info(m.logger).Log("msg", "promotion run", "promoted", report.Promoted, "not_eligible", report.NotEligible,
		"not_in_season", report.NotInSeason, "terminal", report.Terminal)
	return report
}

func (m *Manager) UpdateTerms(rollNo string, terms int) error {
	s, err := m.store.Find(rollNo)
	if err != nil {
		return err
	}
	if terms < 0 || terms > models.MaxTerms {
		return apperr.New(apperr.KindOutOfRange, "terms must be between 0 and %d", models.MaxTerms)
	}
	s.TermsCompleted = terms
	level.Info(m.logger).Log("msg", "terms updated", "roll", rollNo, "terms", terms)
	return nil
}

// SubjectSet describes a student's current subjects.
type SubjectSet struct {
	ClassName int
	Category  models.ClassCategory
	Subjects  []string
}

// ManageSubjects reports the subject list. Subjects follow from class and
// category, so there is nothing to edit here.
func (m *Manager) ManageSubjects(rollNo string) (SubjectSet, error) {
	s, err := m.store.Find(rollNo)
	if err != nil {
		return SubjectSet{}, err
	}
	return SubjectSet{
		ClassName: s.ClassName,
		Category:  s.Category,
		Subjects:  s.SubjectNames(),
	}, nil
}

// Save writes the store to path in insertion order.
func (m *Manager) Save(path string) (int, error) {
	var n int
	err := logging.TimeFunction(m.logger, "save", func() error {
		var err error
		n, err = m.storage.Save(path, m.store)
		return err
	})
	if err != nil {
		return 0, err
	}
	level.Info(m.logger).Log("msg", "records saved", "path", path, "count", n)
	return n, nil
}

// Load merges path into the store. Skipped lines are logged and returned.
func (m *Manager) Load(path string) (storage.LoadResult, error) {
	var result storage.LoadResult
	err := logging.TimeFunction(m.logger, "load", func() error {
		var err error
		result, err = m.storage.Load(path, m.store)
		return err
	})
	if err != nil {
		return storage.LoadResult{}, err
	}

	for _, roll := range result.Duplicates {
		level.Warn(m.logger).Log("msg", "duplicate roll number skipped", "path", path, "roll", roll)
	}
	for _, c := range result.Corrupt {
		level.Warn(m.logger).Log("msg", "corrupt line skipped", "path", path, "line", c.Line, "err", c.Err)
	}
	level.Info(m.logger).Log("msg", "records loaded", "path", path, "count", result.Loaded)
	return result, nil
}

// ExportResults writes an XLSX workbook of every student.
func (m *Manager) ExportResults(path string) error {
	return logging.TimeFunction(gokitlog.With(m.logger, "path", path), "export", func() error {
		return storage.ExportResultsXLSX(m.store.All(), path)
	})
}

type ImportResult struct {
	Imported int
	Skipped  []storage.LineError
}

// ImportRoster admits every usable row of a CSV or XLSX roster. Rows that
// fail to parse or validate are collected, not fatal.
func (m *Manager) ImportRoster(path string) (ImportResult, error) {
	roster, err := storage.ReadRoster(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to read roster: %w", err)
	}

	result := ImportResult{Skipped: roster.Skipped}
	for _, row := range roster.Rows {
		_, err := m.AddStudent(StudentInput{
			RollNo:        row.RollNo,
			Name:          row.Name,
			FatherName:    row.FatherName,
			ClassName:     row.ClassName,
			Category:      row.Category,
			AdmissionYear: row.AdmissionYear,
			Subjects:      row.Subjects,
		})
		if err != nil {
			result.Skipped = append(result.Skipped, storage.LineError{Line: row.Line, Err: err})
			continue
		}
		result.Imported++
	}

	level.Info(m.logger).Log("msg", "roster imported", "path", path, "imported", result.Imported, "skipped", len(result.Skipped))
	return result, nil
}
