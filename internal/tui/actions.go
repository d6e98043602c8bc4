package tui

import (
	"fmt"
	"os/exec"
	"strings"

	"cbrarecords/internal/models"

	tea "github.com/charmbracelet/bubbletea"
)

// runForm suspends the program while fn shows huh forms, then delivers the
// message fn returns.
func runForm(fn func() tea.Msg) tea.Cmd {
	return tea.ExecProcess(exec.Command("true"), func(err error) tea.Msg {
		if err != nil {
			return statusMsg{err: err}
		}
		return fn()
	})
}

// withStudent asks for a roll number and looks the student up.
func (m Model) withStudent(title string, fn func(s *models.Student) tea.Msg) tea.Cmd {
	return runForm(func() tea.Msg {
		roll, err := ShowRollForm(title)
		if err != nil {
			return statusMsg{err: err}
		}
		s, err := m.mgr.SearchStudent(roll)
		if err != nil {
			return statusMsg{err: err}
		}
		return fn(s)
	})
}

func (m Model) addStudent() tea.Cmd {
	return runForm(func() tea.Msg {
		formResult, err := ShowStudentForm(m.now().Year())
		if err != nil {
			return statusMsg{err: err}
		}

		result, err := m.mgr.AddStudent(formResult.Input())
		if err != nil {
			return statusMsg{err: err}
		}

		text := fmt.Sprintf("Student %s added with %d subjects", result.Student.RollNo, len(result.Student.Subjects))
		if result.AdmissionMismatch {
			text += " (warning: admission year does not match the current session)"
		}
		return statusMsg{text: text, warn: result.AdmissionMismatch}
	})
}

func (m Model) updateMarks() tea.Cmd {
	return m.withStudent("Roll number to update marks", func(s *models.Student) tea.Msg {
		if len(s.Subjects) == 0 {
			return statusMsg{text: "No subjects found for " + s.Name}
		}

		formResult, err := ShowMarksForm(s)
		if err != nil {
			return statusMsg{err: err}
		}
		updated, err := m.mgr.UpdateMarks(s.RollNo, formResult.Updates, formResult.Board)
		if err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: fmt.Sprintf("Marks updated for %s: %.2f%% grade %s", updated.Name, updated.Percentage, updated.Grade)}
	})
}

func (m Model) markAttendance() tea.Cmd {
	return m.withStudent("Roll number for attendance", func(s *models.Student) tea.Msg {
		formResult, err := ShowAttendanceForm(s.Name, m.now().Year())
		if err != nil {
			return statusMsg{err: err}
		}
		if err := m.mgr.MarkAttendance(s.RollNo, formResult.Year, formResult.Month, formResult.Day, formResult.Present); err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: "Attendance marked for " + s.Name}
	})
}

func (m Model) deleteStudent() tea.Cmd {
	return m.withStudent("Roll number to delete", func(s *models.Student) tea.Msg {
		ok, err := ShowConfirm(fmt.Sprintf("Delete %s (%s)?", s.Name, s.RollNo))
		if err != nil {
			return statusMsg{err: err}
		}
		if !ok {
			return statusMsg{text: "Nothing deleted"}
		}
		if err := m.mgr.DeleteStudent(s.RollNo); err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: "Student " + s.RollNo + " deleted"}
	})
}

func (m Model) searchStudent() tea.Cmd {
	return m.withStudent("Roll number to search", func(s *models.Student) tea.Msg {
		return detailMsg{title: "Student " + s.RollNo, body: RenderCard(s)}
	})
}

func (m Model) updateTerms() tea.Cmd {
	return m.withStudent("Roll number to update terms", func(s *models.Student) tea.Msg {
		terms, err := ShowTermsForm(s.Name, s.TermsCompleted)
		if err != nil {
			return statusMsg{err: err}
		}
		if err := m.mgr.UpdateTerms(s.RollNo, terms); err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: fmt.Sprintf("Terms for %s set to %d/%d", s.Name, terms, models.MaxTerms)}
	})
}

func (m Model) manageSubjects() tea.Cmd {
	return m.withStudent("Roll number to manage subjects", func(s *models.Student) tea.Msg {
		set, err := m.mgr.ManageSubjects(s.RollNo)
		if err != nil {
			return statusMsg{err: err}
		}
		return detailMsg{title: "Manage Subjects", body: renderSubjects(s.Name, set)}
	})
}

// The actions below touch the store without a form, so they run inside
// Update on the event loop and hand their result straight back to it.

func (m Model) promoteAll() tea.Msg {
	report := m.mgr.PromoteAll()
	if len(report.Entries) == 0 {
		return statusMsg{text: "No students in system"}
	}
	return detailMsg{title: "Promotion", body: renderReport(report)}
}

func (m Model) save() tea.Msg {
	path := m.cfg.DataPath()
	n, err := m.mgr.Save(path)
	if err != nil {
		return statusMsg{err: err}
	}
	return statusMsg{text: fmt.Sprintf("Saved %d students to %s", n, path)}
}

func (m Model) load() tea.Msg {
	path := m.cfg.DataPath()
	result, err := m.mgr.Load(path)
	if err != nil {
		return statusMsg{err: err}
	}

	parts := []string{fmt.Sprintf("Loaded %d students from %s", result.Loaded, path)}
	if n := len(result.Duplicates); n > 0 {
		parts = append(parts, fmt.Sprintf("%d duplicates skipped", n))
	}
	if n := len(result.Corrupt); n > 0 {
		lines := make([]string, n)
		for i, c := range result.Corrupt {
			lines[i] = fmt.Sprint(c.Line)
		}
		parts = append(parts, fmt.Sprintf("%d corrupt lines skipped (line %s)", n, strings.Join(lines, ", ")))
	}
	return statusMsg{text: strings.Join(parts, " • ")}
}

func (m Model) exportResults() tea.Msg {
	path := m.cfg.ExportPath(fmt.Sprintf("results_%s.xlsx", m.now().Format("2006-01-02")))
	if err := m.mgr.ExportResults(path); err != nil {
		return statusMsg{err: err}
	}
	return statusMsg{text: "Results exported to " + path}
}
