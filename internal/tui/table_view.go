package tui

import (
	"fmt"
	"strings"

	"cbrarecords/internal/models"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

var studentColumns = []table.Column{
	{Title: "Roll No", Width: 10},
	{Title: "Name", Width: 22},
	{Title: "Class", Width: 6},
	{Title: "Category", Width: 17},
	{Title: "Marks", Width: 12},
	{Title: "%", Width: 7},
	{Title: "Grade", Width: 6},
	{Title: "Terms", Width: 6},
	{Title: "Present", Width: 8},
}

func studentRows(students []*models.Student) []table.Row {
	rows := make([]table.Row, 0, len(students))
	for _, s := range students {
		marks := "-"
		pct := "-"
		if s.MaxMarks > 0 {
			marks = fmt.Sprintf("%g/%g", s.TotalMarks, s.MaxMarks)
			pct = fmt.Sprintf("%.2f", s.Percentage)
		}
		rows = append(rows, table.Row{
			s.RollNo,
			s.Name,
			fmt.Sprint(s.ClassName),
			string(s.Category),
			marks,
			pct,
			s.Grade.String(),
			fmt.Sprintf("%d/%d", s.TermsCompleted, models.MaxTerms),
			fmt.Sprintf("%d/%d", s.Attendance.TotalPresent(), s.Attendance.TotalMarkedDays()),
		})
	}
	return rows
}

func (m Model) openTable() (tea.Model, tea.Cmd) {
	students := m.mgr.ListStudents()
	if len(students) == 0 {
		m.status = "No students in system"
		m.statusErr = false
		m.statusWarn = false
		return m, nil
	}

	rows := studentRows(students)
	t := table.New(
		table.WithColumns(studentColumns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 20)),
	)

	t.SetStyles(studentTableStyles())

	m.table = t
	m.students = students
	m.state = tableView
	return m, nil
}

func (m Model) updateTableView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "q":
		m.state = menuView
		return m, nil

	case "enter":
		i := m.table.Cursor()
		if i >= 0 && i < len(m.students) {
			s := m.students[i]
			m.detailTitle = "Student " + s.RollNo
			m.detail = RenderCard(s)
			m.returnTo = tableView
			m.state = detailView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) renderTableView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("All Student Records") + "\n")
	b.WriteString(countStyle.Render(fmt.Sprintf("Total Students: %d", len(m.students))) + "\n")
	b.WriteString(m.table.View() + "\n")

	help := []string{
		"↑/↓: move",
		"enter: record card",
		"esc: back",
	}
	b.WriteString(helpStyle.Render(strings.Join(help, " • ")))

	return pageStyle.Render(b.String())
}
