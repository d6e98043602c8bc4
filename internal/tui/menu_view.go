package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	choice int
	label  string
}

var menuItems = []menuItem{
	{1, "Add New Student"},
	{2, "Update Student Marks"},
	{3, "Mark Attendance"},
	{4, "Delete Student"},
	{5, "Search Student"},
	{6, "Display All Students"},
	{7, "Promote All Students (New Year)"},
	{8, "Update Terms"},
	{9, "Save to File"},
	{10, "Load from File"},
	{11, "Manage Subjects"},
	{0, "Exit"},
}

func (m Model) updateMenuView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case "enter":
		return m.choose(menuItems[m.cursor].choice)

	case "x":
		return m.Update(m.exportResults())

	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		choice := int(key[0] - '0')
		for i, item := range menuItems {
			if item.choice == choice {
				m.cursor = i
			}
		}
		return m.choose(choice)
	}

	return m, nil
}

func (m Model) choose(choice int) (tea.Model, tea.Cmd) {
	switch choice {
	case 0:
		return m, tea.Quit
	case 1:
		return m, m.addStudent()
	case 2:
		return m, m.updateMarks()
	case 3:
		return m, m.markAttendance()
	case 4:
		return m, m.deleteStudent()
	case 5:
		return m, m.searchStudent()
	case 6:
		return m.openTable()
	case 7:
		return m.Update(m.promoteAll())
	case 8:
		return m, m.updateTerms()
	case 9:
		return m.Update(m.save())
	case 10:
		return m.Update(m.load())
	case 11:
		return m, m.manageSubjects()
	}
	return m, nil
}

func (m Model) renderMenuView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("cbrarecords - Student Record Management") + "\n")
	b.WriteString(countStyle.Render(fmt.Sprintf("%d students", len(m.mgr.ListStudents()))) + "\n")

	for i, item := range menuItems {
		cursor := " "
		style := menuItemStyle
		if i == m.cursor {
			cursor = ">"
			style = menuCursorStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %2d. %s", cursor, item.choice, item.label)) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		switch {
		case m.statusErr:
			b.WriteString(errorStyle.Render(m.status))
		case m.statusWarn:
			b.WriteString(warningStyle.Render(m.status))
		default:
			b.WriteString(okStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	help := []string{
		"↑/k: up",
		"↓/j: down",
		"enter: select",
		"0-9: shortcut",
		"x: export results",
		"q: quit",
	}
	b.WriteString(helpStyle.Render(strings.Join(help, " • ")))

	return pageStyle.Render(b.String())
}

func (m Model) updateDetailView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q", "enter":
		m.state = m.returnTo
	}
	return m, nil
}

func (m Model) renderDetailView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.detailTitle) + "\n")
	b.WriteString(m.detail + "\n")
	b.WriteString(helpStyle.Render("esc/enter: back"))
	return pageStyle.Render(b.String())
}
