package tui

import (
	"errors"
	"time"

	"cbrarecords/internal/config"
	"cbrarecords/internal/manager"
	"cbrarecords/internal/models"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type viewState int

const (
	menuView viewState = iota
	tableView
	detailView
)

type Model struct {
	cfg config.Config
	mgr *manager.Manager
	now func() time.Time

	// State
	state    viewState
	cursor   int
	table    table.Model
	students []*models.Student // rows behind the table

	detailTitle string
	detail      string
	returnTo    viewState // where esc leaves the detail page

	status     string
	statusErr  bool
	statusWarn bool

	// UI dimensions
	width  int
	height int
}

func NewModel(cfg config.Config, mgr *manager.Manager) Model {
	return Model{
		cfg:    cfg,
		mgr:    mgr,
		now:    time.Now,
		state:  menuView,
		status: "Data file: " + cfg.DataPath(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// statusMsg ends an action and returns to the menu.
type statusMsg struct {
	text string
	warn bool
	err  error
}

// detailMsg opens a read-only page.
type detailMsg struct {
	title string
	body  string
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statusMsg:
		m.state = menuView
		m.statusErr = msg.err != nil
		m.statusWarn = msg.warn && msg.err == nil
		if msg.err != nil {
			m.status = errorText(msg.err)
		} else {
			m.status = msg.text
		}
		return m, nil

	case detailMsg:
		m.state = detailView
		m.returnTo = menuView
		m.detailTitle = msg.title
		m.detail = msg.body
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case menuView:
			return m.updateMenuView(msg)
		case tableView:
			return m.updateTableView(msg)
		case detailView:
			return m.updateDetailView(msg)
		}
	}

	return m, nil
}

func (m Model) View() string {
	switch m.state {
	case menuView:
		return m.renderMenuView()
	case tableView:
		return m.renderTableView()
	case detailView:
		return m.renderDetailView()
	default:
		return "Unknown view"
	}
}

func errorText(err error) string {
	if errors.Is(err, huh.ErrUserAborted) {
		return "Cancelled"
	}
	return "Error: " + err.Error()
}

// Run starts the interactive menu and blocks until the operator exits.
func Run(cfg config.Config, mgr *manager.Manager) error {
	p := tea.NewProgram(NewModel(cfg, mgr), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
