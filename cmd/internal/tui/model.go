// Package tui is the interactive terminal browser over a state.Grid.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hungpv1995/datagrid/cmd/internal/models"
	"github.com/hungpv1995/datagrid/cmd/internal/state"
)

type inputMode int

const (
	modeBrowse inputMode = iota
	modeSearch
	modeFilter
	modeComments
)

// loadedMsg is sent once a fetch of one or all collections has settled
type loadedMsg struct {
	resource models.Resource
	err      error
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Padding(0, 1)
	activeTab   = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	inactiveTab = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	inputStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Model is the bubbletea model of the browser.
type Model struct {
	ctx     context.Context
	grid    *state.Grid
	fetcher state.Fetcher

	active   models.Resource
	mode     inputMode
	table    table.Model
	input    textinput.Model
	postID   int
	message  string
	quitting bool
}

func New(ctx context.Context, grid *state.Grid, fetcher state.Fetcher) Model {
	ti := textinput.New()
	ti.CharLimit = 80
	ti.Width = 40

	m := Model{
		ctx:     ctx,
		grid:    grid,
		fetcher: fetcher,
		active:  models.Users,
		input:   ti,
		table: table.New(
			table.WithFocused(true),
			table.WithHeight(12),
		),
	}
	m.refresh()
	return m
}

// Init starts the initial concurrent load of all collections.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		m.grid.Load(m.ctx, m.fetcher)
		return loadedMsg{}
	}
}

func (m Model) reload(r models.Resource) tea.Cmd {
	return func() tea.Msg {
		err := m.grid.Reload(m.ctx, m.fetcher, r)
		return loadedMsg{resource: r, err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.message = ""
		if msg.err != nil {
			m.message = fmt.Sprintf("reload of %s failed: %v", msg.resource, msg.err)
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch, modeFilter:
			return m.updateInput(msg)
		case modeComments:
			if msg.String() == "esc" || msg.String() == "q" {
				m.mode = modeBrowse
				m.refresh()
			}
			return m, nil
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		m.active = nextResource(m.active)
		m.refresh()
		return m, nil
	case "/":
		m.mode = modeSearch
		m.input.Placeholder = "Search"
		m.input.SetValue(m.grid.Query(m.active).Term)
		m.input.Focus()
		return m, textinput.Blink
	case "f":
		m.mode = modeFilter
		m.input.Placeholder = "attribute=value"
		q := m.grid.Query(m.active)
		if q.HasFilter() {
			m.input.SetValue(q.Attribute + "=" + q.Value)
		} else {
			m.input.SetValue("")
		}
		m.input.Focus()
		return m, textinput.Blink
	case "left", "h":
		_ = m.grid.Previous(m.active)
		m.refresh()
		return m, nil
	case "right", "l":
		_ = m.grid.Next(m.active)
		m.refresh()
		return m, nil
	case "r":
		m.message = fmt.Sprintf("reloading %s...", m.active)
		return m, m.reload(m.active)
	case "enter":
		if m.active == models.Posts {
			if row := m.table.SelectedRow(); row != nil {
				if id, err := strconv.Atoi(row[0]); err == nil {
					m.postID = id
					m.mode = modeComments
					m.refresh()
				}
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case "enter":
		value := m.input.Value()
		if m.mode == modeSearch {
			_ = m.grid.Search(m.active, value)
		} else if attr, val, ok := ParseFilter(value); ok {
			_ = m.grid.Filter(m.active, attr, val)
		} else {
			_ = m.grid.ClearFilter(m.active)
		}
		m.mode = modeBrowse
		m.input.Blur()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ParseFilter splits "attribute=value". Anything else clears the filter.
func ParseFilter(s string) (attribute, value string, ok bool) {
	attribute, value, found := strings.Cut(s, "=")
	attribute = strings.TrimSpace(attribute)
	if !found || attribute == "" || value == "" {
		return "", "", false
	}
	return attribute, value, true
}

func nextResource(r models.Resource) models.Resource {
	for i, res := range models.Resources {
		if res == r {
			return models.Resources[(i+1)%len(models.Resources)]
		}
	}
	return models.Users
}

// refresh rebuilds the table from the grid's current view
func (m *Model) refresh() {
	var (
		cols []table.Column
		rows []table.Row
	)

	switch {
	case m.mode == modeComments:
		cols = []table.Column{{Title: "ID", Width: 6}, {Title: "Name", Width: 40}, {Title: "Email", Width: 30}}
		for _, c := range m.grid.CommentsForPost(m.postID) {
			rows = append(rows, table.Row{strconv.Itoa(c.ID), c.Name, c.Email})
		}
	case m.active == models.Users:
		cols = []table.Column{{Title: "ID", Width: 6}, {Title: "Name", Width: 30}, {Title: "Email", Width: 30}}
		for _, u := range m.grid.Users().Rows {
			rows = append(rows, table.Row{strconv.Itoa(u.ID), u.Name, u.Email})
		}
	case m.active == models.Posts:
		cols = []table.Column{{Title: "ID", Width: 6}, {Title: "Title", Width: 50}, {Title: "User", Width: 24}}
		for _, p := range m.grid.Posts().Rows {
			rows = append(rows, table.Row{strconv.Itoa(p.ID), p.Title, m.grid.UserName(p.UserID)})
		}
	case m.active == models.Comments:
		cols = []table.Column{{Title: "ID", Width: 6}, {Title: "Name", Width: 30}, {Title: "Email", Width: 26}, {Title: "Post", Width: 30}}
		for _, c := range m.grid.Comments().Rows {
			rows = append(rows, table.Row{strconv.Itoa(c.ID), c.Name, c.Email, m.grid.PostTitle(c.PostID)})
		}
	}

	// rows must never be wider than the columns, so clear them first
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	if len(rows) > 0 {
		m.table.SetCursor(0)
	}
}

// View renders the browser.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	for _, r := range models.Resources {
		if r == m.active {
			sb.WriteString(activeTab.Render(r.String()))
		} else {
			sb.WriteString(inactiveTab.Render(r.String()))
		}
	}
	sb.WriteString("\n\n")

	if m.mode == modeComments {
		sb.WriteString(headerStyle.Render(fmt.Sprintf("Comments on %q", m.grid.PostTitle(m.postID))))
		sb.WriteString("\n" + m.table.View() + "\n")
		sb.WriteString(mutedStyle.Render("esc back"))
		return sb.String()
	}

	status, err := m.grid.Status(m.active)
	switch status {
	case state.StatusLoading:
		sb.WriteString(mutedStyle.Render("loading...") + "\n")
	case state.StatusFailed:
		sb.WriteString(errorStyle.Render(fmt.Sprintf("failed to load %s: %v", m.active, err)) + "\n")
	}

	if m.mode == modeSearch || m.mode == modeFilter {
		sb.WriteString(inputStyle.Render(m.input.View()) + "\n")
	} else if q := m.grid.Query(m.active); q.Term != "" || q.HasFilter() {
		sb.WriteString(mutedStyle.Render(fmt.Sprintf("search %q  filter %s=%q", q.Term, q.Attribute, q.Value)) + "\n")
	}

	sb.WriteString(m.table.View() + "\n")
	sb.WriteString(m.pagerLine() + "\n")
	if m.message != "" {
		sb.WriteString(mutedStyle.Render(m.message) + "\n")
	}
	sb.WriteString(mutedStyle.Render("tab switch  / search  f filter  ←/→ page  r reload  enter comments  q quit"))
	return sb.String()
}

func (m Model) pagerLine() string {
	var page, total, matched, all int
	switch m.active {
	case models.Users:
		v := m.grid.Users()
		page, total, matched, all = v.Page, v.TotalPages, v.Matched, v.Total
	case models.Posts:
		v := m.grid.Posts()
		page, total, matched, all = v.Page, v.TotalPages, v.Matched, v.Total
	case models.Comments:
		v := m.grid.Comments()
		page, total, matched, all = v.Page, v.TotalPages, v.Matched, v.Total
	}
	return fmt.Sprintf("Page %d of %d  (%d of %d)", page, total, matched, all)
}

// Run starts the browser on the terminal and blocks until it exits.
func Run(ctx context.Context, grid *state.Grid, fetcher state.Fetcher) error {
	_, err := tea.NewProgram(New(ctx, grid, fetcher), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}
