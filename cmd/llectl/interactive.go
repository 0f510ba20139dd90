package main

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vitakit/sysmodule"
	"github.com/vitakit/sysmodule/catalog"
	"github.com/vitakit/sysmodule/config"
	"github.com/vitakit/sysmodule/policy"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#005CB8")).
			Padding(0, 1)

	moduleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	lleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	hleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#005CB8"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type moduleRow struct {
	id    catalog.ModuleID
	name  string
	paths []string
}

type settingsModel struct {
	err        error
	cfg        *config.Config
	resolver   *policy.Resolver
	configPath string
	status     string
	rows       []moduleRow
	filter     textinput.Model
	selected   int
	filtering  bool
	dirty      bool
}

type configLoadedMsg struct {
	err  error
	cfg  *config.Config
	path string
}

type savedMsg struct {
	err  error
	path string
}

func newSettingsModel(configPath string) *settingsModel {
	filter := textinput.New()
	filter.Placeholder = "filter modules"
	filter.Prompt = "/ "
	filter.Width = 30

	return &settingsModel{
		configPath: configPath,
		resolver:   policy.NewResolver(nil),
		filter:     filter,
	}
}

func (m *settingsModel) Init() tea.Cmd {
	return m.loadConfig
}

func (m *settingsModel) loadConfig() tea.Msg {
	ctx := context.Background()

	cfg, err := config.NewProvider().Load(ctx, config.LoadOptions{ConfigFilePath: m.configPath})
	if err != nil {
		return configLoadedMsg{err: err}
	}

	path := m.configPath
	if path == "" {
		dir, err := config.ConfigDir()
		if err != nil {
			return configLoadedMsg{err: err}
		}
		path = filepath.Join(dir, config.ConfigFileName)
	}

	return configLoadedMsg{cfg: cfg, path: path}
}

func (m *settingsModel) saveConfig() tea.Msg {
	if err := config.Save(m.cfg, m.configPath); err != nil {
		return savedMsg{err: err}
	}
	return savedMsg{path: m.configPath}
}

// buildRows lists every module with a known firmware binary; only those
// can ever be selected for LLE. User-selected modules sort first, then by
// name, the same order the emulator's settings dialog shows.
func (m *settingsModel) buildRows() {
	m.rows = m.rows[:0]
	for _, id := range catalog.All() {
		paths := catalog.Paths(id)
		if len(paths) == 0 {
			continue
		}
		m.rows = append(m.rows, moduleRow{id: id, name: catalog.Name(id), paths: paths})
	}

	sort.SliceStable(m.rows, func(i, j int) bool {
		si, sj := m.rowSelected(m.rows[i]), m.rowSelected(m.rows[j])
		if si == sj {
			return m.rows[i].name < m.rows[j].name
		}
		return si
	})

	if len(m.rows) == 0 {
		m.selected = 0
	} else if m.selected >= len(m.rows) {
		m.selected = len(m.rows) - 1
	}
}

// rowSelected reports whether every path of the module is on the user list.
func (m *settingsModel) rowSelected(r moduleRow) bool {
	for _, p := range r.paths {
		if !m.cfg.HasLLEPath(p) {
			return false
		}
	}
	return true
}

// toggleRow flips the module's membership in the user LLE list: removes
// all of its paths if any are present, adds all of them otherwise.
func (m *settingsModel) toggleRow(r moduleRow) {
	present := false
	for _, p := range r.paths {
		if m.cfg.HasLLEPath(p) {
			present = true
			break
		}
	}
	for _, p := range r.paths {
		if present {
			if m.cfg.HasLLEPath(p) {
				m.cfg.ToggleLLEPath(p)
			}
		} else if !m.cfg.HasLLEPath(p) {
			m.cfg.ToggleLLEPath(p)
		}
	}
	m.dirty = true
}

func (m *settingsModel) visibleRows() []moduleRow {
	query := strings.TrimSpace(m.filter.Value())
	if query == "" {
		return m.rows
	}
	var out []moduleRow
	for _, r := range m.rows {
		if strings.Contains(r.name, query) {
			out = append(out, r)
		}
	}
	return out
}

func (m *settingsModel) cycleMode() {
	switch m.cfg.CurrentMode() {
	case sysmodule.ModeAutomatic:
		m.cfg.ModulesMode = sysmodule.ModeManual
	case sysmodule.ModeManual:
		m.cfg.ModulesMode = sysmodule.ModeAutoManual
	default:
		m.cfg.ModulesMode = sysmodule.ModeAutomatic
	}
	m.dirty = true
}

func (m *settingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter", "esc":
				m.filtering = false
				m.filter.Blur()
				m.selected = 0
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.selected < len(m.visibleRows())-1 {
				m.selected++
			}

		case " ", "enter":
			rows := m.visibleRows()
			if m.selected < len(rows) {
				m.toggleRow(rows[m.selected])
				m.status = ""
			}

		case "m":
			m.cycleMode()
			m.status = ""

		case "c":
			m.cfg.ClearLLE()
			m.dirty = true
			m.status = "user LLE list cleared"

		case "r":
			m.buildRows()
			m.status = ""

		case "/":
			m.filtering = true
			m.filter.Focus()

		case "s":
			return m, m.saveConfig
		}

	case configLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.cfg = msg.cfg
		m.configPath = msg.path
		m.buildRows()

	case savedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("save failed: %v", msg.err))
		} else {
			m.dirty = false
			m.status = statusStyle.Render("saved " + msg.path)
		}
	}

	return m, nil
}

func (m *settingsModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.cfg == nil {
		return "Loading configuration..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("LLE Modules"))
	b.WriteString(" ")
	b.WriteString(m.configPath)
	if m.dirty {
		b.WriteString(" *")
	}
	b.WriteString("\n\n")

	b.WriteString("Mode: ")
	b.WriteString(lleStyle.Render(string(m.cfg.CurrentMode())))
	b.WriteString("\n\n")

	rows := m.visibleRows()
	if len(rows) == 0 {
		b.WriteString(hleStyle.Render("No modules match."))
		b.WriteString("\n")
	}
	for i, r := range rows {
		mark := "[ ]"
		if m.rowSelected(r) {
			mark = "[x]"
		}

		d := m.resolver.Resolve(r.id, m.cfg)
		badge := hleStyle.Render("HLE")
		if d.LLE {
			badge = lleStyle.Render("LLE " + d.Rule.String())
		}

		line := fmt.Sprintf("%s %-20s %s", mark, r.name, badge)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.filtering {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	} else if m.filter.Value() != "" {
		b.WriteString(helpStyle.Render("filter: " + m.filter.Value()))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ select • space toggle • m mode • c clear • / filter • s save • q quit"))

	return b.String()
}

func runInteractive(configPath string) error {
	p := tea.NewProgram(newSettingsModel(configPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
