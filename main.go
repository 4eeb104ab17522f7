// chrono-tui - time and date picker widgets for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/jeranaias/chrono-tui/internal/chrono"
	"github.com/jeranaias/chrono-tui/internal/config"
	"github.com/jeranaias/chrono-tui/internal/ui/datepicker"
	"github.com/jeranaias/chrono-tui/internal/ui/styles"
	"github.com/jeranaias/chrono-tui/internal/ui/timepicker"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("chrono-tui %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "chrono-tui requires an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load config, using defaults: %v\n", err)
		cfg = config.Default()
	}

	// Live reload is best effort: the demo works without the watcher.
	var watcher *config.Watcher
	if path, perr := config.Path(); perr == nil {
		if w, werr := config.NewWatcher(path, time.Second); werr == nil {
			watcher = w
			defer watcher.Close()
		}
	}

	m := NewModel(styles.NewTheme(), cfg, watcher)

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running chrono-tui: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// Focus identifies which inline field receives typed input.
type Focus int

const (
	FocusTime Focus = iota
	FocusDate
)

// configReloadedMsg delivers a live config reload from the watcher.
type configReloadedMsg struct {
	cfg *config.Config
}

// Model is the demo host: two picker fields, a committed-value panel,
// and a help overlay.
type Model struct {
	theme   *styles.Theme
	cfg     *config.Config
	watcher *config.Watcher

	timeField timepicker.Model
	dateField datepicker.Model
	focus     Focus

	showHelp bool

	width  int
	height int
}

// NewModel creates the demo host model.
func NewModel(theme *styles.Theme, cfg *config.Config, watcher *config.Watcher) Model {
	timeField := timepicker.New(timepicker.Config{
		Theme:         theme,
		Label:         cfg.TimePicker.Label,
		DefaultPeriod: cfg.DefaultPeriod(),
	})
	dateField := datepicker.New(datepicker.Config{
		Theme:   theme,
		Label:   cfg.DatePicker.Label,
		MinYear: cfg.DatePicker.MinYear,
		MaxYear: cfg.DatePicker.MaxYear,
	})

	m := Model{
		theme:     theme,
		cfg:       cfg,
		watcher:   watcher,
		timeField: timeField,
		dateField: dateField,
	}
	return m.layoutFields()
}

// waitForReload re-arms the watcher channel read.
func (m Model) waitForReload() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		cfg, ok := <-w.Reloads()
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	var cmd tea.Cmd
	m.timeField, cmd = m.timeField.Focus()
	return tea.Batch(cmd, m.waitForReload())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)

	case configReloadedMsg:
		m.cfg = msg.cfg
		m.dateField = m.dateField.SetYearBounds(msg.cfg.DatePicker.MinYear, msg.cfg.DatePicker.MaxYear)
		return m, m.waitForReload()

	case tea.KeyMsg:
		// Quit works everywhere, even under the help overlay.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch msg.String() {
		case "f1":
			m.showHelp = true
			return m, nil

		case "tab":
			if !m.dialogOpen() {
				return m.switchFocus()
			}
		}
	}

	var cmd tea.Cmd
	m.timeField, cmd = m.timeField.Update(msg)
	cmds = append(cmds, cmd)
	m.dateField, cmd = m.dateField.Update(msg)
	cmds = append(cmds, cmd)

	// A dialog opened by a mouse press pulls typing focus to its field.
	if m.timeField.IsOpen() && m.focus != FocusTime {
		m.focus = FocusTime
		m.dateField = m.dateField.Blur()
		m.timeField, cmd = m.timeField.Focus()
		cmds = append(cmds, cmd)
	}
	if m.dateField.IsOpen() && m.focus != FocusDate {
		m.focus = FocusDate
		m.timeField = m.timeField.Blur()
		m.dateField, cmd = m.dateField.Focus()
		cmds = append(cmds, cmd)
	}

	return m.layoutFields(), tea.Batch(cmds...)
}

// layoutFields tells each picker where its inline field sits so presses
// on a field can open its dialog. The measurements mirror View's layout:
// container padding, header, and a blank line between sections.
func (m Model) layoutFields() Model {
	fieldX := 1
	timeY := lipgloss.Height(m.theme.Header.Render("chrono-tui")) + 1
	dateY := timeY + lipgloss.Height(m.timeField.View()) + 1
	m.timeField = m.timeField.SetFieldOrigin(fieldX, timeY)
	m.dateField = m.dateField.SetFieldOrigin(fieldX, dateY)
	return m
}

// dialogOpen reports whether either picker dialog is showing.
func (m Model) dialogOpen() bool {
	return m.timeField.IsOpen() || m.dateField.IsOpen()
}

// switchFocus moves typed input between the two fields.
func (m Model) switchFocus() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == FocusTime {
		m.focus = FocusDate
		m.timeField = m.timeField.Blur()
		m.dateField, cmd = m.dateField.Focus()
	} else {
		m.focus = FocusTime
		m.dateField = m.dateField.Blur()
		m.timeField, cmd = m.timeField.Focus()
	}
	return m, cmd
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model. Open dialogs and the help screen render as
// full layers above the normal flow.
func (m Model) View() string {
	if m.showHelp {
		return m.helpView()
	}
	if m.timeField.IsOpen() {
		return m.timeField.Overlay()
	}
	if m.dateField.IsOpen() {
		return m.dateField.Overlay()
	}

	header := m.theme.Header.Render("chrono-tui")

	fields := lipgloss.JoinVertical(
		lipgloss.Left,
		m.timeField.View(),
		"",
		m.dateField.View(),
	)

	sections := []string{
		header,
		"",
		fields,
		"",
		m.valuePanel(),
		"",
		m.statusBar(),
	}

	return m.theme.Container.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// valuePanel shows the host-owned committed values.
func (m Model) valuePanel() string {
	timeText := m.theme.ValueEmpty.Render("not set")
	if t, ok := m.timeField.Value(); ok {
		timeText = m.theme.Value.Render(chrono.FormatTime(t))
	}

	dateText := m.theme.ValueEmpty.Render("not set")
	if d, ok := m.dateField.Value(); ok {
		dateText = m.theme.Value.Render(chrono.FormatDate(d))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.ValueLabel.Render("Committed time: ")+timeText,
		m.theme.ValueLabel.Render("Committed date: ")+dateText,
	)
}

// statusBar renders the shortcut hints.
func (m Model) statusBar() string {
	hints := []struct{ key, desc string }{
		{"tab", "switch field"},
		{"enter", "open dialog"},
		{"f1", "help"},
		{"ctrl+c", "quit"},
	}

	bar := ""
	for i, h := range hints {
		if i > 0 {
			bar += "  "
		}
		bar += m.theme.ShortcutKey.Render(h.key) + " " + m.theme.ShortcutDesc.Render(h.desc)
	}
	return m.theme.StatusBar.Render(bar)
}

// helpMarkdown is the help overlay content.
const helpMarkdown = `# chrono-tui

Two picker widgets: a **time picker** and a **date picker**.

## Fields

- Type directly into a field. A fully valid value commits immediately.
- ` + "`tab`" + ` switches between the two fields.
- ` + "`enter`" + ` or a click on a field opens its dialog.

## Time dialog

- Click or drag on the clock face to pick a value.
- Releasing on the hours face sweeps the hand over to minutes.
- ` + "`tab`" + ` switches face, ` + "`a`" + `/` + "`p`" + ` set the period.
- ` + "`n`" + ` jumps to the current time.
- ` + "`enter`" + ` confirms, ` + "`esc`" + ` cancels. The OK and Cancel
  buttons do the same on click.

## Date dialog

- Arrow keys move the day, ` + "`n`" + `/` + "`b`" + ` change the month.
- ` + "`y`" + ` toggles the year list, ` + "`t`" + ` jumps to today.
- ` + "`enter`" + ` confirms, ` + "`esc`" + ` cancels.

## Config

Settings live in ` + "`~/.chrono/config.toml`" + ` and reload live on save.
`

// helpView renders the markdown help centered on screen, falling back
// to the raw markdown if the terminal renderer fails.
func (m Model) helpView() string {
	content := helpMarkdown

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(64),
	)
	if err == nil {
		if rendered, rerr := r.Render(helpMarkdown); rerr == nil {
			content = rendered
		}
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
