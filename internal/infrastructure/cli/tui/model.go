// Package tui is the interactive autopilot session: a command box, a mode
// switch, and a result card with tabs and a collapsible step list.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/doeshing/autopilot-go/internal/application/render"
	"github.com/doeshing/autopilot-go/internal/application/submission"
	"github.com/doeshing/autopilot-go/internal/domain"
	"github.com/doeshing/autopilot-go/internal/infrastructure/cli/present"
	"github.com/doeshing/autopilot-go/internal/ports"
)

const (
	inputHeight    = 3
	defaultWidth   = 80
	defaultHeight  = 24
	chromeHeight   = 12
	minViewportRow = 3
)

type focusArea int

const (
	focusInput focusArea = iota
	focusResult
)

// Options configure the session.
type Options struct {
	Styles present.Styles
	Images present.ImageOptions
	// Clipboard receives the raw JSON on ctrl+y. Nil disables copying.
	Clipboard ports.Clipboard
}

type submittedMsg struct {
	err error
}

// Model is the bubbletea model for the session.
type Model struct {
	ctx        context.Context
	controller *submission.Controller
	styles     present.Styles
	images     present.ImageOptions
	clipboard  ports.Clipboard

	input    textarea.Model
	spinner  spinner.Model
	viewport viewport.Model

	focus      focusArea
	submitting bool
	lastError  string
	notice     string

	view      *render.View
	activeTab int
	selected  int
	openSteps map[int]bool

	width  int
	height int
}

// New builds the session model around controller.
func New(ctx context.Context, controller *submission.Controller, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	input := textarea.New()
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.SetHeight(inputHeight)
	input.SetWidth(defaultWidth - 4)
	input.KeyMap.InsertNewline.SetKeys("alt+enter")
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = opts.Styles.Selected

	m := Model{
		ctx:        ctx,
		controller: controller,
		styles:     opts.Styles,
		images:     opts.Images,
		clipboard:  opts.Clipboard,
		input:      input,
		spinner:    sp,
		viewport:   viewport.New(defaultWidth, defaultHeight-chromeHeight),
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.input.Placeholder = m.mode().Placeholder()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) mode() domain.Mode {
	return m.controller.Snapshot().ActiveMode
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case submittedMsg:
		if errors.Is(msg.err, domain.ErrSubmissionInFlight) {
			return m, nil
		}
		m.submitting = false
		m.applySnapshot()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+t":
		m.toggleMode()
		return m, nil
	case "ctrl+s":
		return m.submit()
	case "ctrl+y":
		m.copyRaw()
		return m, nil
	case "tab":
		m.cycleTab(1)
		return m, nil
	case "shift+tab":
		m.cycleTab(-1)
		return m, nil
	case "esc":
		m.toggleFocus()
		return m, nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.focus == focusResult {
		return m.handleResultKey(msg)
	}

	if msg.Type == tea.KeyEnter {
		return m.submit()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.currentTab() != render.TabSteps || m.view == nil || m.view.Steps == nil {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	rows := len(m.view.Steps.Rows)
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < rows-1 {
			m.selected++
		}
	case "enter", " ":
		m.toggleStep(m.selected)
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	m.refreshContent(false)
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	command := m.input.Value()
	if m.submitting || !m.controller.CanSubmit(command) {
		return m, nil
	}
	mode := m.mode()

	m.submitting = true
	m.lastError = ""
	m.notice = ""
	m.view = nil
	m.viewport.SetContent("")

	controller, ctx := m.controller, m.ctx
	submit := func() tea.Msg {
		return submittedMsg{err: controller.Submit(ctx, command, mode)}
	}
	return m, tea.Batch(m.spinner.Tick, submit)
}

// applySnapshot copies the controller outcome into the card. The view is
// rendered with the mode that produced the result.
func (m *Model) applySnapshot() {
	state := m.controller.Snapshot()
	m.lastError = state.LastError
	m.activeTab = 0
	m.selected = 0
	m.openSteps = nil
	if state.LastResult == nil {
		m.view = nil
		m.viewport.SetContent("")
		return
	}
	view := render.Render(*state.LastResult, state.ResultMode)
	m.view = &view
	m.focus = focusResult
	m.input.Blur()
	m.refreshContent(true)
}

func (m *Model) copyRaw() {
	if m.view == nil || m.clipboard == nil {
		return
	}
	if err := m.clipboard.Copy(m.view.Raw); err != nil {
		m.notice = err.Error()
		return
	}
	m.notice = "Raw JSON copied to clipboard"
}

func (m *Model) toggleMode() {
	next := domain.ModeExtract
	if m.mode() == domain.ModeExtract {
		next = domain.ModeInteract
	}
	m.controller.SetMode(next)
	m.input.Placeholder = next.Placeholder()
}

func (m *Model) toggleFocus() {
	if m.focus == focusInput && m.view != nil {
		m.focus = focusResult
		m.input.Blur()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

func (m *Model) cycleTab(delta int) {
	if m.view == nil || len(m.view.Tabs) == 0 {
		return
	}
	n := len(m.view.Tabs)
	m.activeTab = (m.activeTab + delta + n) % n
	m.refreshContent(true)
}

// toggleStep expands or collapses one step. Other steps keep their state.
func (m *Model) toggleStep(index int) {
	if m.openSteps[index] {
		delete(m.openSteps, index)
		return
	}
	if m.openSteps == nil {
		m.openSteps = make(map[int]bool)
	}
	m.openSteps[index] = true
}

func (m Model) currentTab() render.TabID {
	if m.view == nil || len(m.view.Tabs) == 0 {
		return ""
	}
	return m.view.Tabs[m.activeTab].ID
}

func (m *Model) refreshContent(top bool) {
	if m.view == nil {
		m.viewport.SetContent("")
		return
	}
	open := m.openSteps
	expanded := func(i int) bool { return open[i] }
	selected := -1
	if m.focus == focusResult {
		selected = m.selected
	}

	var content string
	if m.currentTab() == render.TabSteps && m.view.Steps != nil {
		content = present.StepsText(m.styles, *m.view.Steps, expanded, selected, m.images)
	} else {
		content = present.TabText(m.styles, *m.view, m.currentTab(), expanded, m.images)
	}
	m.viewport.SetContent(lipgloss.NewStyle().Width(m.viewport.Width).Render(strings.TrimRight(content, "\n")))
	if top {
		m.viewport.GotoTop()
	}
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width, m.height = width, height
	m.input.SetWidth(max(width-4, 20))
	m.viewport.Width = width
	m.viewport.Height = max(height-chromeHeight, minViewportRow)
	m.refreshContent(false)
}
