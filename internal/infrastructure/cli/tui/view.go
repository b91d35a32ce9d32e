package tui

import (
	"strings"

	"github.com/doeshing/autopilot-go/internal/domain"
	"github.com/doeshing/autopilot-go/internal/infrastructure/cli/present"
)

const appTitle = "Autopilot"

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(appTitle))
	b.WriteString("  ")
	b.WriteString(m.modeTabs())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if m.lastError != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.ErrorBanner.Render("Error: " + m.lastError))
		b.WriteString("\n")
	}

	if m.view != nil {
		b.WriteString("\n")
		b.WriteString(present.Header(m.styles, *m.view))
		b.WriteString("\n")
		b.WriteString(m.resultTabs())
		b.WriteString("\n\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(m.help()))
	return b.String()
}

func (m Model) modeTabs() string {
	active := m.mode()
	parts := make([]string, 0, len(domain.Modes))
	for _, mode := range domain.Modes {
		style := m.styles.Tab
		if mode == active {
			style = m.styles.ActiveTab
		}
		parts = append(parts, style.Render(mode.DisplayName()))
	}
	return strings.Join(parts, " ")
}

func (m Model) resultTabs() string {
	parts := make([]string, 0, len(m.view.Tabs))
	for i, tab := range m.view.Tabs {
		style := m.styles.Tab
		if i == m.activeTab {
			style = m.styles.ActiveTab
		}
		parts = append(parts, style.Render(tab.Label))
	}
	return strings.Join(parts, " ")
}

func (m Model) statusLine() string {
	if m.submitting {
		return m.spinner.View() + " Processing..."
	}
	if m.notice != "" {
		return m.styles.Muted.Render(m.notice)
	}
	if strings.TrimSpace(m.input.Value()) == "" {
		return m.styles.Muted.Render("Type a command to enable Execute")
	}
	return m.styles.Muted.Render("enter: Execute")
}

func (m Model) help() string {
	parts := []string{"ctrl+t: switch mode", "enter/ctrl+s: execute", "alt+enter: newline"}
	if m.view != nil {
		parts = append(parts, "tab/shift+tab: result tabs", "esc: focus results/input", "ctrl+y: copy JSON")
		if m.focus == focusResult {
			parts = append(parts, "up/down: select step", "enter/space: expand", "pgup/pgdown: scroll")
		}
	}
	parts = append(parts, "ctrl+c: quit")
	return strings.Join(parts, " | ")
}
