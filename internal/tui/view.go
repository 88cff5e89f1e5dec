// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/passkeep/internal/i18n"
	"github.com/toeirei/passkeep/internal/state"
)

// View renders both panes side by side with the help line and notice below.
func (m mainModel) View() string {
	title := mainTitleStyle.Render("🔐 " + i18n.T("tui.title"))

	gen, saved := paneStyle, paneStyle
	switch m.focus {
	case focusGenerator:
		gen = focusedPaneStyle
	default:
		saved = focusedPaneStyle
	}
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		gen.Render(m.generatorView()),
		saved.Render(m.savedView()),
	)

	var b strings.Builder
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, title, panes))
	b.WriteString("\n")
	if status := m.statusView(); status != "" {
		b.WriteString(status + "\n")
	}
	b.WriteString(helpStyle.Render(m.helpText()))
	return docStyle.Render(b.String())
}

func (m mainModel) generatorView() string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render(i18n.T("tui.generator.title")) + "\n\n")
	b.WriteString(passwordStyle.Render(m.st.Password) + "\n\n")
	b.WriteString(i18n.T("tui.generator.length", m.st.Options.Length))
	b.WriteString(helpStyle.Render(fmt.Sprintf("  (%d-%d)", m.st.Bounds.Min, m.st.Bounds.Max)) + "\n")
	b.WriteString(flagView(i18n.T("tui.generator.numbers"), m.st.Options.Numbers) + "\n")
	b.WriteString(flagView(i18n.T("tui.generator.symbols"), m.st.Options.Symbols))
	return b.String()
}

func flagView(name string, on bool) string {
	if on {
		return name + ": " + flagOnStyle.Render(i18n.T("tui.on"))
	}
	return name + ": " + flagOffStyle.Render(i18n.T("tui.off"))
}

func (m mainModel) savedView() string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render(i18n.T("tui.saved.title")) + "\n\n")
	b.WriteString(m.form.view() + "\n\n")

	if m.vault == nil || m.vault.Len() == 0 {
		b.WriteString(helpStyle.Render(i18n.T("tui.saved.empty")))
		return b.String()
	}
	entries := m.vault.Entries()
	start, end := listWindow(len(entries), m.cursor, m.listRows())
	for i := start; i < end; i++ {
		e := entries[i]
		value := e.Masked()
		if m.reveal {
			value = e.Value
		}
		line := fmt.Sprintf("%s %s  %s", indexStyle.Render(fmt.Sprintf("#%d", i)), e.Label, value)
		if m.focus == focusList && i == m.cursor {
			b.WriteString(selectedItemStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(itemStyle.Render("  "+line) + "\n")
		}
	}
	if start > 0 || end < len(entries) {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  %d-%d / %d", start, end-1, len(entries))))
	}
	return strings.TrimRight(b.String(), "\n")
}

// savedChrome is the number of terminal lines the layout uses around the
// saved list: title, pane borders and padding, pane title, form, status and
// help lines.
const savedChrome = 14

// listRows returns how many saved entries fit on screen. Zero means the
// terminal size is unknown and every entry is drawn.
func (m mainModel) listRows() int {
	if m.height <= 0 {
		return 0
	}
	return max(m.height-savedChrome, 1)
}

// listWindow returns the half-open range [start, end) of n rows to draw so
// that cursor stays visible. rows <= 0 draws everything.
func listWindow(n, cursor, rows int) (start, end int) {
	if rows <= 0 || n <= rows {
		return 0, n
	}
	start = min(max(cursor-rows/2, 0), n-rows)
	return start, start + rows
}

func (m mainModel) statusView() string {
	if m.err != nil {
		return errorStyle.Render(i18n.T("tui.error", m.err))
	}
	switch m.st.Notice.Kind {
	case state.NoticeInfo:
		return successStyle.Render(i18n.T(m.st.Notice.ID))
	case state.NoticeError:
		return errorStyle.Render(i18n.T(m.st.Notice.ID))
	}
	return ""
}

func (m mainModel) helpText() string {
	switch m.focus {
	case focusForm:
		return i18n.T("tui.help.form")
	case focusList:
		return i18n.T("tui.help.list")
	default:
		return i18n.T("tui.help.generator")
	}
}
