// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui provides the terminal user interface for Passkeep.
// This file, tui.go, holds the top-level model: it owns the explicit
// application state, routes key presses to the focused pane and performs
// the side effects (regeneration, clipboard, persistence) each action asks for.
package tui // import "github.com/toeirei/passkeep/internal/tui"

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/passkeep/internal/clipboard"
	"github.com/toeirei/passkeep/internal/generator"
	"github.com/toeirei/passkeep/internal/logging"
	"github.com/toeirei/passkeep/internal/state"
	"github.com/toeirei/passkeep/internal/vault"
)

// focusArea represents which part of the UI receives key presses.
type focusArea int

const (
	focusGenerator focusArea = iota
	focusForm
	focusList
	focusCount
)

// Deps are the collaborators the TUI runs against.
type Deps struct {
	Vault     *vault.Vault
	Generator *generator.Generator
	Clipboard clipboard.Sink
	// State seeds the initial options, bounds and copy behaviour.
	State state.State
	// LogFile receives log output while the program runs. Empty discards it.
	LogFile string
}

// mainModel is the top-level model for the TUI.
type mainModel struct {
	ctx    context.Context
	st     state.State
	gen    *generator.Generator
	vault  *vault.Vault
	sink   clipboard.Sink
	focus  focusArea
	form   saveForm
	cursor int  // selected entry in the saved list
	reveal bool // show saved values in clear text
	width  int
	height int
	err    error
}

func newModel(ctx context.Context, d Deps) mainModel {
	sink := d.Clipboard
	if sink == nil {
		sink = clipboard.Discard
	}
	st := d.State
	if st.Password == "" {
		st = st.Regenerate(d.Generator)
	}
	return mainModel{
		ctx:   ctx,
		st:    st,
		gen:   d.Generator,
		vault: d.Vault,
		sink:  sink,
		form:  newSaveForm(),
	}
}

// Init is the first function that will be called by the Bubble Tea runtime.
func (m mainModel) Init() tea.Cmd {
	return nil
}

// Update handles global keys, then delegates to the focused pane.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			return m.setFocus((m.focus + 1) % focusCount), nil
		case "shift+tab":
			return m.setFocus((m.focus + focusCount - 1) % focusCount), nil
		}
		m.st = m.st.ClearNotice()
		m.err = nil

		switch m.focus {
		case focusForm:
			return m.updateForm(msg)
		case focusList:
			return m.updateList(msg)
		default:
			return m.updateGenerator(msg)
		}
	}
	return m, nil
}

func (m mainModel) setFocus(f focusArea) mainModel {
	m.focus = f
	if f == focusForm {
		m.form = m.form.focus()
	} else {
		m.form = m.form.blur()
	}
	return m
}

// updateGenerator handles keys while the generator pane is focused.
func (m mainModel) updateGenerator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var changed bool
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "-", "h":
		m.st, changed = m.st.DecLength()
	case "right", "+", "=", "l":
		m.st, changed = m.st.IncLength()
	case "n":
		m.st, changed = m.st.ToggleNumbers()
	case "s":
		m.st, changed = m.st.ToggleSymbols()
	case "r":
		m.st = m.st.Regenerate(m.gen)
	case "c":
		m.st = m.st.CopyPassword(m.sink)
		m.form = m.form.setValues(m.st.Label, m.st.Value)
	}
	m.st = m.st.RegenerateIf(m.gen, changed)
	return m, nil
}

// updateForm handles keys while the label/value inputs are focused.
func (m mainModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.setFocus(focusGenerator), nil
	case "up", "down":
		m.form = m.form.next()
		return m, nil
	case "enter":
		return m.save(), nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	m.st = m.st.SetLabel(m.form.label()).SetValue(m.form.value())
	return m, cmd
}

func (m mainModel) save() mainModel {
	if m.vault == nil {
		return m
	}
	var err error
	m.st, _, err = m.st.SaveEntry(m.ctx, m.vault)
	if err != nil && !errors.Is(err, vault.ErrEmptyLabel) && !errors.Is(err, vault.ErrEmptyValue) {
		logging.Warnf("saving entry: %v", err)
	}
	if err == nil || errors.Is(err, vault.ErrPersist) {
		m.form = m.form.setValues(m.st.Label, m.st.Value).reset()
		m.cursor = m.vault.Len() - 1
	}
	return m
}

// updateList handles keys while the saved list is focused.
func (m mainModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := 0
	if m.vault != nil {
		n = m.vault.Len()
	}
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		return m.setFocus(focusGenerator), nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < n-1 {
			m.cursor++
		}
	case "v":
		m.reveal = !m.reveal
	case "y", "Y":
		if n == 0 {
			return m, nil
		}
		e, err := m.vault.Get(m.cursor)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.st = m.st.CopyEntry(m.sink, e, msg.String() == "Y")
	}
	return m, nil
}

// Run starts the TUI and blocks until the user quits. Log output is
// redirected to d.LogFile for the lifetime of the program so it does not
// corrupt the screen.
func Run(ctx context.Context, d Deps) error {
	restore, err := logging.ToFile(d.LogFile)
	if err != nil {
		return err
	}
	defer restore()

	p := tea.NewProgram(newModel(ctx, d), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		logging.Errorf("TUI run error: %v", err)
		return err
	}
	return nil
}
