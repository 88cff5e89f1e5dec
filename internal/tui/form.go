// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/passkeep/internal/i18n"
)

// saveForm holds the label and value inputs of the saved pane.
type saveForm struct {
	focusIndex int
	focused    bool
	inputs     []textinput.Model // 0: label, 1: value
}

func newSaveForm() saveForm {
	f := saveForm{inputs: make([]textinput.Model, 2)}

	var t textinput.Model
	for i := range f.inputs {
		t = textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 0 // no limit
		t.Width = 28

		switch i {
		case 0:
			t.Prompt = i18n.T("tui.form.label") + " "
			t.Placeholder = i18n.T("tui.form.label_placeholder")
		case 1:
			t.Prompt = i18n.T("tui.form.value") + " "
			t.Placeholder = i18n.T("tui.form.value_placeholder")
		}
		f.inputs[i] = t
	}
	return f
}

func (f saveForm) focus() saveForm {
	f.focused = true
	for i := range f.inputs {
		if i == f.focusIndex {
			f.inputs[i].Focus()
			f.inputs[i].TextStyle = focusedStyle
		} else {
			f.inputs[i].Blur()
			f.inputs[i].TextStyle = itemStyle
		}
	}
	return f
}

func (f saveForm) blur() saveForm {
	f.focused = false
	for i := range f.inputs {
		f.inputs[i].Blur()
		f.inputs[i].TextStyle = itemStyle
	}
	return f
}

// next moves focus to the other input.
func (f saveForm) next() saveForm {
	f.focusIndex = (f.focusIndex + 1) % len(f.inputs)
	if f.focused {
		return f.focus()
	}
	return f
}

// reset puts focus back on the label input.
func (f saveForm) reset() saveForm {
	f.focusIndex = 0
	if f.focused {
		return f.focus()
	}
	return f
}

func (f saveForm) setValues(label, value string) saveForm {
	f.inputs[0].SetValue(label)
	f.inputs[1].SetValue(value)
	return f
}

func (f saveForm) label() string { return f.inputs[0].Value() }
func (f saveForm) value() string { return f.inputs[1].Value() }

func (f saveForm) update(msg tea.Msg) (saveForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focusIndex], cmd = f.inputs[f.focusIndex].Update(msg)
	return f, cmd
}

func (f saveForm) view() string {
	return f.inputs[0].View() + "\n" + f.inputs[1].View()
}
