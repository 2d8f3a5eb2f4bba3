package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fieldKind controls how a form row is edited and rendered
type fieldKind int

const (
	fieldText   fieldKind = iota // free text
	fieldNumber                  // text input parsed with strconv
	fieldChoice                  // cycles through options with left/right
	fieldToggle                  // flips with space
)

const labelWidth = 30

type formField struct {
	key   string
	label string
	kind  fieldKind
	input textinput.Model

	options []string
	choice  int

	on bool
}

// form is a vertical list of labelled inputs with a single focused row
type form struct {
	fields []formField
	focus  int
}

func newTextField(key, label, value, placeholder string) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 60
	ti.Width = 30
	ti.Prompt = ""
	ti.SetValue(value)
	return formField{key: key, label: label, kind: fieldText, input: ti}
}

func newNumberField(key, label string, value float64) formField {
	f := newTextField(key, label, formatNumber(value), "")
	f.kind = fieldNumber
	f.input.CharLimit = 10
	f.input.Width = 12
	return f
}

func newChoiceField(key, label string, options []string, selected string) formField {
	f := formField{key: key, label: label, kind: fieldChoice, options: options}
	for i, o := range options {
		if o == selected {
			f.choice = i
		}
	}
	return f
}

func newToggleField(key, label string, on bool) formField {
	return formField{key: key, label: label, kind: fieldToggle, on: on}
}

func newForm(fields ...formField) form {
	f := form{fields: fields}
	f.setFocus(0)
	return f
}

func (f *form) setFocus(i int) {
	n := len(f.fields)
	if n == 0 {
		return
	}
	f.focus = (i%n + n) % n
	for idx := range f.fields {
		if k := f.fields[idx].kind; k != fieldText && k != fieldNumber {
			continue
		}
		if idx == f.focus {
			f.fields[idx].input.Focus()
		} else {
			f.fields[idx].input.Blur()
		}
	}
}

func (f form) focused() *formField {
	if len(f.fields) == 0 {
		return nil
	}
	return &f.fields[f.focus]
}

// Update handles navigation and editing keys for the focused row
func (f form) Update(msg tea.KeyMsg) (form, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return f, textinput.Blink
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return f, textinput.Blink
	}

	field := f.focused()
	if field == nil {
		return f, nil
	}

	switch field.kind {
	case fieldChoice:
		switch msg.String() {
		case "right":
			field.choice = (field.choice + 1) % len(field.options)
		case "left":
			field.choice = (field.choice - 1 + len(field.options)) % len(field.options)
		}
		return f, nil

	case fieldToggle:
		if msg.Type == tea.KeySpace {
			field.on = !field.on
		}
		return f, nil
	}

	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)
	return f, cmd
}

func (f form) field(key string) *formField {
	for i := range f.fields {
		if f.fields[i].key == key {
			return &f.fields[i]
		}
	}
	return nil
}

// text returns the raw value of a text or number row
func (f form) text(key string) string {
	if field := f.field(key); field != nil {
		return field.input.Value()
	}
	return ""
}

func (f form) setText(key, value string) {
	if field := f.field(key); field != nil {
		field.input.SetValue(value)
	}
}

func (f form) setNumber(key string, v float64) {
	f.setText(key, formatNumber(v))
}

func (f form) selected(key string) string {
	if field := f.field(key); field != nil && len(field.options) > 0 {
		return field.options[field.choice]
	}
	return ""
}

func (f form) toggled(key string) bool {
	if field := f.field(key); field != nil {
		return field.on
	}
	return false
}

// number parses a numeric row. On failure it returns fallback and an error
// naming the row.
func (f form) number(key string, fallback float64) (float64, error) {
	field := f.field(key)
	if field == nil {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(field.input.Value()), 64)
	if err != nil {
		return fallback, fmt.Errorf("%s needs a number", field.label)
	}
	return v, nil
}

// wholeNumber is number for rows that only accept integers
func (f form) wholeNumber(key string, fallback int) (int, error) {
	field := f.field(key)
	if field == nil {
		return fallback, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(field.input.Value()))
	if err != nil {
		return fallback, fmt.Errorf("%s needs a whole number", field.label)
	}
	return v, nil
}

// View renders every row, marking the focused one
func (f form) View() string {
	rows := make([]string, 0, len(f.fields))
	for i, field := range f.fields {
		isFocused := i == f.focus

		marker := "  "
		label := labelStyle.Width(labelWidth).Render(field.label)
		if isFocused {
			marker = focusMarkerStyle.Render("› ")
			label = focusedLabelStyle.Width(labelWidth).Render(field.label)
		}

		var value string
		switch field.kind {
		case fieldChoice:
			value = field.options[field.choice]
			if isFocused {
				value = "‹ " + value + " ›"
			}
			value = valueStyle.Render(value)
		case fieldToggle:
			if field.on {
				value = successStyle.Render("[x]")
			} else {
				value = mutedStyle.Render("[ ]")
			}
		default:
			value = field.input.View()
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, marker, label, value))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
