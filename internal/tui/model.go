// Package tui hosts the interactive playground: one number input and one
// slider per configured field, kept in sync with each other.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/numkit/internal/components"
	"github.com/alexisbeaulieu97/numkit/internal/config"
	"github.com/alexisbeaulieu97/numkit/internal/logger"
)

// Options tune a playground session.
type Options struct {
	// Locale is used for fields that do not set their own.
	Locale string
	Logger *logger.Logger
}

type fieldRow struct {
	name   string
	label  string
	locale string
	input  components.NumberInput
	slider components.Slider
}

type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// Model contains the Bubbletea state of the playground.
type Model struct {
	rows     []fieldRow
	focus    int
	keys     keyMap
	help     help.Model
	log      *logger.Logger
	quitting bool
}

// NewModel builds one row per field of file. Every field must resolve to a
// working engine.
func NewModel(file *config.File, opts Options) (Model, error) {
	if file == nil || len(file.Fields) == 0 {
		return Model{}, fmt.Errorf("playground needs at least one field")
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	rows := make([]fieldRow, 0, len(file.Fields))
	for _, field := range file.Fields {
		engine, err := field.Engine()
		if err != nil {
			return Model{}, fmt.Errorf("field %q: %w", field.Name, err)
		}

		locale := field.Locale
		if locale == "" {
			locale = opts.Locale
		}

		initial := field.InitialValue()
		rows = append(rows, fieldRow{
			name:   field.Name,
			label:  field.DisplayLabel(),
			locale: locale,
			input:  components.NewNumberInput(field.DisplayLabel(), engine, initial),
			slider: components.NewSlider(engine, initial),
		})
	}

	m := Model{rows: rows, keys: defaultKeyMap(), help: help.New(), log: log}
	m.applyFocus()
	return m, nil
}

// Init starts the cursor blinking in the focused input.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Values returns the current canonical value of every field that holds a
// valid value.
func (m Model) Values() map[string]string {
	values := make(map[string]string, len(m.rows))
	for _, row := range m.rows {
		if value, ok := row.input.Value(); ok {
			values[row.name] = value
		}
	}
	return values
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// focusCount is the number of focusable widgets: an input and a slider per row.
func (m Model) focusCount() int {
	return len(m.rows) * 2
}

func (m Model) focusedRow() int {
	return m.focus / 2
}

func (m Model) sliderFocused() bool {
	return m.focus%2 == 1
}

func (m *Model) applyFocus() {
	for i := range m.rows {
		m.rows[i].input.Blur()
		m.rows[i].slider.Blur()
	}
	row := &m.rows[m.focusedRow()]
	if m.sliderFocused() {
		row.slider.Focus()
	} else {
		row.input.Focus()
	}
}
