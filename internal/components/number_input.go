package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/numkit/internal/precision"
	"github.com/alexisbeaulieu97/numkit/internal/rangestep"
)

// NumberInput is a text field bound to a precision class. The text is
// re-validated after every edit and the last failure is kept for display.
type NumberInput struct {
	input  textinput.Model
	engine *rangestep.Engine
	keys   StepKeys
	label  string
	value  string
	err    error
}

// NewNumberInput creates an input showing initial.
func NewNumberInput(label string, engine *rangestep.Engine, initial string) NumberInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = engine.Class().String()
	ti.CharLimit = 64

	n := NumberInput{input: ti, engine: engine, keys: InputKeys(), label: label}
	n.SetText(initial)
	return n
}

// SetText replaces the text and re-validates it.
func (n *NumberInput) SetText(text string) {
	n.input.SetValue(text)
	n.input.CursorEnd()
	n.revalidate()
}

// Text returns the text as typed.
func (n NumberInput) Text() string {
	return n.input.Value()
}

// Value returns the canonical string and whether the current text is valid.
func (n NumberInput) Value() (string, bool) {
	return n.value, n.err == nil
}

// Err returns the last validation failure, or nil.
func (n NumberInput) Err() error {
	return n.err
}

// Keys returns the key bindings of the input.
func (n NumberInput) Keys() StepKeys {
	return n.keys
}

// Focus gives the input keyboard focus.
func (n *NumberInput) Focus() tea.Cmd {
	return n.input.Focus()
}

// Blur removes keyboard focus.
func (n *NumberInput) Blur() {
	n.input.Blur()
}

// Focused reports whether the input has focus.
func (n NumberInput) Focused() bool {
	return n.input.Focused()
}

func (n *NumberInput) revalidate() {
	value, err := precision.Validate(n.input.Value(), n.engine.Class())
	n.value, n.err = value, err
}

// Update handles step keys itself and forwards every other message to the
// underlying text input.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if !n.Focused() {
		return n, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if action, ok := n.keys.action(keyMsg); ok {
			next, err := action.apply(n.engine, n.input.Value())
			if err != nil {
				n.err = err
				return n, nil
			}
			n.SetText(next)
			return n, nil
		}
	}

	before := n.input.Value()
	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	if n.input.Value() != before {
		n.revalidate()
	}
	return n, cmd
}

// View renders the label and the framed text field.
func (n NumberInput) View() string {
	state := InputStateDefault
	switch {
	case n.err != nil:
		state = InputStateInvalid
	case n.Focused():
		state = InputStateFocus
	}

	label := TypographyStyle(TypographyVariantLabel).Render(n.label)
	field := InputStyle(state).Render(n.input.View())
	return lipgloss.JoinHorizontal(lipgloss.Center, label, " ", field)
}
