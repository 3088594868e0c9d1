package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/numkit/internal/rangestep"
)

// StepKeys binds increment, decrement and boundary keys for one axis.
type StepKeys struct {
	Up        key.Binding
	Down      key.Binding
	ShiftUp   key.Binding
	ShiftDown key.Binding
	CtrlUp    key.Binding
	CtrlDown  key.Binding
	Home      key.Binding
	End       key.Binding
}

// InputKeys returns the vertical bindings used by NumberInput.
func InputKeys() StepKeys {
	return StepKeys{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "step up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "step down")),
		ShiftUp:   key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "large step up")),
		ShiftDown: key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "large step down")),
		CtrlUp:    key.NewBinding(key.WithKeys("ctrl+up"), key.WithHelp("ctrl+↑", "page up")),
		CtrlDown:  key.NewBinding(key.WithKeys("ctrl+down"), key.WithHelp("ctrl+↓", "page down")),
		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "minimum")),
		End:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "maximum")),
	}
}

// SliderKeys returns the horizontal bindings used by Slider.
func SliderKeys() StepKeys {
	return StepKeys{
		Up:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "step up")),
		Down:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "step down")),
		ShiftUp:   key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "large step up")),
		ShiftDown: key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "large step down")),
		CtrlUp:    key.NewBinding(key.WithKeys("ctrl+right", "pgup"), key.WithHelp("ctrl+→", "page up")),
		CtrlDown:  key.NewBinding(key.WithKeys("ctrl+left", "pgdown"), key.WithHelp("ctrl+←", "page down")),
		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "minimum")),
		End:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "maximum")),
	}
}

// ShortHelp implements help.KeyMap.
func (k StepKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Home, k.End}
}

// FullHelp implements help.KeyMap.
func (k StepKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.ShiftUp, k.ShiftDown},
		{k.CtrlUp, k.CtrlDown},
		{k.Home, k.End},
	}
}

// stepAction is what a key press asks the engine to do.
type stepAction struct {
	direction int // +1 increment, -1 decrement, 0 snap
	modifier  rangestep.Modifier
	boundary  rangestep.Boundary
}

func (k StepKeys) action(msg tea.KeyMsg) (stepAction, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return stepAction{direction: 1, modifier: rangestep.ModifierNone}, true
	case key.Matches(msg, k.Down):
		return stepAction{direction: -1, modifier: rangestep.ModifierNone}, true
	case key.Matches(msg, k.ShiftUp):
		return stepAction{direction: 1, modifier: rangestep.ModifierShift}, true
	case key.Matches(msg, k.ShiftDown):
		return stepAction{direction: -1, modifier: rangestep.ModifierShift}, true
	case key.Matches(msg, k.CtrlUp):
		return stepAction{direction: 1, modifier: rangestep.ModifierCtrl}, true
	case key.Matches(msg, k.CtrlDown):
		return stepAction{direction: -1, modifier: rangestep.ModifierCtrl}, true
	case key.Matches(msg, k.Home):
		return stepAction{boundary: rangestep.BoundaryHome}, true
	case key.Matches(msg, k.End):
		return stepAction{boundary: rangestep.BoundaryEnd}, true
	default:
		return stepAction{}, false
	}
}

func (a stepAction) apply(engine *rangestep.Engine, current string) (string, error) {
	switch a.direction {
	case 1:
		return engine.Increment(current, a.modifier)
	case -1:
		return engine.Decrement(current, a.modifier)
	default:
		return engine.Snap(a.boundary)
	}
}
