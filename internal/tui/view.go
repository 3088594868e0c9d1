package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/numkit/internal/components"
	"github.com/alexisbeaulieu97/numkit/internal/format"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{titleStyle.Render("numkit playground")}
	for _, row := range m.rows {
		sections = append(sections, sectionStyle.Render(row.label), renderRow(row))
	}
	sections = append(sections, helpStyle.Render(m.help.View(m.helpKeys())))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderRow(row fieldRow) string {
	lines := []string{row.input.View(), row.slider.View()}

	if value, ok := row.input.Value(); ok {
		display, err := format.Display(value, row.locale)
		if err != nil {
			display = value
		}
		lines = append(lines, displayStyle.Render("= "+display))
	}

	alert := components.ErrorAlert(row.input.Err())
	if alert.Empty() {
		alert = components.ErrorAlert(row.slider.Err())
	}
	if !alert.Empty() {
		lines = append(lines, alert.View())
	} else {
		lines = append(lines, mutedStyle.Render(row.name))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// helpKeys merges the navigation keys with those of the focused widget.
type helpKeys struct {
	nav    keyMap
	widget components.StepKeys
}

func (h helpKeys) ShortHelp() []key.Binding {
	return append(h.widget.ShortHelp(), h.nav.Next, h.nav.Quit)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return append(h.widget.FullHelp(), []key.Binding{h.nav.Next, h.nav.Prev, h.nav.Quit})
}

func (m Model) helpKeys() helpKeys {
	row := m.rows[m.focusedRow()]
	if m.sliderFocused() {
		return helpKeys{nav: m.keys, widget: row.slider.Keys()}
	}
	return helpKeys{nav: m.keys, widget: row.input.Keys()}
}
