package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// sliderMargin is the room left beside the track for the focus marker and percentage.
const sliderMargin = 10

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		for i := range m.rows {
			m.rows[i].slider.SetWidth(msg.Width - sliderMargin)
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.focus = (m.focus + 1) % m.focusCount()
			m.applyFocus()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.focus = (m.focus - 1 + m.focusCount()) % m.focusCount()
			m.applyFocus()
			return m, nil
		}
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused widget and mirrors the result
// into its sibling.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	row := &m.rows[m.focusedRow()]
	var cmd tea.Cmd

	if m.sliderFocused() {
		before := row.slider.Value()
		row.slider, cmd = row.slider.Update(msg)
		if after := row.slider.Value(); after != before {
			row.input.SetText(after)
			m.log.Debug("slider moved", "field", row.name, "value", after)
		}
		return m, cmd
	}

	before := row.input.Text()
	row.input, cmd = row.input.Update(msg)
	if row.input.Text() == before {
		return m, cmd
	}
	if value, ok := row.input.Value(); ok {
		row.slider.SetValue(value)
		m.log.Debug("input accepted", "field", row.name, "value", value)
	} else {
		m.log.Debug("input rejected", "field", row.name, "error", row.input.Err())
	}
	return m, cmd
}
