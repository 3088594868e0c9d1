package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/numkit/internal/config"
)

func testFile() *config.File {
	return &config.File{
		Version: "1.0",
		Fields: []config.Field{
			{
				Name:   "price",
				Label:  "Price",
				Class:  "decimal:2",
				Locale: "de-DE",
				Value:  "5.00",
				Range:  config.RangeConfig{Min: 0, Max: 10, Step: 0.1, DisplayPrecision: 2},
			},
			{
				Name:  "count",
				Class: "u16",
				Range: config.RangeConfig{Min: 0, Max: 20000, Step: 1},
			},
		},
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(testFile(), Options{Locale: "en-US"})
	require.NoError(t, err)
	return m
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestNewModel(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	require.Len(t, m.rows, 2)
	require.Equal(t, map[string]string{"price": "5.00", "count": "0"}, m.Values())
	require.True(t, m.rows[0].input.Focused())
	require.False(t, m.rows[0].slider.Focused())
}

func TestNewModelRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := NewModel(nil, Options{})
	require.Error(t, err)

	file := testFile()
	file.Fields[1].Class = "u7"
	_, err = NewModel(file, Options{})
	require.Error(t, err)
	require.Contains(t, err.Error(), `field "count"`)
}

func TestFocusCycles(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.rows[0].slider.Focused())
	require.False(t, m.rows[0].input.Focused())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.rows[1].slider.Focused())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.rows[0].input.Focused())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.True(t, m.rows[1].slider.Focused())
}

func TestInputStepUpdatesSlider(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})

	require.Equal(t, "5.10", m.Values()["price"])
	require.Equal(t, "5.10", m.rows[0].slider.Value())
	require.InDelta(t, 51.0, m.rows[0].slider.Percent(), 1e-9)
}

func TestSliderStepUpdatesInput(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnd})

	require.Equal(t, "10.00", m.rows[0].slider.Value())
	require.Equal(t, "10.00", m.rows[0].input.Text())
	require.Equal(t, "10.00", m.Values()["price"])
}

func TestInvalidTypingLeavesSliderAlone(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("9")})

	require.Equal(t, "5.009", m.rows[0].input.Text())
	require.Equal(t, "5.00", m.rows[0].slider.Value())
	_, ok := m.Values()["price"]
	require.False(t, ok)
	require.Contains(t, m.View(), "too many decimal places: max 2")
}

func TestQuit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	m = updated.(Model)
	require.True(t, m.Quitting())
	require.Equal(t, "", m.View())
}

func TestViewShowsLocalizedValue(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 20})

	view := m.View()
	require.Contains(t, view, "numkit playground")
	require.Contains(t, view, "Price")
	require.Contains(t, view, "= 5,00")
	require.Contains(t, view, "50.0%")
	require.Contains(t, view, "quit")
}
