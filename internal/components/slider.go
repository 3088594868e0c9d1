package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/numkit/internal/rangestep"
)

const defaultSliderWidth = 30

// Slider renders the position of a value within its range and steps it
// with the arrow keys.
type Slider struct {
	bar     progress.Model
	engine  *rangestep.Engine
	keys    StepKeys
	value   string
	err     error
	focused bool
}

// NewSlider creates a slider positioned at initial.
func NewSlider(engine *rangestep.Engine, initial string) Slider {
	styles := GetTheme().Slider
	bar := progress.New(
		progress.WithGradient(styles.FillStart, styles.FillEnd),
		progress.WithoutPercentage(),
		progress.WithWidth(defaultSliderWidth),
	)
	bar.EmptyColor = styles.Empty

	return Slider{bar: bar, engine: engine, keys: SliderKeys(), value: initial}
}

// SetWidth sets the track width in cells.
func (s *Slider) SetWidth(width int) {
	if width > 0 {
		s.bar.Width = width
	}
}

// SetValue moves the thumb to value without validating it.
func (s *Slider) SetValue(value string) {
	s.value = value
	s.err = nil
}

// Value returns the current value.
func (s Slider) Value() string {
	return s.value
}

// Err returns the failure of the last step, or nil.
func (s Slider) Err() error {
	return s.err
}

// Percent returns the thumb position in [0, 100].
func (s Slider) Percent() float64 {
	return s.engine.Position(s.value)
}

// SeekTo moves the thumb to pct and returns the snapped value.
func (s *Slider) SeekTo(pct float64) (string, error) {
	value, err := s.engine.Seek(pct)
	if err != nil {
		s.err = err
		return "", err
	}
	s.SetValue(value)
	return value, nil
}

// Keys returns the key bindings of the slider.
func (s Slider) Keys() StepKeys {
	return s.keys
}

// Focus gives the slider keyboard focus.
func (s *Slider) Focus() {
	s.focused = true
}

// Blur removes keyboard focus.
func (s *Slider) Blur() {
	s.focused = false
}

// Focused reports whether the slider has focus.
func (s Slider) Focused() bool {
	return s.focused
}

// Update applies step keys while focused.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	if !s.focused {
		return s, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	action, ok := s.keys.action(keyMsg)
	if !ok {
		return s, nil
	}

	next, err := action.apply(s.engine, s.value)
	if err != nil {
		s.err = err
		return s, nil
	}
	s.SetValue(next)
	return s, nil
}

// View renders the track followed by the percentage.
func (s Slider) View() string {
	pct := s.Percent()
	track := s.bar.ViewAs(pct / 100)
	if s.focused {
		track = GetTheme().Slider.Thumb.Render("▸") + track
	} else {
		track = " " + track
	}
	caption := TypographyStyle(TypographyVariantCaption).Render(fmt.Sprintf("%5.1f%%", pct))
	return lipgloss.JoinHorizontal(lipgloss.Center, track, " ", caption)
}
