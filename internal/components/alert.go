package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Alert is a one-line status message rendered beneath a widget.
type Alert struct {
	message string
	variant AlertVariant
}

// NewAlert creates a new alert with the given message and variant.
func NewAlert(message string, variant AlertVariant) Alert {
	return Alert{message: message, variant: variant}
}

// ErrorAlert creates an error alert. A nil error yields an empty alert.
func ErrorAlert(err error) Alert {
	if err == nil {
		return Alert{}
	}
	return NewAlert(err.Error(), AlertVariantError)
}

// Empty reports whether the alert has nothing to show.
func (a Alert) Empty() bool {
	return a.message == ""
}

// View renders the alert, or an empty string when there is no message.
func (a Alert) View() string {
	if a.Empty() {
		return ""
	}
	style := Style(lipgloss.NewStyle(), alertVariantAppliers(a.variant)...)
	return style.Render(alertIcon(a.variant) + " " + a.message)
}

func alertVariantAppliers(variant AlertVariant) []StyleApplier {
	switch variant {
	case AlertVariantError:
		return []StyleApplier{Foreground(PaletteDanger), Typography(TypographyVariantEmphasis)}
	case AlertVariantWarning:
		return []StyleApplier{Foreground(PaletteWarning)}
	default:
		return []StyleApplier{Foreground(PaletteInfo)}
	}
}

func alertIcon(variant AlertVariant) string {
	switch variant {
	case AlertVariantError:
		return "✗"
	case AlertVariantWarning:
		return "!"
	default:
		return "i"
	}
}
