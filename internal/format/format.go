// Package format renders canonical numeric strings for display. Output is for
// people only and is never fed back into validation.
package format

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Symbols holds the separators a locale uses around digits.
type Symbols struct {
	Group   string
	Decimal string
}

// DefaultSymbols are used when a locale's separators cannot be derived.
var DefaultSymbols = Symbols{Group: ",", Decimal: "."}

var plainNumber = regexp.MustCompile(`^([+-]?)([0-9]*)(?:\.([0-9]*))?$`)

// SymbolsFor derives the grouping and decimal separators of tag by formatting
// a probe value through x/text. Digits are always rendered in ASCII.
func SymbolsFor(tag language.Tag) Symbols {
	probe := []rune(message.NewPrinter(tag).Sprint(number.Decimal(1234.5, number.Scale(1))))

	switch len(probe) {
	case 7: // 1,234.5
		return Symbols{Group: string(probe[1]), Decimal: string(probe[5])}
	case 6: // 1234,5
		return Symbols{Group: "", Decimal: string(probe[4])}
	default:
		return DefaultSymbols
	}
}

// Group inserts grouping separators into the integer part of canonical and
// swaps in the locale's radix point. Integers of any length are handled
// exactly; text that is not a plain decimal is returned unchanged.
func Group(canonical string, sym Symbols) string {
	m := plainNumber.FindStringSubmatch(canonical)
	if m == nil || (m[2] == "" && m[3] == "") {
		return canonical
	}
	sign, whole, frac := m[1], m[2], m[3]

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(sym.Group)
		}
		b.WriteRune(r)
	}
	if strings.Contains(canonical, ".") {
		b.WriteString(sym.Decimal)
		b.WriteString(frac)
	}
	return b.String()
}

// Display formats canonical for the BCP 47 locale.
func Display(canonical, locale string) (string, error) {
	if strings.TrimSpace(locale) == "" {
		return Group(canonical, DefaultSymbols), nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return canonical, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return Group(canonical, SymbolsFor(tag)), nil
}
