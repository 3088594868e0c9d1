package precision

import (
	"fmt"
	"strings"

	numkiterrors "github.com/alexisbeaulieu97/numkit/pkg/errors"
)

var separatorStripper = strings.NewReplacer(",", "", "_", "")

// Clean removes grouping separators and surrounding whitespace.
func Clean(raw string) string {
	return strings.TrimSpace(separatorStripper.Replace(raw))
}

// Validate checks raw against class and returns the cleaned input. The
// returned string keeps the digits and sign exactly as typed; it is never
// re-serialised from a parsed number.
//
// Failures are *errors.ParseError values; the first failing check wins.
func Validate(raw string, class Class) (string, error) {
	if err := CheckClass(class); err != nil {
		return "", err
	}

	cleaned := Clean(raw)
	if cleaned == "" {
		return "", numkiterrors.NewEmptyError(class.String())
	}

	var err error
	switch c := class.(type) {
	case UnsignedFixed:
		err = validateUnsigned(cleaned, c)
	case SignedFixed:
		err = validateSigned(cleaned, c)
	case FixedDecimal:
		err = validateFixedDecimal(cleaned, c)
	case ArbitraryDecimal:
		err = validateArbitrary(cleaned, c)
	default:
		err = numkiterrors.NewValidationError("class", fmt.Sprintf("unsupported precision class %T", class), nil)
	}
	if err != nil {
		return "", err
	}

	return cleaned, nil
}

// IsValid reports whether raw validates against class.
func IsValid(raw string, class Class) bool {
	_, err := Validate(raw, class)
	return err == nil
}
