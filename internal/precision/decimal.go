package precision

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	numkiterrors "github.com/alexisbeaulieu97/numkit/pkg/errors"
)

var decimalPattern = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)$`)

var maxFloatBound = strconv.FormatFloat(math.MaxFloat64, 'g', -1, 64)

// FractionDigits returns the length of the run of ASCII digits right after
// the first radix point of s, or 0 when s has none.
func FractionDigits(s string) int {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}
	n := 0
	for _, r := range s[dot+1:] {
		if r < '0' || r > '9' {
			break
		}
		n++
	}
	return n
}

// The fraction length is checked on the text before any numeric parsing: a
// too-long fraction is a formatting violation whatever the magnitude.
func validateFixedDecimal(s string, c FixedDecimal) error {
	if FractionDigits(s) > c.MaxDecimals {
		return numkiterrors.NewTooManyDecimalsError(c.String(), c.MaxDecimals)
	}

	if !decimalPattern.MatchString(s) {
		return numkiterrors.NewParseError(numkiterrors.KindInvalidFormat, c.String(), fmt.Sprintf("%q is not a decimal number", s), nil)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0) {
			if f < 0 {
				return numkiterrors.NewUnderflowError(c.String(), "-"+maxFloatBound)
			}
			return numkiterrors.NewOverflowError(c.String(), maxFloatBound)
		}
		return numkiterrors.NewParseError(numkiterrors.KindInvalidFormat, c.String(), "", err)
	}

	return nil
}
