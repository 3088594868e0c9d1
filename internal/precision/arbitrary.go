//go:build !nodecimal

package precision

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/db47h/decimal"

	numkiterrors "github.com/alexisbeaulieu97/numkit/pkg/errors"
)

// ArbitraryAvailable reports whether ArbitraryDecimal can be validated.
const ArbitraryAvailable = true

// MaxSignificantDigits is the precision ceiling of ArbitraryDecimal. It holds
// every value of the widest fixed classes, u128 and i128.
const MaxSignificantDigits = 39

// MaxExponent bounds the decimal exponent of an ArbitraryDecimal value, so
// 1e6144 is accepted and 1e6145 is not.
const MaxExponent = 6144

func validateArbitrary(s string, c ArbitraryDecimal) error {
	if strings.ContainsAny(s, "pP") {
		return numkiterrors.NewParseError(numkiterrors.KindInvalidFormat, c.String(),
			fmt.Sprintf("%q uses a binary exponent", s), nil)
	}

	d, _, err := decimal.ParseDecimal(s, 10, MaxSignificantDigits, decimal.ToNearestEven)
	if err != nil {
		return numkiterrors.NewParseError(numkiterrors.KindInvalidFormat, c.String(), "", err)
	}
	if d.IsInf() {
		return numkiterrors.NewParseError(numkiterrors.KindInvalidFormat, c.String(),
			fmt.Sprintf("%q is not a finite number", s), nil)
	}

	// MantExp normalises to 0.1 <= |mant| < 1, one above the usual exponent.
	if exp := d.MantExp(nil) - 1; exp > MaxExponent || exp < -MaxExponent {
		return numkiterrors.NewParseError(numkiterrors.KindInvalidFormat, c.String(),
			fmt.Sprintf("exponent %d is outside ±%d", exp, MaxExponent), nil)
	}

	// The parser rounds digits past the precision; reject instead of
	// accepting a value that differs from what was typed.
	if d.Acc() != decimal.Exact || !sameValue(s, d) {
		return numkiterrors.NewParseError(numkiterrors.KindInvalidFormat, c.String(),
			fmt.Sprintf("value needs more than %d significant digits", MaxSignificantDigits), nil)
	}
	return nil
}

func sameValue(s string, d *decimal.Decimal) bool {
	typed, ok := new(big.Rat).SetString(s)
	if !ok {
		return true
	}
	held, _ := d.Rat(nil)
	return held != nil && typed.Cmp(held) == 0
}
