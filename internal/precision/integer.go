package precision

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	numkiterrors "github.com/alexisbeaulieu97/numkit/pkg/errors"
)

var integerPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)

func parseInteger(s string, class Class) (*big.Int, error) {
	if !integerPattern.MatchString(s) {
		return nil, numkiterrors.NewParseError(numkiterrors.KindInvalidFormat, class.String(), fmt.Sprintf("%q is not an integer", s), nil)
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, numkiterrors.NewParseError(numkiterrors.KindInvalidFormat, class.String(), fmt.Sprintf("%q is not an integer", s), nil)
	}
	return n, nil
}

// A minus sign can never be represented by an unsigned class, so it is a
// format error rather than a range error.
func validateUnsigned(s string, c UnsignedFixed) error {
	if strings.HasPrefix(s, "-") {
		return numkiterrors.NewParseError(numkiterrors.KindInvalidFormat, c.String(), fmt.Sprintf("negative values are not allowed for %s", c), nil)
	}

	n, err := parseInteger(s, c)
	if err != nil {
		return err
	}

	_, max := unsignedBounds(c.Bits)
	if n.Cmp(max) > 0 {
		return numkiterrors.NewOverflowError(c.String(), max.String())
	}
	return nil
}

func validateSigned(s string, c SignedFixed) error {
	n, err := parseInteger(s, c)
	if err != nil {
		return err
	}

	min, max := signedBounds(c.Bits)
	switch {
	case n.Cmp(min) < 0:
		return numkiterrors.NewUnderflowError(c.String(), min.String())
	case n.Cmp(max) > 0:
		return numkiterrors.NewOverflowError(c.String(), max.String())
	}
	return nil
}
