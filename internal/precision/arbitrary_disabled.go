//go:build nodecimal

package precision

// ArbitraryAvailable reports whether ArbitraryDecimal can be validated.
const ArbitraryAvailable = false

// MaxSignificantDigits is zero when ArbitraryDecimal is compiled out.
const MaxSignificantDigits = 0

func validateArbitrary(string, ArbitraryDecimal) error {
	return ErrArbitraryUnavailable
}
