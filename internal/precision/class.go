package precision

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	numkiterrors "github.com/alexisbeaulieu97/numkit/pkg/errors"
)

// ErrArbitraryUnavailable is returned when the binary was built without
// arbitrary-precision decimal support.
var ErrArbitraryUnavailable = errors.New("arbitrary-precision decimals are not available in this build")

// Class is the numeric domain a field's value must conform to. The set of
// implementations is closed: UnsignedFixed, SignedFixed, FixedDecimal and
// ArbitraryDecimal.
type Class interface {
	String() string
	class()
}

// UnsignedFixed accepts integers in [0, 2^Bits-1].
type UnsignedFixed struct {
	Bits int
}

// SignedFixed accepts integers in [-2^(Bits-1), 2^(Bits-1)-1].
type SignedFixed struct {
	Bits int
}

// FixedDecimal accepts decimals with at most MaxDecimals fractional digits.
type FixedDecimal struct {
	MaxDecimals int
}

// ArbitraryDecimal accepts any decimal the exact-decimal parser can hold.
type ArbitraryDecimal struct{}

func (UnsignedFixed) class()    {}
func (SignedFixed) class()      {}
func (FixedDecimal) class()     {}
func (ArbitraryDecimal) class() {}

func (c UnsignedFixed) String() string  { return "u" + strconv.Itoa(c.Bits) }
func (c SignedFixed) String() string    { return "i" + strconv.Itoa(c.Bits) }
func (c FixedDecimal) String() string   { return fmt.Sprintf("decimal(%d)", c.MaxDecimals) }
func (ArbitraryDecimal) String() string { return "arbitrary" }

// SupportedBits lists the accepted widths for fixed integer classes.
var SupportedBits = []int{8, 16, 32, 64, 128}

func bitsSupported(bits int) bool {
	for _, b := range SupportedBits {
		if b == bits {
			return true
		}
	}
	return false
}

// CheckClass reports configuration mistakes in a class value. These are
// caller errors and never ParseErrors.
func CheckClass(class Class) error {
	switch c := class.(type) {
	case nil:
		return numkiterrors.NewValidationError("class", "precision class is required", nil)
	case UnsignedFixed:
		if !bitsSupported(c.Bits) {
			return numkiterrors.NewValidationError("class", fmt.Sprintf("unsupported bit width %d", c.Bits), nil)
		}
	case SignedFixed:
		if !bitsSupported(c.Bits) {
			return numkiterrors.NewValidationError("class", fmt.Sprintf("unsupported bit width %d", c.Bits), nil)
		}
	case FixedDecimal:
		if c.MaxDecimals < 0 {
			return numkiterrors.NewValidationError("class", "max decimals must not be negative", nil)
		}
	case ArbitraryDecimal:
		if !ArbitraryAvailable {
			return numkiterrors.NewValidationError("class", ErrArbitraryUnavailable.Error(), ErrArbitraryUnavailable)
		}
	}
	return nil
}

// ParseClass resolves a class name such as "u64", "i128", "decimal",
// "decimal:2" or "arbitrary". maxDecimals applies to a bare "decimal".
func ParseClass(name string, maxDecimals int) (Class, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	var class Class
	switch {
	case normalized == "arbitrary":
		class = ArbitraryDecimal{}
	case normalized == "decimal":
		class = FixedDecimal{MaxDecimals: maxDecimals}
	case strings.HasPrefix(normalized, "decimal:"):
		n, err := strconv.Atoi(strings.TrimPrefix(normalized, "decimal:"))
		if err != nil {
			return nil, numkiterrors.NewValidationError("class", fmt.Sprintf("invalid decimal places in %q", name), err)
		}
		class = FixedDecimal{MaxDecimals: n}
	case strings.HasPrefix(normalized, "u"), strings.HasPrefix(normalized, "i"):
		bits, err := strconv.Atoi(normalized[1:])
		if err != nil {
			return nil, numkiterrors.NewValidationError("class", fmt.Sprintf("unknown precision class %q", name), err)
		}
		if normalized[0] == 'u' {
			class = UnsignedFixed{Bits: bits}
		} else {
			class = SignedFixed{Bits: bits}
		}
	default:
		return nil, numkiterrors.NewValidationError("class", fmt.Sprintf("unknown precision class %q", name), nil)
	}

	if err := CheckClass(class); err != nil {
		return nil, err
	}
	return class, nil
}

// Bounds returns the inclusive domain of an integer class.
func Bounds(class Class) (min, max *big.Int, ok bool) {
	switch c := class.(type) {
	case UnsignedFixed:
		if !bitsSupported(c.Bits) {
			return nil, nil, false
		}
		min, max = unsignedBounds(c.Bits)
		return min, max, true
	case SignedFixed:
		if !bitsSupported(c.Bits) {
			return nil, nil, false
		}
		min, max = signedBounds(c.Bits)
		return min, max, true
	default:
		return nil, nil, false
	}
}

func unsignedBounds(bits int) (*big.Int, *big.Int) {
	max := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	max.Sub(max, big.NewInt(1))
	return big.NewInt(0), max
}

func signedBounds(bits int) (*big.Int, *big.Int) {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	min := new(big.Int).Neg(limit)
	max := new(big.Int).Sub(limit, big.NewInt(1))
	return min, max
}
