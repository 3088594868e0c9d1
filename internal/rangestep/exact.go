package rangestep

import (
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

// maxExactSteps bounds the step count converted to a decimal coefficient.
const maxExactSteps = 1e15

func decimalOf(f float64) (decimal.Decimal, bool) {
	d, err := decimal.NewFromFloat64(f)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func bounds(spec Spec) (lo, hi decimal.Decimal, ok bool) {
	lo, okLo := decimalOf(spec.Min)
	hi, okHi := decimalOf(spec.Max)
	if !okLo || !okHi || lo.Cmp(hi) > 0 {
		return decimal.Decimal{}, decimal.Decimal{}, false
	}
	return lo, hi, true
}

// formatDecimal renders d with exactly precision fractional digits.
func formatDecimal(d decimal.Decimal, precision int) (string, bool) {
	if precision < 0 {
		precision = 0
	}
	rescaled := d.Rescale(precision)
	if rescaled.Scale() != precision {
		return "", false
	}
	return rescaled.String(), true
}

// Format renders v with precision fractional digits. Negative zero prints as zero.
func Format(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	if v == 0 {
		v = 0
	}
	out := strconv.FormatFloat(v, 'f', precision, 64)
	if f, err := strconv.ParseFloat(out, 64); err == nil && f == 0 && out[0] == '-' {
		out = out[1:]
	}
	return out
}

// exactSnap computes min + n*step in decimal arithmetic so repeated 0.1
// steps never pick up binary rounding error.
func exactSnap(raw float64, spec Spec) (decimal.Decimal, bool) {
	lo, hi, ok := bounds(spec)
	if !ok {
		return decimal.Decimal{}, false
	}

	if spec.Step <= 0 {
		d, ok := decimalOf(raw)
		if !ok {
			return decimal.Decimal{}, false
		}
		clamped, err := d.Clamp(lo, hi)
		return clamped, err == nil
	}

	n := math.Round((raw - spec.Min) / spec.Step)
	if math.IsNaN(n) || math.Abs(n) > maxExactSteps {
		return decimal.Decimal{}, false
	}
	step, ok := decimalOf(spec.Step)
	if !ok {
		return decimal.Decimal{}, false
	}
	count, err := decimal.New(int64(n), 0)
	if err != nil {
		return decimal.Decimal{}, false
	}
	offset, err := step.Mul(count)
	if err != nil {
		return decimal.Decimal{}, false
	}
	sum, err := lo.Add(offset)
	if err != nil {
		return decimal.Decimal{}, false
	}
	clamped, err := sum.Clamp(lo, hi)
	return clamped, err == nil
}

func floatSnap(raw float64, spec Spec) float64 {
	if spec.Step <= 0 {
		return spec.clamp(raw)
	}
	n := math.Round((raw - spec.Min) / spec.Step)
	return spec.clamp(spec.Min + n*spec.Step)
}

// exactSum adds delta to current in decimal arithmetic and clamps the result.
// ok is false when either operand does not fit the decimal type; an
// unparsable current value is replaced by min.
func exactSum(current string, delta float64, spec Spec) (decimal.Decimal, bool) {
	lo, hi, ok := bounds(spec)
	if !ok {
		return decimal.Decimal{}, false
	}

	cur, err := decimal.Parse(current)
	if err != nil {
		if _, ok := parseFloat(current); ok {
			return decimal.Decimal{}, false
		}
		cur = lo
	}

	step, ok := decimalOf(delta)
	if !ok {
		return decimal.Decimal{}, false
	}
	sum, err := cur.Add(step)
	if err != nil {
		return decimal.Decimal{}, false
	}
	clamped, err := sum.Clamp(lo, hi)
	return clamped, err == nil
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
