// Package rangestep maps numeric values onto slider positions and steps them
// by fixed increments. Every function is pure; the current value of a field is
// owned by the caller and passed in on each call.
package rangestep

import (
	"math"

	"github.com/alexisbeaulieu97/numkit/internal/precision"
)

// ToPercentage returns the position of value within spec as a percentage in
// [0, 100]. Values outside the range are clamped first; a zero-width range
// yields 0.
func ToPercentage(value float64, spec Spec) float64 {
	if spec.Max == spec.Min || math.IsNaN(value) {
		return 0
	}
	v := spec.clamp(value)

	var pct float64
	if spec.logarithmic() && v > 0 {
		lo, hi := math.Log(spec.Min), math.Log(spec.Max)
		pct = (math.Log(v) - lo) / (hi - lo) * 100
	} else {
		pct = (v - spec.Min) / (spec.Max - spec.Min) * 100
	}
	return clampPercent(pct)
}

// Position is ToPercentage for a textual value. Unparsable text is treated as min.
func Position(raw string, spec Spec) float64 {
	v, ok := parseFloat(precision.Clean(raw))
	if !ok {
		v = spec.Min
	}
	return ToPercentage(v, spec)
}

// FromPercentage maps pct back to a value snapped to the step and formatted
// to the display precision. The result never leaves [min, max].
func FromPercentage(pct float64, spec Spec) string {
	pct = clampPercent(pct)
	if pct == 100 {
		return SnapToBoundary(BoundaryEnd, spec)
	}

	raw := valueAt(pct, spec)
	if d, ok := exactSnap(raw, spec); ok {
		if out, ok := formatDecimal(d, spec.DisplayPrecision); ok {
			return out
		}
	}
	return Format(floatSnap(raw, spec), spec.DisplayPrecision)
}

// Adjust adds delta to current, clamps to the range and formats the result.
// An unparsable current value is replaced by min so a corrupted value can
// never leave a slider stuck.
func Adjust(current string, delta float64, spec Spec) string {
	cleaned := precision.Clean(current)
	if d, ok := exactSum(cleaned, delta, spec); ok {
		if out, ok := formatDecimal(d, spec.DisplayPrecision); ok {
			return out
		}
	}

	v, ok := parseFloat(cleaned)
	if !ok {
		v = spec.Min
	}
	return Format(spec.clamp(v+delta), spec.DisplayPrecision)
}

// SnapToBoundary returns min for Home and max for End.
func SnapToBoundary(which Boundary, spec Spec) string {
	v := spec.Min
	if which == BoundaryEnd {
		v = spec.Max
	}
	if d, ok := decimalOf(v); ok {
		if out, ok := formatDecimal(d, spec.DisplayPrecision); ok {
			return out
		}
	}
	return Format(v, spec.DisplayPrecision)
}

func valueAt(pct float64, spec Spec) float64 {
	if spec.Max == spec.Min {
		return spec.Min
	}
	if spec.logarithmic() {
		lo, hi := math.Log(spec.Min), math.Log(spec.Max)
		return math.Exp(lo + pct/100*(hi-lo))
	}
	return spec.Min + pct/100*(spec.Max-spec.Min)
}

func clampPercent(pct float64) float64 {
	switch {
	case math.IsNaN(pct), pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}
