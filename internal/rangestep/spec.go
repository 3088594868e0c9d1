package rangestep

import (
	"fmt"
	"math"
	"strings"
)

// Scale selects how a value maps onto a slider position.
type Scale int

const (
	ScaleLinear Scale = iota
	ScaleLogarithmic
)

func (s Scale) String() string {
	switch s {
	case ScaleLogarithmic:
		return "logarithmic"
	default:
		return "linear"
	}
}

// ParseScale resolves "linear", "log" or "logarithmic".
func ParseScale(name string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return ScaleLinear, nil
	case "log", "logarithmic":
		return ScaleLogarithmic, nil
	default:
		return ScaleLinear, fmt.Errorf("unknown scale %q", name)
	}
}

// Modifier is the keyboard modifier held while stepping.
type Modifier int

const (
	ModifierNone Modifier = iota
	ModifierShift
	ModifierCtrl
)

func (m Modifier) String() string {
	switch m {
	case ModifierShift:
		return "shift"
	case ModifierCtrl:
		return "ctrl"
	default:
		return "none"
	}
}

// ParseModifier resolves "", "none", "shift" or "ctrl".
func ParseModifier(name string) (Modifier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return ModifierNone, nil
	case "shift":
		return ModifierShift, nil
	case "ctrl", "control":
		return ModifierCtrl, nil
	default:
		return ModifierNone, fmt.Errorf("unknown modifier %q", name)
	}
}

// Boundary names a range edge for Home/End navigation.
type Boundary int

const (
	BoundaryHome Boundary = iota
	BoundaryEnd
)

// ParseBoundary resolves "home"/"min" or "end"/"max".
func ParseBoundary(name string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "home", "min":
		return BoundaryHome, nil
	case "end", "max":
		return BoundaryEnd, nil
	default:
		return BoundaryHome, fmt.Errorf("unknown boundary %q", name)
	}
}

// Spec describes a bounded numeric range. Min <= Max is the caller's
// responsibility. A zero Step disables snapping.
type Spec struct {
	Min              float64
	Max              float64
	Step             float64
	ShiftStep        float64
	CtrlStep         float64
	Scale            Scale
	DisplayPrecision int
}

// Delta returns the step amount for mod. Unset modifier steps fall back to Step.
func (s Spec) Delta(mod Modifier) float64 {
	switch mod {
	case ModifierShift:
		if s.ShiftStep > 0 {
			return s.ShiftStep
		}
	case ModifierCtrl:
		if s.CtrlStep > 0 {
			return s.CtrlStep
		}
	}
	return s.Step
}

func (s Spec) clamp(v float64) float64 {
	return math.Max(s.Min, math.Min(s.Max, v))
}

// logarithmic reports whether the logarithmic mapping applies. A range that
// touches zero or below cannot be logged and maps linearly instead.
func (s Spec) logarithmic() bool {
	return s.Scale == ScaleLogarithmic && s.Min > 0
}
