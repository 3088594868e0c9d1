package rangestep

import (
	"github.com/alexisbeaulieu97/numkit/internal/precision"
	numkiterrors "github.com/alexisbeaulieu97/numkit/pkg/errors"
)

// Engine binds a range to the precision class of the field it drives. Every
// value it hands back has been re-validated against that class.
type Engine struct {
	class precision.Class
	spec  Spec
}

// NewEngine validates the class and range once so each call can stay pure.
func NewEngine(class precision.Class, spec Spec) (*Engine, error) {
	if err := precision.CheckClass(class); err != nil {
		return nil, err
	}
	if spec.Min > spec.Max {
		return nil, numkiterrors.NewValidationError("range.min", "min must be less than or equal to max", nil)
	}
	if spec.Step < 0 || spec.ShiftStep < 0 || spec.CtrlStep < 0 {
		return nil, numkiterrors.NewValidationError("range.step", "steps must not be negative", nil)
	}
	return &Engine{class: class, spec: spec}, nil
}

// Class returns the precision class the engine validates against.
func (e *Engine) Class() precision.Class {
	return e.class
}

// Spec returns the range the engine maps over.
func (e *Engine) Spec() Spec {
	return e.spec
}

// Increment steps current up by the amount selected by mod.
func (e *Engine) Increment(current string, mod Modifier) (string, error) {
	return precision.Validate(Adjust(current, e.spec.Delta(mod), e.spec), e.class)
}

// Decrement steps current down by the amount selected by mod.
func (e *Engine) Decrement(current string, mod Modifier) (string, error) {
	return precision.Validate(Adjust(current, -e.spec.Delta(mod), e.spec), e.class)
}

// Seek maps a slider position to a validated value.
func (e *Engine) Seek(pct float64) (string, error) {
	return precision.Validate(FromPercentage(pct, e.spec), e.class)
}

// Snap returns the validated value at a range edge.
func (e *Engine) Snap(which Boundary) (string, error) {
	return precision.Validate(SnapToBoundary(which, e.spec), e.class)
}

// Position returns the slider position of raw.
func (e *Engine) Position(raw string) float64 {
	return Position(raw, e.spec)
}
