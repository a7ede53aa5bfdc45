package healthcalc

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidHealthData matches every *InvalidHealthDataError via errors.Is.
var ErrInvalidHealthData = errors.New("invalid health data")

// InvalidHealthDataError reports a measurement that falls outside the range
// a formula accepts. It is the only error the calculations return.
type InvalidHealthDataError struct {
	Field  string      // Name of the offending input, e.g. "weight_kg".
	Value  interface{} // Offending value as given.
	Reason string      // Constraint that was violated.
}

func (e *InvalidHealthDataError) Error() string {
	return fmt.Sprintf("%s %v: %s", e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidHealthData.
func (e *InvalidHealthDataError) Is(target error) bool {
	return target == ErrInvalidHealthData
}

func invalid(field string, v interface{}, reason string) error {
	return &InvalidHealthDataError{Field: field, Value: v, Reason: reason}
}

// checkPositive rejects v unless v is finite and > 0. NaN fails the
// comparison and is rejected too.
func checkPositive(field string, v float64) error {
	if math.IsInf(v, 0) {
		return invalid(field, v, "must be finite")
	}
	if !(v > 0) {
		return invalid(field, v, "must be greater than zero")
	}
	return nil
}

// checkRange rejects v unless lo <= v <= hi.
func checkRange(field string, v, lo, hi float64) error {
	if !(v >= lo && v <= hi) {
		return invalid(field, v, fmt.Sprintf("must be between %v and %v", lo, hi))
	}
	return nil
}

// checkResult rejects a computed value that overflowed. Inputs that pass
// the guards can still be extreme enough to produce ±Inf.
func checkResult(field string, v float64) (float64, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, invalid(field, v, "result is out of range")
	}
	return v, nil
}
