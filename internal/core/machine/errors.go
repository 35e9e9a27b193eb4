package machine

import (
	"fmt"
	"strings"
)

// =============================================================================
// Error Types
// =============================================================================

// UnsupportedLocationError is returned when a region is in neither the TPU
// nor the GPU pool.
type UnsupportedLocationError struct {
	Location string
	Valid    []string
}

func (e *UnsupportedLocationError) Error() string {
	return fmt.Sprintf(
		"unsupported accelerator location %q: must be one of [%s]",
		e.Location, strings.Join(e.Valid, ", "),
	)
}

// UnknownModelError is returned when a model reference is outside the bulk
// inference allow-list.
type UnknownModelError struct {
	Model string
	Valid []string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf(
		"unknown model reference %q: must be one of [%s]",
		e.Model, strings.Join(e.Valid, ", "),
	)
}

// InvalidOverrideError is returned when only one half of the accelerator
// type/count override pair is supplied.
type InvalidOverrideError struct {
	AcceleratorType  string
	AcceleratorCount int
}

func (e *InvalidOverrideError) Error() string {
	return "accelerator type and count must both be set"
}

// InvalidAcceleratorCountError is returned for a non-positive accelerator
// count.
type InvalidAcceleratorCountError struct {
	Count int
}

func (e *InvalidAcceleratorCountError) Error() string {
	return fmt.Sprintf("accelerator count must be at least 1, got %d", e.Count)
}

// TooManyAcceleratorsError is returned when a count exceeds the tier
// ceiling for its accelerator family.
type TooManyAcceleratorsError struct {
	AcceleratorType string
	Count           int
	Limit           int
}

func (e *TooManyAcceleratorsError) Error() string {
	return fmt.Sprintf(
		"too many %s requested: %d exceeds the limit of %d",
		e.AcceleratorType, e.Count, e.Limit,
	)
}

// UnknownAcceleratorTypeError is returned for an accelerator type outside
// the known GPU and TPU families.
type UnknownAcceleratorTypeError struct {
	AcceleratorType string
	Valid           []string
}

func (e *UnknownAcceleratorTypeError) Error() string {
	return fmt.Sprintf(
		"unknown accelerator type %q: must be one of [%s]",
		e.AcceleratorType, strings.Join(e.Valid, ", "),
	)
}
