package domain

import (
	"errors"
	"fmt"
)

// ErrInsufficientData signals that a calculator had fewer data points than its
// minimum. It is an expected condition, not a fault: callers surface it as
// "insufficient data" instead of fabricating default metrics.
var ErrInsufficientData = errors.New("insufficient data")

// StructuralError reports malformed input: a missing required column, an
// unparsable cell, or a shape the calculators cannot accept. It is distinct
// from ErrInsufficientData so callers can tell "your data is malformed" from
// "there isn't enough data yet".
type StructuralError struct {
	Dataset string // which input (transactions, networth, budgets, portfolio)
	Detail  string
	Err     error
}

func (e *StructuralError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Dataset, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Dataset, e.Detail)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// NewStructuralError builds a StructuralError for a dataset.
func NewStructuralError(dataset, detail string, err error) *StructuralError {
	return &StructuralError{Dataset: dataset, Detail: detail, Err: err}
}

// IsStructural reports whether err is (or wraps) a StructuralError.
func IsStructural(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}
