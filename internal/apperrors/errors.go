package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientBalance indicates an account does not hold enough funds for the requested movement.
var ErrInsufficientBalance = errors.New("insufficient account balance")

// ErrInsightsInFlight indicates an insights request is already running.
var ErrInsightsInFlight = errors.New("insights request already in progress")

// GoalExceededError reports a contribution that would push a savings goal past its target.
// Remaining carries the exact amount still needed to reach the target.
type GoalExceededError struct {
	Remaining decimal.Decimal
}

func (e *GoalExceededError) Error() string {
	return fmt.Sprintf("contribution exceeds goal target, remaining amount is %s", e.Remaining.String())
}

// Is allows errors.Is(err, ErrValidation) to match, since an exceeded goal is a validation failure.
func (e *GoalExceededError) Is(target error) bool {
	return target == ErrValidation
}
