package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("not found")
	ErrDateConflict         = errors.New("requested dates overlap an existing reservation")
	ErrEquipmentUnavailable = errors.New("equipment is not available for rental")
	ErrInvalidCredentials   = errors.New("invalid admin password")
	ErrUnauthorized         = errors.New("admin authorization required")
	ErrInconsistentState    = errors.New("operation partially applied")
)

// ValidationError reports a rejected input field. errors.Is(err, ErrValidation) holds for it.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// PartialUpdateError is returned when the first write of a two-step transition
// succeeded and the second failed. Nothing is rolled back.
type PartialUpdateError struct {
	Op      string // e.g. "approve"
	Applied string // the write that succeeded
	Failed  string // the write that did not
	Err     error
}

func (e *PartialUpdateError) Error() string {
	return fmt.Sprintf("%s: %s succeeded but %s failed: %v", e.Op, e.Applied, e.Failed, e.Err)
}

func (e *PartialUpdateError) Is(target error) bool {
	return target == ErrInconsistentState
}

func (e *PartialUpdateError) Unwrap() error {
	return e.Err
}
