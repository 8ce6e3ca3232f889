package notes

import (
	"errors"
	"fmt"
)

// NotFoundError reports a section or saved player that does not exist.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// NewNotFoundError creates a NotFoundError for the given entity kind and id.
func NewNotFoundError(kind string, id int64) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

// AsNotFoundError unwraps err into a NotFoundError when possible.
func AsNotFoundError(err error) (*NotFoundError, bool) {
	var target *NotFoundError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// ValidationError reports rejected input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// AsValidationError unwraps err into a ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var target *ValidationError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// DuplicateError reports an attempt to save a player twice in one section.
type DuplicateError struct {
	SectionID int64
	PlayerID  int
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("player %d already saved in section %d", e.PlayerID, e.SectionID)
}

// NewDuplicateError creates a DuplicateError.
func NewDuplicateError(sectionID int64, playerID int) *DuplicateError {
	return &DuplicateError{SectionID: sectionID, PlayerID: playerID}
}

// AsDuplicateError unwraps err into a DuplicateError when possible.
func AsDuplicateError(err error) (*DuplicateError, bool) {
	var target *DuplicateError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
