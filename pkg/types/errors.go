package types

import (
	"errors"
	"fmt"
)

// Catalog operation errors. Concrete errors returned by a Catalog wrap one
// of these; callers test with errors.Is.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInternal = errors.New("internal error")
)

// Entity names used in NotFoundError.
const (
	EntityProduct   = "Product"
	EntityAttribute = "Attribute"
	EntityParam     = "Parameter"
)

// NotFoundError reports a missing product, attribute or param.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// Unwrap lets errors.Is match ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ConflictError reports a param type that the attribute contract does not
// allow. Retarget is set when the rejected type came from an update.
type ConflictError struct {
	Requested ParamType
	Expected  ParamType
	Contract  string
	Retarget  bool
}

func (e *ConflictError) Error() string {
	if e.Retarget {
		return fmt.Sprintf("Cannot change parameter type to '%s' for attribute with contract '%s'. Expected parameter type: '%s'.",
			e.Requested, e.Contract, e.Expected)
	}
	return fmt.Sprintf("Parameter type '%s' is not allowed for attribute with contract '%s'. Expected parameter type: '%s'.",
		e.Requested, e.Contract, e.Expected)
}

// Unwrap lets errors.Is match ErrConflict.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NotFound returns a *NotFoundError for the given entity and ID.
func NotFound(entity string, id int) error {
	return &NotFoundError{Entity: entity, ID: id}
}
