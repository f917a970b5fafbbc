package reflectable

import "errors"

var (
	// ErrDoesNotConform is returned when a path is requested for a type
	// that is not a struct (or a pointer to one).
	ErrDoesNotConform = errors.New("reflectable: type is not a struct")

	// ErrEmptyField is returned when the requested field name is empty.
	ErrEmptyField = errors.New("reflectable: empty field name")
)
