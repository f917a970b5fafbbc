package validation

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUndefinedField is matched by UndefinedError through errors.Is.
var ErrUndefinedField = errors.New("no validator has been defined for field")

// Error is a validation failure that knows where in a model it happened.
// The set of implementations is closed: BasicError, OrError, CustomError
// and UndefinedError.
type Error interface {
	error

	// Path returns the readable path of the invalid data.
	Path() []string

	// WithPath returns a copy of the error located at path.
	WithPath(path []string) Error

	validationError()
}

// BasicError is the default leaf failure.
type BasicError struct {
	Message   string
	FieldPath []string
}

// NewError creates a BasicError with an empty path.
func NewError(message string) BasicError {
	return BasicError{Message: message}
}

// Errorf creates a BasicError with a formatted message.
func Errorf(format string, args ...any) BasicError {
	return BasicError{Message: fmt.Sprintf(format, args...)}
}

func (e BasicError) Error() string {
	if len(e.FieldPath) == 0 {
		return "data " + e.Message
	}
	return "'" + strings.Join(e.FieldPath, ".") + "' " + e.Message
}

func (e BasicError) Path() []string { return e.FieldPath }

func (e BasicError) WithPath(path []string) Error {
	e.FieldPath = slices.Clone(path)
	return e
}

func (BasicError) validationError() {}

// OrError is returned when both sides of an Or validator fail.
// A nil branch is skipped when rendering; with no branches at all the
// error reads "is invalid".
type OrError struct {
	Left      Error
	Right     Error
	FieldPath []string
}

func (e OrError) Error() string {
	switch {
	case e.Left == nil && e.Right == nil:
		return BasicError{Message: "is invalid", FieldPath: e.FieldPath}.Error()
	case e.Left == nil:
		return e.Right.Error()
	case e.Right == nil:
		return e.Left.Error()
	}
	return e.Left.Error() + " or " + e.Right.Error()
}

func (e OrError) Path() []string { return e.FieldPath }

// WithPath sets the path of the error and prefixes it onto both branches,
// so each side renders with the full location.
func (e OrError) WithPath(path []string) Error {
	e.FieldPath = slices.Clone(path)
	e.Left = prefixPath(e.Left, path)
	e.Right = prefixPath(e.Right, path)
	return e
}

func prefixPath(branch Error, path []string) Error {
	if branch == nil {
		return nil
	}
	return branch.WithPath(slices.Concat(path, branch.Path()))
}

func (OrError) validationError() {}

// CustomError carries a message produced by a user supplied override.
// The message is expected to be complete, so it has no path.
type CustomError struct {
	Message string
}

func (e CustomError) Error() string { return e.Message }

func (CustomError) Path() []string { return nil }

func (e CustomError) WithPath([]string) Error { return e }

func (CustomError) validationError() {}

// UndefinedError is returned by a selective run that names a field
// without a registered validator.
type UndefinedError struct {
	Field string
}

func (e UndefinedError) Error() string {
	if e.Field == "" {
		return "single field validation failed because no validator has been defined"
	}
	return fmt.Sprintf("single field validation failed because no validator has been defined for %q", e.Field)
}

func (UndefinedError) Path() []string { return nil }

func (e UndefinedError) WithPath([]string) Error { return e }

func (UndefinedError) Is(target error) bool { return target == ErrUndefinedField }

func (UndefinedError) validationError() {}

// IsError reports whether err is a validation failure.
func IsError(err error) bool {
	_, ok := AsError(err)
	return ok
}

// AsError finds the first validation failure in err's chain.
func AsError(err error) (Error, bool) {
	if err == nil {
		return nil, false
	}
	var verr Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// Details flattens validation failures into messages keyed by their dotted
// path. Both branches of an OrError are reported. Custom messages have no
// path and are keyed by the empty string. Errors joined with errors.Join
// are walked recursively; anything else is ignored.
func Details(err error) map[string][]string {
	details := make(map[string][]string)
	collectDetails(err, details)
	if len(details) == 0 {
		return nil
	}
	return details
}

func collectDetails(err error, details map[string][]string) {
	switch e := err.(type) {
	case nil:
	case BasicError:
		key := strings.Join(e.FieldPath, ".")
		details[key] = append(details[key], e.Message)
	case OrError:
		if e.Left == nil && e.Right == nil {
			key := strings.Join(e.FieldPath, ".")
			details[key] = append(details[key], "is invalid")
			return
		}
		collectDetails(e.Left, details)
		collectDetails(e.Right, details)
	case CustomError:
		details[""] = append(details[""], e.Message)
	case UndefinedError:
		details[e.Field] = append(details[e.Field], e.Error())
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			collectDetails(inner, details)
		}
	default:
		if verr, ok := AsError(err); ok {
			collectDetails(verr, details)
		}
	}
}
