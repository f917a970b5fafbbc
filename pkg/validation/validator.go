package validation

// Validator is a named predicate over values of type T.
//
// Validators are immutable: every method returns a new Validator. The zero
// value accepts everything.
type Validator[T any] struct {
	description string
	message     func(T) string
	check       func(T) error
}

// New creates a Validator.
//
// The description must read naturally after both "is" and "is not"
// ("empty", "a valid URL"); combinators build compound descriptions from it.
// The check returns nil when the value is valid. It should return an Error
// on invalid data; any other error is treated as an unexpected failure and
// passed through unchanged by combinators and registries.
func New[T any](description string, check func(T) error) Validator[T] {
	return Validator[T]{description: description, check: check}
}

// Description returns the readable name of the validator.
func (v Validator[T]) Description() string {
	return v.description
}

func (v Validator[T]) String() string {
	return v.description
}

// WithMessage returns a copy of v that reports any failure as a CustomError
// carrying message(value).
func (v Validator[T]) WithMessage(message func(T) string) Validator[T] {
	v.message = message
	return v
}

// Validate checks value. When the check fails and a message override is
// set, the original error is discarded in favour of a CustomError.
func (v Validator[T]) Validate(value T) error {
	if v.check == nil {
		return nil
	}
	err := v.check(value)
	if err == nil {
		return nil
	}
	if v.message != nil {
		return CustomError{Message: v.message(value)}
	}
	return err
}

// And is the method form of And.
func (v Validator[T]) And(other Validator[T]) Validator[T] {
	return And(v, other)
}

// Or is the method form of Or.
func (v Validator[T]) Or(other Validator[T]) Validator[T] {
	return Or(v, other)
}
