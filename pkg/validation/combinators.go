package validation

// And combines two validators. The result succeeds if both succeed and
// reports the first failure; rhs is not evaluated once lhs has failed.
func And[T any](lhs, rhs Validator[T]) Validator[T] {
	return New(lhs.description+" and "+rhs.description, func(value T) error {
		if err := lhs.Validate(value); err != nil {
			return err
		}
		return rhs.Validate(value)
	})
}

// Or combines two validators. The result succeeds if either succeeds. When
// both fail the returned OrError keeps both reasons.
func Or[T any](lhs, rhs Validator[T]) Validator[T] {
	return New(lhs.description+" or "+rhs.description, func(value T) error {
		err := lhs.Validate(value)
		if err == nil {
			return nil
		}
		left, ok := err.(Error)
		if !ok {
			return err
		}

		err = rhs.Validate(value)
		if err == nil {
			return nil
		}
		right, ok := err.(Error)
		if !ok {
			return err
		}
		return OrError{Left: left, Right: right}
	})
}

// Not inverts a validator. Unexpected (non validation) errors are returned
// as is, they never count as a failure of the inner validator.
func Not[T any](v Validator[T]) Validator[T] {
	return New("not "+v.description, func(value T) error {
		err := v.Validate(value)
		if err == nil {
			return NewError("is " + v.description)
		}
		if _, ok := err.(Error); ok {
			return nil
		}
		return err
	})
}

// Optional lifts v to pointers. A nil pointer passes, leaving absence
// checks to another validator of the same chain.
func Optional[T any](v Validator[T]) Validator[*T] {
	return New(v.description, func(value *T) error {
		if value == nil {
			return nil
		}
		return v.Validate(*value)
	})
}

// AndOptional combines an optional and a non optional validator using And.
// The non optional side ignores nil values.
func AndOptional[T any](lhs Validator[*T], rhs Validator[T]) Validator[*T] {
	return And(lhs, Optional(rhs))
}

// OptionalAnd combines a non optional and an optional validator using And.
// The non optional side ignores nil values.
func OptionalAnd[T any](lhs Validator[T], rhs Validator[*T]) Validator[*T] {
	return And(Optional(lhs), rhs)
}

// OrOptional combines an optional and a non optional validator using Or.
// The non optional side ignores nil values.
//
//	validation.OrOptional(validation.Nil[string](), validation.URL())
func OrOptional[T any](lhs Validator[*T], rhs Validator[T]) Validator[*T] {
	return Or(lhs, Optional(rhs))
}

// OptionalOr combines a non optional and an optional validator using Or.
// The non optional side ignores nil values.
func OptionalOr[T any](lhs Validator[T], rhs Validator[*T]) Validator[*T] {
	return Or(Optional(lhs), rhs)
}
