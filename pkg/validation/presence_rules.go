package validation

// Empty validates that a string is empty.
// Combine with Not to require a non empty value.
func Empty[T ~string]() Validator[T] {
	return New("empty", func(value T) error {
		if len(value) == 0 {
			return nil
		}
		return NewError("is not empty")
	})
}

// EmptySlice validates that a slice has no elements.
func EmptySlice[S ~[]E, E any]() Validator[S] {
	return New("empty", func(value S) error {
		if len(value) == 0 {
			return nil
		}
		return NewError("is not empty")
	})
}

// EmptyMap validates that a map has no entries.
func EmptyMap[M ~map[K]V, K comparable, V any]() Validator[M] {
	return New("empty", func(value M) error {
		if len(value) == 0 {
			return nil
		}
		return NewError("is not empty")
	})
}

// Nil validates that an optional value is absent.
// Combine with Not to require a value.
func Nil[T any]() Validator[*T] {
	return New("nil", func(value *T) error {
		if value == nil {
			return nil
		}
		return NewError("isn't nil")
	})
}
