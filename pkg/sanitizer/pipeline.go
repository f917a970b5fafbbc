package sanitizer

// Apply runs value through transforms, in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose stores transforms as a single reusable function.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Optional lifts transform to pointers. Nil stays nil, and so does a value
// the transform reduces to its zero value.
func Optional[T comparable](transform func(T) T) func(*T) *T {
	return func(value *T) *T {
		if value == nil {
			return nil
		}
		var zero T
		result := transform(*value)
		if result == zero {
			return nil
		}
		return &result
	}
}
