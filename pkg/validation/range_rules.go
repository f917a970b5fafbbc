package validation

import (
	"cmp"
	"fmt"
)

// Range validates that a value lies within [min, max].
func Range[T cmp.Ordered](min, max T) Validator[T] {
	return rangeValidator(&min, &max)
}

// AtLeast validates that a value is greater than or equal to min.
func AtLeast[T cmp.Ordered](min T) Validator[T] {
	return rangeValidator(&min, nil)
}

// AtMost validates that a value is less than or equal to max.
func AtMost[T cmp.Ordered](max T) Validator[T] {
	return rangeValidator(nil, &max)
}

func rangeValidator[T cmp.Ordered](min, max *T) Validator[T] {
	var description string
	switch {
	case min != nil && max != nil:
		description = fmt.Sprintf("between %v and %v", *min, *max)
	case min != nil:
		description = fmt.Sprintf("at least %v", *min)
	case max != nil:
		description = fmt.Sprintf("at most %v", *max)
	default:
		description = "valid"
	}

	// Negated comparisons so NaN fails both bounds.
	return New(description, func(value T) error {
		if min != nil && !(value >= *min) {
			return Errorf("is less than %v", *min)
		}
		if max != nil && !(value <= *max) {
			return Errorf("is greater than %v", *max)
		}
		return nil
	})
}
