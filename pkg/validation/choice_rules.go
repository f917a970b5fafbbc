package validation

import (
	"fmt"
	"slices"
	"strings"
)

// In validates that a value is one of values.
func In[T comparable](values ...T) Validator[T] {
	allowed := slices.Clone(values)
	parts := make([]string, len(allowed))
	for i, v := range allowed {
		parts[i] = fmt.Sprint(v)
	}
	description := "in " + strings.Join(parts, ", ")

	return New(description, func(value T) error {
		if slices.Contains(allowed, value) {
			return nil
		}
		return NewError("isn't " + description)
	})
}
