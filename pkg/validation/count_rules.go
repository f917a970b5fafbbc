package validation

import (
	"fmt"
	"unicode/utf8"
)

// Count validates that a string has between min and max characters,
// inclusive. A character is a Unicode code point (rune), not a grapheme
// cluster: "e\u0301" counts as 2 and an emoji with a skin tone modifier
// counts as 2. Normalize input to NFC first (sanitizer.NFC) to count
// precomposed letters once.
func Count[T ~string](min, max int) Validator[T] {
	return countValidator(&min, &max, "character", runeCount[T])
}

// CountAtLeast validates that a string has at least min characters.
func CountAtLeast[T ~string](min int) Validator[T] {
	return countValidator(&min, nil, "character", runeCount[T])
}

// CountAtMost validates that a string has at most max characters.
func CountAtMost[T ~string](max int) Validator[T] {
	return countValidator(nil, &max, "character", runeCount[T])
}

// Items validates that a slice has between min and max elements, inclusive.
func Items[S ~[]E, E any](min, max int) Validator[S] {
	return countValidator(&min, &max, "item", sliceLen[S, E])
}

// ItemsAtLeast validates that a slice has at least min elements.
func ItemsAtLeast[S ~[]E, E any](min int) Validator[S] {
	return countValidator(&min, nil, "item", sliceLen[S, E])
}

// ItemsAtMost validates that a slice has at most max elements.
func ItemsAtMost[S ~[]E, E any](max int) Validator[S] {
	return countValidator(nil, &max, "item", sliceLen[S, E])
}

func runeCount[T ~string](value T) int { return utf8.RuneCountInString(string(value)) }

func sliceLen[S ~[]E, E any](value S) int { return len(value) }

func countValidator[T any](min, max *int, unit string, count func(T) int) Validator[T] {
	var description string
	switch {
	case min != nil && max != nil:
		description = fmt.Sprintf("between %d and %d %s", *min, *max, plural(unit, *max))
	case min != nil:
		description = fmt.Sprintf("at least %d %s", *min, plural(unit, *min))
	case max != nil:
		description = fmt.Sprintf("at most %d %s", *max, plural(unit, *max))
	default:
		description = "valid"
	}

	return New(description, func(value T) error {
		n := count(value)
		if min != nil && n < *min {
			return Errorf("is less than required minimum of %d %s", *min, plural(unit, *min))
		}
		if max != nil && n > *max {
			return Errorf("is greater than required maximum of %d %s", *max, plural(unit, *max))
		}
		return nil
	})
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
