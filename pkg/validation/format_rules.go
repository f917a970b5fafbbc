package validation

import (
	"net/url"
	"regexp"

	"github.com/google/uuid"
)

var (
	mailRegex  = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,64}$`)
	phoneRegex = regexp.MustCompile(`^\+\d{11}$`)
)

// Mail validates that a string is a mail address.
func Mail() Validator[string] {
	return New("a valid mail address", func(value string) error {
		if mailRegex.MatchString(value) {
			return nil
		}
		return NewError("isn't a valid mail address")
	})
}

// URL validates that a string is an absolute URL: a scheme and a host, or a
// file URL with a path.
func URL() Validator[string] {
	return New("a valid URL", func(value string) error {
		u, err := url.Parse(value)
		if err == nil && u.Scheme != "" {
			if u.Host != "" || (u.Scheme == "file" && u.Path != "") {
				return nil
			}
		}
		return NewError("isn't a valid URL")
	})
}

// Phone validates an international phone number: a plus sign followed by
// eleven digits.
func Phone() Validator[string] {
	return New("a valid phone number", func(value string) error {
		if phoneRegex.MatchString(value) {
			return nil
		}
		return NewError("isn't a valid phone number")
	})
}

// UUID validates that a string is a UUID in any of the forms accepted by
// uuid.Parse.
func UUID() Validator[string] {
	return New("a valid UUID", func(value string) error {
		if _, err := uuid.Parse(value); err != nil {
			return NewError("isn't a valid UUID")
		}
		return nil
	})
}
