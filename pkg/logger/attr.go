package logger

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

// Error records err under "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non nil errs under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Field records the name of a validated field under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Path records a readable field path under "path", joined with dots.
func Path(path []string) slog.Attr {
	return slog.String("path", strings.Join(path, "."))
}

// Validation groups the messages of a validation failure under
// "validation", one attribute per field path. Custom messages, which carry
// no path, are logged under "_". Errors that are not validation failures
// yield an empty attribute.
func Validation(err error) slog.Attr {
	details := validation.Details(err)
	if len(details) == 0 {
		return slog.Attr{}
	}

	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	as := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		name := k
		if name == "" {
			name = "_"
		}
		as = append(as, slog.Any(name, details[k]))
	}
	return slog.Attr{Key: "validation", Value: slog.GroupValue(as...)}
}
