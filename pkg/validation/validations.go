package validation

import (
	"slices"

	"github.com/dmitrymomot/validationkit/pkg/reflectable"
)

// fieldKey identifies a field of M inside a registry.
type fieldKey[M any] struct {
	name string
}

// Selector identifies a field of M for selective validation.
// It is implemented by Field.
type Selector[M any] interface {
	key() fieldKey[M]
}

// Field is a typed handle on a property of M: a comparable name used as the
// registry key plus the projection reading the property from a model.
type Field[M, T any] struct {
	name string
	get  func(M) T
}

// NewField creates a Field. When the field is registered without an explicit
// path, name must be the Go field name (dot separated for nested structs)
// so the path can be reflected.
// Panics on an empty name or nil projection: registries are built by
// program code, not from input.
func NewField[M, T any](name string, get func(M) T) Field[M, T] {
	if name == "" {
		panic("validation: field name cannot be empty")
	}
	if get == nil {
		panic("validation: field projection cannot be nil")
	}
	return Field[M, T]{name: name, get: get}
}

// Name returns the field key.
func (f Field[M, T]) Name() string { return f.name }

// Value projects the field out of model.
func (f Field[M, T]) Value(model M) T { return f.get(model) }

func (f Field[M, T]) key() fieldKey[M] { return fieldKey[M]{name: f.name} }

// BindingOption configures a field binding.
type BindingOption[T any] func(*binding[T])

type binding[T any] struct {
	message func(T) string
}

// WithMessage overrides the error reported by a binding. The function
// receives the field value; its result is returned as a CustomError and
// supersedes any message set on the validator itself.
func WithMessage[T any](message func(T) string) BindingOption[T] {
	return func(b *binding[T]) { b.message = message }
}

// Validations holds the validators of a model, one per field.
// A registry is meant to be built, run and discarded; it is not safe for
// concurrent mutation.
type Validations[M any] struct {
	storage map[fieldKey[M]]Validator[M]
	order   []fieldKey[M]
}

// NewValidations creates an empty registry for M.
func NewValidations[M any]() *Validations[M] {
	return &Validations[M]{storage: make(map[fieldKey[M]]Validator[M])}
}

// Len returns the number of registered fields.
func (vs *Validations[M]) Len() int { return len(vs.order) }

// Has reports whether a validator is registered for field.
func (vs *Validations[M]) Has(field Selector[M]) bool {
	_, ok := vs.storage[field.key()]
	return ok
}

func (vs *Validations[M]) set(key fieldKey[M], v Validator[M]) {
	if _, exists := vs.storage[key]; !exists {
		vs.order = append(vs.order, key)
	}
	vs.storage[key] = v
}

// AddAt binds v to field, reporting failures at path.
func AddAt[M, T any](vs *Validations[M], field Field[M, T], path []string, v Validator[T], opts ...BindingOption[T]) {
	AddFuncAt(vs, field, path, v.description, v.Validate, opts...)
}

// AddFuncAt binds a check on the field value to field.
func AddFuncAt[M, T any](vs *Validations[M], field Field[M, T], path []string, description string, check func(T) error, opts ...BindingOption[T]) {
	AddModelFuncAt(vs, field, path, description, func(model M) error {
		return check(field.get(model))
	}, opts...)
}

// AddModelFuncAt binds a check receiving the whole model to field. It is
// meant for rules depending on several properties.
//
// Validation errors returned by check are relocated at path, replacing any
// path they carry. Other errors are returned unchanged.
func AddModelFuncAt[M, T any](vs *Validations[M], field Field[M, T], path []string, description string, check func(M) error, opts ...BindingOption[T]) {
	var b binding[T]
	for _, opt := range opts {
		opt(&b)
	}

	path = slices.Clone(path)
	compiled := New(description, func(model M) error {
		err := check(model)
		if err == nil {
			return nil
		}
		if verr, ok := err.(Error); ok {
			return verr.WithPath(path)
		}
		return err
	})
	if b.message != nil {
		compiled = compiled.WithMessage(func(model M) string {
			return b.message(field.get(model))
		})
	}

	vs.set(field.key(), compiled)
}

// Add binds v to field. The readable path is reflected from the field name;
// an unknown field is reported with an empty path.
func Add[M, T any](vs *Validations[M], field Field[M, T], v Validator[T], opts ...BindingOption[T]) error {
	path, err := reflectable.Path[M](field.name)
	if err != nil {
		return err
	}
	AddAt(vs, field, path, v, opts...)
	return nil
}

// AddFunc is AddFuncAt with a reflected path.
func AddFunc[M, T any](vs *Validations[M], field Field[M, T], description string, check func(T) error, opts ...BindingOption[T]) error {
	path, err := reflectable.Path[M](field.name)
	if err != nil {
		return err
	}
	AddFuncAt(vs, field, path, description, check, opts...)
	return nil
}

// AddModelFunc is AddModelFuncAt with a reflected path.
func AddModelFunc[M, T any](vs *Validations[M], field Field[M, T], description string, check func(M) error, opts ...BindingOption[T]) error {
	path, err := reflectable.Path[M](field.name)
	if err != nil {
		return err
	}
	AddModelFuncAt(vs, field, path, description, check, opts...)
	return nil
}

// Run validates every registered field of model, in registration order.
// All bindings are evaluated; when several fail, the error of the last one
// is returned. Use Collect to get every failure.
func (vs *Validations[M]) Run(model M) error {
	var last error
	for _, key := range vs.order {
		if err := vs.storage[key].Validate(model); err != nil {
			last = err
		}
	}
	return last
}

// RunFields validates the given fields of model and stops at the first
// failure. A field without a registered validator yields an UndefinedError.
func (vs *Validations[M]) RunFields(model M, fields ...Selector[M]) error {
	for _, field := range fields {
		key := field.key()
		v, ok := vs.storage[key]
		if !ok {
			return UndefinedError{Field: key.name}
		}
		if err := v.Validate(model); err != nil {
			return err
		}
	}
	return nil
}

// Collect validates every registered field of model and returns all
// failures in registration order.
func (vs *Validations[M]) Collect(model M) []error {
	var errs []error
	for _, key := range vs.order {
		if err := vs.storage[key].Validate(model); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
