package validation

import "errors"

// Validatable is implemented by models declaring their own validations.
//
//	func (u User) Validations() (*validation.Validations[User], error) {
//		vs := validation.NewValidations[User]()
//		validation.AddAt(vs, userMail, []string{"mail"},
//			validation.Not(validation.Empty[string]()).And(validation.Mail()))
//		return vs, nil
//	}
type Validatable[M any] interface {
	// Validations returns a fresh registry for the model. Setup errors
	// are returned to the caller as is.
	Validations() (*Validations[M], error)
}

// Validate runs every validation of model and returns the last failure.
func Validate[M Validatable[M]](model M) error {
	vs, err := model.Validations()
	if err != nil {
		return err
	}
	return vs.Run(model)
}

// ValidateFields validates only the given fields, stopping at the first
// failure.
func ValidateFields[M Validatable[M]](model M, fields ...Selector[M]) error {
	vs, err := model.Validations()
	if err != nil {
		return err
	}
	return vs.RunFields(model, fields...)
}

// ValidateAll runs every validation of model and joins all failures.
func ValidateAll[M Validatable[M]](model M) error {
	vs, err := model.Validations()
	if err != nil {
		return err
	}
	return errors.Join(vs.Collect(model)...)
}
