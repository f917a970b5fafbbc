package registration

import (
	"github.com/dmitrymomot/validationkit/pkg/validation"
)

// Registration is a sign up request.
type Registration struct {
	Username             string  `json:"username" yaml:"username"`
	Password             string  `json:"password" yaml:"password"`
	PasswordConfirmation string  `json:"password_confirmation" yaml:"password_confirmation"`
	Mail                 string  `json:"mail" yaml:"mail"`
	Website              *string `json:"website,omitempty" yaml:"website,omitempty"`
	Phone                *string `json:"phone,omitempty" yaml:"phone,omitempty"`
}

// Registration fields, usable for selective validation.
var (
	FieldUsername             = validation.NewField("Username", func(r Registration) string { return r.Username })
	FieldPassword             = validation.NewField("Password", func(r Registration) string { return r.Password })
	FieldPasswordConfirmation = validation.NewField("PasswordConfirmation", func(r Registration) string { return r.PasswordConfirmation })
	FieldMail                 = validation.NewField("Mail", func(r Registration) string { return r.Mail })
	FieldWebsite              = validation.NewField("Website", func(r Registration) *string { return r.Website })
	FieldPhone                = validation.NewField("Phone", func(r Registration) *string { return r.Phone })
)

// Fields maps the payload keys to their field selectors.
var Fields = map[string]validation.Selector[Registration]{
	"username":              FieldUsername,
	"password":              FieldPassword,
	"password_confirmation": FieldPasswordConfirmation,
	"mail":                  FieldMail,
	"website":               FieldWebsite,
	"phone":                 FieldPhone,
}

// bcrypt ignores anything past 72 bytes.
const maxPasswordBytes = 72

var usernameCharacters = validation.Alphanumerics.Union(validation.NewCharacterSet('_', '.', '-'))

func passwordBytes() validation.Validator[string] {
	return validation.New("at most 72 bytes", func(password string) error {
		if len(password) > maxPasswordBytes {
			return validation.Errorf("is longer than %d bytes", maxPasswordBytes)
		}
		return nil
	})
}

func (r Registration) Validations() (*validation.Validations[Registration], error) {
	vs := validation.NewValidations[Registration]()

	username := validation.Not(validation.Empty[string]()).
		And(validation.Count[string](3, 32)).
		And(validation.CharacterSetOf(usernameCharacters))
	if err := validation.Add(vs, FieldUsername, username); err != nil {
		return nil, err
	}

	password := validation.CountAtLeast[string](8).And(passwordBytes())
	if err := validation.Add(vs, FieldPassword, password); err != nil {
		return nil, err
	}

	if err := validation.AddModelFunc(vs, FieldPasswordConfirmation, "matching the password", func(r Registration) error {
		if r.PasswordConfirmation != r.Password {
			return validation.NewError("doesn't match the password")
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := validation.Add(vs, FieldMail, validation.Mail()); err != nil {
		return nil, err
	}

	website := validation.OrOptional(validation.Nil[string](), validation.URL())
	if err := validation.Add(vs, FieldWebsite, website); err != nil {
		return nil, err
	}

	if err := validation.Add(vs, FieldPhone, validation.Optional(validation.Phone()),
		validation.WithMessage(func(*string) string {
			return "Phone numbers start with + followed by 11 digits"
		}),
	); err != nil {
		return nil, err
	}

	return vs, nil
}
