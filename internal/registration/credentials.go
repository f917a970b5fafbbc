package registration

import "github.com/dmitrymomot/validationkit/pkg/validation"

// Credentials is a login request.
type Credentials struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

var (
	credentialsUsername = validation.NewField("Username", func(c Credentials) string { return c.Username })
	credentialsPassword = validation.NewField("Password", func(c Credentials) string { return c.Password })
)

func (c Credentials) Validations() (*validation.Validations[Credentials], error) {
	vs := validation.NewValidations[Credentials]()
	present := validation.Not(validation.Empty[string]())
	validation.AddAt(vs, credentialsUsername, []string{"username"}, present)
	validation.AddAt(vs, credentialsPassword, []string{"password"}, present)
	return vs, nil
}
