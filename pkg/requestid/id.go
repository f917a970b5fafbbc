package requestid

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

// MaxLength is the longest identifier accepted from clients.
const MaxLength = 128

var idCharacters = validation.Alphanumerics.Union(validation.NewCharacterSet('-', '_'))

var idValidator = validation.Not(validation.Empty[string]()).
	And(validation.CountAtMost[string](MaxLength)).
	And(validation.CharacterSetOf(idCharacters))

// Validator returns the rule client supplied identifiers must follow:
// non empty, at most MaxLength characters, ASCII letters, digits, '-' and
// '_' only.
func Validator() validation.Validator[string] { return idValidator }

// Validate checks a client supplied identifier.
func Validate(id string) error { return idValidator.Validate(id) }

// New generates a random identifier.
func New() string { return uuid.NewString() }
