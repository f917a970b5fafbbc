// Package validation provides composable, type-safe validators and a
// per-model registry that runs them and reports path-aware errors.
//
// A Validator[T] couples a readable description with a check over values of
// type T. Descriptions are phrased to follow both "is" and "is not" ("empty",
// "a valid URL") so combinators can build sentences out of them. Validators
// are immutable values; And, Or and Not return new validators and never
// modify their operands.
//
// # Combinators
//
//	mail := validation.Not(validation.Empty[string]()).And(validation.Mail())
//	picture := validation.OrOptional(validation.Nil[string](), validation.URL())
//
// And stops at the first failure. Or evaluates the right side only when the
// left one fails, and reports both reasons with an OrError when both fail.
// Not fails with "is <description>" when the inner validator passes. Optional
// values are pointers: Optional lifts a Validator[T] to Validator[*T] where a
// nil pointer passes, and the AndOptional / OptionalAnd / OrOptional /
// OptionalOr helpers apply that lift to the non optional operand.
//
// # Errors
//
// Validators report failures with one of a closed set of Error values:
//
//   - BasicError: the default failure, rendered "'mail' is empty" or
//     "data is empty" when it has no path
//   - OrError: both sides of an Or failed, rendered "<left> or <right>"
//   - CustomError: a message override fired; rendered verbatim
//   - UndefinedError: a selective run named an unregistered field
//
// Any other error returned by a check is considered unexpected and is passed
// through unchanged.
//
// # Registries
//
// Leaf validators never know where the value they check lives. A
// Validations[M] binds validators to fields of M and relocates their errors
// at the path given on registration, or at the path reflected from the
// field's json tag when registered with Add:
//
//	var userMail = validation.NewField("Mail", func(u User) string { return u.Mail })
//
//	func (u User) Validations() (*validation.Validations[User], error) {
//		vs := validation.NewValidations[User]()
//		if err := validation.Add(vs, userMail, mail); err != nil {
//			return nil, err
//		}
//		return vs, nil
//	}
//
//	err := validation.Validate(user)                    // every field, last failure
//	err = validation.ValidateFields(user, userMail)     // chosen fields, first failure
//	err = validation.ValidateAll(user)                  // every failure, joined
//
// Run is exhaustive but only returns the error of the last failing binding;
// Collect returns all of them. Details flattens any of these results into
// messages keyed by dotted path, ready to be rendered in an API response.
//
// Registries are built per call and evaluated synchronously without side
// effects, so independent validations can run concurrently.
package validation
