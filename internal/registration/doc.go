// Package registration is a small account registration API built on the
// validation engine.
//
// Registration declares its rules through validation.Validatable. The HTTP
// handler decodes JSON or YAML payloads, reports every broken rule at once
// with ValidateAll, and stores accepted accounts in memory with bcrypt
// hashed passwords. Single fields can be checked on their own, which lets a
// form validate inputs while the user types.
package registration
