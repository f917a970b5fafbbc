package registration

import "errors"

var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnsupportedPayload = errors.New("unsupported payload content type")
	ErrMalformedPayload   = errors.New("malformed payload")
	ErrPayloadTooLarge    = errors.New("payload too large")
)
